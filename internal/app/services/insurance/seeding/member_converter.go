package seeding

import (
	"time"

	"aushealthsim/internal/pkg/dto/records"
	"aushealthsim/internal/pkg/exceptions"
	"aushealthsim/internal/pkg/models"
	"aushealthsim/internal/pkg/utils"

	"go.uber.org/zap"
)

var rebateTiers = []models.RebateTier{
	models.RebateTierBase,
	models.RebateTierOne,
	models.RebateTierTwo,
	models.RebateTierThree,
}

// convertMembers turns sample records into members ready to insert.
// Records that fail validation are skipped with a warning so one bad
// record never aborts a seed run. About a third of members carry a
// Lifetime Health Cover loading, and join dates fall within the five
// years before asOf.
func convertMembers(sampleRecords []records.SampleMemberRecord, asOf time.Time, log *zap.Logger) []models.Member {
	members := make([]models.Member, 0, len(sampleRecords))

	for _, record := range sampleRecords {
		if err := utils.ValidateStruct(record); err != nil {
			log.Warn("skipping invalid sample record",
				zap.String("member_number", record.MemberID),
				zap.String("reason", exceptions.FormatAllValidationErrors(err)),
			)
			continue
		}

		dateOfBirth, err := utils.ParseDate(record.DateOfBirth)
		if err != nil {
			log.Warn("skipping sample record with unreadable date of birth",
				zap.String("member_number", record.MemberID),
				zap.Error(err),
			)
			continue
		}

		lhcLoading := 0.0
		if randomChance(0.3) {
			lhcLoading = round2(randomUniform(0, 20))
		}

		joinDate := asOf.AddDate(0, 0, -randomBetween(1, 5*365))

		members = append(members, models.Member{
			MemberNumber:         record.MemberID,
			FirstName:            record.FirstName,
			LastName:             record.LastName,
			DateOfBirth:          dateOfBirth,
			Gender:               record.Gender,
			Email:                record.Email,
			MobilePhone:          record.MobilePhone,
			HomePhone:            record.HomePhone,
			AddressLine1:         record.Address,
			City:                 record.City,
			State:                record.State,
			PostCode:             record.PostCode.String(),
			Country:              "Australia",
			MedicareNumber:       record.MedicareNumber,
			LHCLoadingPercentage: lhcLoading,
			PHIRebateTier:        rebateTiers[randomIndex(len(rebateTiers))],
			JoinDate:             &joinDate,
			IsActive:             true,
		})
	}

	return members
}
