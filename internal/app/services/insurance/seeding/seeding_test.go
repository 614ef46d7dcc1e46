package seeding

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"aushealthsim/internal/pkg/dto/records"
	"aushealthsim/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func asOfDate() time.Time {
	return time.Date(2023, time.May, 15, 0, 0, 0, 0, time.UTC)
}

func TestGeneratePlans(t *testing.T) {
	asOf := asOfDate()

	t.Run("Catalogue Mix", func(t *testing.T) {
		plans := generatePlans(15, asOf, map[string]bool{})
		assert.Len(t, plans, 15, "fifteen requested plans should produce fifteen plans")

		byType := map[models.PlanType]int{}
		for _, plan := range plans {
			byType[plan.PlanType]++
		}
		assert.Equal(t, 5, byType[models.PlanTypeHospital], "a third of the catalogue should be hospital plans")
		assert.Equal(t, 5, byType[models.PlanTypeExtras], "a third of the catalogue should be extras plans")
		assert.Equal(t, 5, byType[models.PlanTypeCombined], "the rest of the catalogue should be combined plans")
	})

	t.Run("Small Counts Keep One Of Each Type", func(t *testing.T) {
		plans := generatePlans(3, asOf, map[string]bool{})
		assert.Len(t, plans, 3, "three requested plans should produce one of each type")
	})

	t.Run("Codes Skip Ones Already Issued", func(t *testing.T) {
		taken := map[string]bool{"H001": true, "E001": true}
		plans := generatePlans(3, asOf, taken)

		codes := make([]string, 0, len(plans))
		for _, plan := range plans {
			codes = append(codes, plan.PlanCode)
		}
		assert.ElementsMatch(t, []string{"H002", "E002", "C001"}, codes,
			"numbering should continue past codes the catalogue already holds")
	})

	t.Run("Plan Invariants", func(t *testing.T) {
		for _, plan := range generatePlans(15, asOf, map[string]bool{}) {
			assert.NotEmpty(t, plan.PlanCode, "every plan should carry a code")
			assert.True(t, plan.IsActive, "seeded plans should start active")
			assert.Greater(t, plan.MonthlyPremium, 0.0, "premiums should be positive")
			assert.InDelta(t, plan.MonthlyPremium*12, plan.AnnualPremium, 0.001, "the annual premium should be twelve months of the monthly premium")
			assert.False(t, plan.EffectiveDate.After(asOf.AddDate(0, 0, -30)), "plans should have been effective at least a month before the seed date")
			assert.False(t, plan.EffectiveDate.Before(asOf.AddDate(0, 0, -365)), "plans should have become effective within the year before the seed date")

			switch plan.PlanType {
			case models.PlanTypeHospital:
				assert.True(t, strings.HasPrefix(plan.PlanCode, "H"), "hospital plan codes should start with H")
				assert.NotEmpty(t, plan.HospitalTier, "hospital plans should carry a tier")
				assert.NotEmpty(t, plan.ExcessOptions, "hospital plans should offer excess options")
				assert.Contains(t, plan.WaitingPeriods, "pre_existing", "hospital plans should carry the standard waiting periods")
			case models.PlanTypeExtras:
				assert.True(t, strings.HasPrefix(plan.PlanCode, "E"), "extras plan codes should start with E")
				assert.Empty(t, plan.HospitalTier, "extras plans should carry no hospital tier")
				assert.Empty(t, plan.ExcessOptions, "extras plans should have no excess options")
				assert.Contains(t, plan.WaitingPeriods, "major_dental", "extras plans should carry dental waiting periods")
			case models.PlanTypeCombined:
				assert.True(t, strings.HasPrefix(plan.PlanCode, "C"), "combined plan codes should start with C")
				assert.Contains(t, plan.WaitingPeriods, "pre_existing", "combined plans should carry the hospital waiting periods")
				assert.Contains(t, plan.WaitingPeriods, "major_dental", "combined plans should carry the extras waiting periods")
				assert.Contains(t, plan.CoverageDetails, "hospital_component", "combined plans should name their hospital component")
			}
		}
	})
}

func TestGenerateProviders(t *testing.T) {
	asOf := asOfDate()
	providerNumberPattern := regexp.MustCompile(`^\d{6}[A-Z]$`)

	providers, err := generateProviders(30, asOf, map[string]bool{})
	assert.NoError(t, err, "generating providers should succeed")
	assert.Len(t, providers, 30, "thirty requested providers should produce thirty providers")

	t.Run("Numbers Are Unique", func(t *testing.T) {
		seen := map[string]bool{}
		for _, provider := range providers {
			assert.False(t, seen[provider.ProviderNumber], "provider number %s should not repeat", provider.ProviderNumber)
			seen[provider.ProviderNumber] = true
		}
	})

	t.Run("Type Mix", func(t *testing.T) {
		hospitals, gps, specialists := 0, 0, 0
		for _, provider := range providers {
			switch {
			case provider.ProviderType == "Hospital":
				hospitals++
			case provider.ProviderType == "General Practitioner":
				gps++
			case strings.HasPrefix(provider.ProviderType, "Specialist - "):
				specialists++
			}
		}
		assert.Equal(t, 5, hospitals, "a tenth of providers, with a floor of five, should be hospitals")
		assert.Equal(t, 10, gps, "a fifth of providers, with a floor of ten, should be GPs")
		assert.Equal(t, 10, specialists, "a fifth of providers, with a floor of ten, should be specialists")
	})

	t.Run("Provider Invariants", func(t *testing.T) {
		for _, provider := range providers {
			assert.Regexp(t, providerNumberPattern, provider.ProviderNumber, "provider numbers should be six digits and a letter")
			assert.True(t, provider.IsActive, "seeded providers should start active")
			assert.Equal(t, "Australia", provider.Country, "providers should default to Australia")
			assert.NotEmpty(t, provider.State, "every provider should carry a state")
			assert.True(t, strings.HasPrefix(provider.Email, "info@"), "provider emails should use the info alias")

			if provider.IsPreferredProvider {
				assert.NotNil(t, provider.AgreementStartDate, "preferred providers should have an agreement start")
				assert.True(t, provider.AgreementStartDate.Before(asOf), "agreements should have started before the seed date")
				if provider.AgreementEndDate != nil {
					assert.True(t, provider.AgreementEndDate.After(asOf), "open agreements should end after the seed date")
				}
			} else {
				assert.Nil(t, provider.AgreementStartDate, "non-preferred providers should have no agreement dates")
				assert.Nil(t, provider.AgreementEndDate, "non-preferred providers should have no agreement dates")
			}
		}
	})
}

func TestConvertMembers(t *testing.T) {
	asOf := asOfDate()

	validRecord := records.SampleMemberRecord{
		MemberID:       "MEM001",
		FirstName:      "John",
		LastName:       "Smith",
		DateOfBirth:    "1980-02-10",
		Gender:         "Male",
		Address:        "1 Collins St",
		City:           "Melbourne",
		State:          "VIC",
		PostCode:       "3000",
		Email:          "john.smith@example.com",
		MobilePhone:    "0412345678",
		MedicareNumber: "2123456701",
	}

	t.Run("Valid Record Converts", func(t *testing.T) {
		members := convertMembers([]records.SampleMemberRecord{validRecord}, asOf, zap.NewNop())
		assert.Len(t, members, 1, "a valid record should convert")

		member := members[0]
		assert.Equal(t, "MEM001", member.MemberNumber, "the sample member ID should become the member number")
		assert.Equal(t, time.Date(1980, time.February, 10, 0, 0, 0, 0, time.UTC), member.DateOfBirth, "the date of birth should parse to a date")
		assert.Equal(t, "Australia", member.Country, "members should default to Australia")
		assert.True(t, member.IsActive, "seeded members should start active")
		assert.Contains(t, rebateTiers, member.PHIRebateTier, "the rebate tier should be one of the four tiers")
		assert.GreaterOrEqual(t, member.LHCLoadingPercentage, 0.0, "LHC loading should never be negative")
		assert.LessOrEqual(t, member.LHCLoadingPercentage, 20.0, "LHC loading should never exceed twenty percent")
		if assert.NotNil(t, member.JoinDate, "seeded members should carry a join date") {
			assert.True(t, member.JoinDate.Before(asOf), "join dates should fall before the seed date")
			assert.False(t, member.JoinDate.Before(asOf.AddDate(-5, 0, 0)), "join dates should fall within the last five years")
		}
	})

	t.Run("Invalid Record Is Skipped", func(t *testing.T) {
		badState := validRecord
		badState.State = "ZZ"

		members := convertMembers([]records.SampleMemberRecord{badState, validRecord}, asOf, zap.NewNop())
		assert.Len(t, members, 1, "the record with an unknown state should be dropped")
		assert.Equal(t, "MEM001", members[0].MemberNumber, "the valid record should survive")
	})

	t.Run("Missing Mandatory Field Is Skipped", func(t *testing.T) {
		anonymous := validRecord
		anonymous.FirstName = ""

		members := convertMembers([]records.SampleMemberRecord{anonymous}, asOf, zap.NewNop())
		assert.Empty(t, members, "a record without a first name should be dropped")
	})
}
