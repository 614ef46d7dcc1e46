//go:build integration

package payments

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"aushealthsim/internal/app/config"
	"aushealthsim/internal/app/contracts"
	"aushealthsim/internal/app/drivers/database"
	"aushealthsim/internal/app/services/insurance/members"
	"aushealthsim/internal/app/services/insurance/plans"
	"aushealthsim/internal/app/services/insurance/policies"
	"aushealthsim/internal/app/services/shared/sqlexec"
	"aushealthsim/internal/pkg/models"
	"aushealthsim/internal/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func openIntegrationDB(t *testing.T) (*sql.DB, contracts.SQLClient) {
	t.Helper()
	driverConfig := config.NewDriverConfig()
	db, err := sql.Open(driverConfig.SQLServer.Driver, database.ConnectionString(driverConfig))
	if err != nil {
		t.Fatalf("Failed to open sqlserver connection: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("Skipping test due to unreachable database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, sqlexec.NewMSSQLClient(db, zap.NewNop())
}

func uniqueNumber(prefix string) string {
	return prefix + strings.ToUpper(uuid.NewString()[:8])
}

// insertPolicyFixture writes the member, plan and policy a payment
// hangs off and returns the policy identity. Cleanups registered in
// creation order unwind the foreign key chain last-in-first-out.
func insertPolicyFixture(t *testing.T, ctx context.Context, db *sql.DB, sqlClient contracts.SQLClient, asOf time.Time) int {
	t.Helper()

	memberNumber := uniqueNumber("TST")
	joinDate := asOf.AddDate(0, 0, -30)
	memberRepo := members.NewMemberMssqlRepository(db, sqlClient, zap.NewNop())
	_, err := memberRepo.BulkInsert(ctx, []models.Member{{
		MemberNumber:   memberNumber,
		FirstName:      "Test",
		LastName:       "Payer",
		DateOfBirth:    time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC),
		Gender:         "M",
		AddressLine1:   "123 Test Street",
		City:           "Sydney",
		State:          "NSW",
		PostCode:       "2000",
		Country:        "Australia",
		MedicareNumber: "1234567890",
		PHIRebateTier:  models.RebateTierBase,
		JoinDate:       &joinDate,
		IsActive:       true,
	}}, asOf)
	if err != nil {
		t.Fatalf("Failed to insert member fixture: %v", err)
	}
	t.Cleanup(func() {
		sqlClient.NonQuery(context.Background(), "DELETE FROM Insurance.Members WHERE MemberNumber = @p1", memberNumber)
	})
	member, err := memberRepo.FindByNumber(ctx, memberNumber)
	if err != nil || member == nil {
		t.Fatalf("Failed to read back member fixture %s: %v", memberNumber, err)
	}

	planCode := uniqueNumber("TST")
	planRepo := plans.NewCoveragePlanMssqlRepository(db, sqlClient, zap.NewNop())
	_, err = planRepo.BulkInsert(ctx, []models.CoveragePlan{{
		PlanCode:       planCode,
		PlanName:       "Test Plan",
		PlanType:       models.PlanTypeCombined,
		HospitalTier:   models.HospitalTierSilver,
		MonthlyPremium: 150.0,
		AnnualPremium:  1800.0,
		IsActive:       true,
		EffectiveDate:  asOf.AddDate(0, 0, -30),
	}}, asOf)
	if err != nil {
		t.Fatalf("Failed to insert plan fixture: %v", err)
	}
	t.Cleanup(func() {
		sqlClient.NonQuery(context.Background(), "DELETE FROM Insurance.CoveragePlans WHERE PlanCode = @p1", planCode)
	})
	plan, err := planRepo.FindByCode(ctx, planCode)
	if err != nil || plan == nil {
		t.Fatalf("Failed to read back plan fixture %s: %v", planCode, err)
	}

	policyNumber := uniqueNumber("POL")
	policyRepo := policies.NewPolicyMssqlRepository(db, sqlClient, zap.NewNop())
	_, err = policyRepo.BulkInsert(ctx, []models.Policy{{
		PolicyNumber:     policyNumber,
		PrimaryMemberID:  member.MemberID,
		PlanID:           plan.PlanID,
		CoverageType:     models.CoverageTypeSingle,
		StartDate:        asOf.AddDate(0, -1, 0),
		ExcessAmount:     500.0,
		PremiumFrequency: models.PremiumFrequencyMonthly,
		CurrentPremium:   150.0,
		Status:           models.PolicyStatusActive,
		PaymentMethod:    models.PaymentMethodDirectDebit,
	}}, asOf)
	if err != nil {
		t.Fatalf("Failed to insert policy fixture: %v", err)
	}
	t.Cleanup(func() {
		sqlClient.NonQuery(context.Background(), "DELETE FROM Insurance.Policies WHERE PolicyNumber = @p1", policyNumber)
	})
	policy, err := policyRepo.FindByNumber(ctx, policyNumber)
	if err != nil || policy == nil {
		t.Fatalf("Failed to read back policy fixture %s: %v", policyNumber, err)
	}
	return policy.PolicyID
}

func TestIntegrationPremiumPaymentRepository(t *testing.T) {
	db, sqlClient := openIntegrationDB(t)
	repo := NewPremiumPaymentMssqlRepository(db, sqlClient, zap.NewNop())
	ctx := context.Background()
	asOf := utils.Today()

	policyID := insertPolicyFixture(t, ctx, db, sqlClient, asOf)

	reference := uniqueNumber("PAY")
	payment := models.PremiumPayment{
		PolicyID:         policyID,
		PaymentDate:      asOf,
		PaymentAmount:    150.0,
		PaymentMethod:    models.PaymentMethodDirectDebit,
		PaymentReference: reference,
		PaymentStatus:    models.PaymentStatusSuccessful,
		PeriodStartDate:  asOf,
		PeriodEndDate:    asOf.AddDate(0, 1, -1),
	}

	inserted, err := repo.BulkInsert(ctx, []models.PremiumPayment{payment}, asOf)
	if err != nil {
		t.Fatalf("Failed to insert payment: %v", err)
	}
	t.Cleanup(func() {
		sqlClient.NonQuery(context.Background(), "DELETE FROM Insurance.PremiumPayments WHERE PolicyID = @p1", policyID)
	})
	assert.Equal(t, 1, inserted, "exactly one payment row should be written")

	t.Run("Find By Policy Round Trips The Row", func(t *testing.T) {
		found, err := repo.FindByPolicy(ctx, policyID)
		assert.NoError(t, err)
		if !assert.Len(t, found, 1, "the policy should carry its single payment") {
			return
		}
		assert.Greater(t, found[0].PaymentID, 0, "the database should assign an identity")
		assert.Equal(t, policyID, found[0].PolicyID)
		assert.Equal(t, 150.0, found[0].PaymentAmount)
		assert.Equal(t, models.PaymentMethodDirectDebit, found[0].PaymentMethod)
		assert.Equal(t, reference, found[0].PaymentReference)
		assert.Equal(t, models.PaymentStatusSuccessful, found[0].PaymentStatus)
		assert.Equal(t, utils.FormatDate(asOf), utils.FormatDate(found[0].PaymentDate))
		assert.Equal(t, utils.FormatDate(asOf.AddDate(0, 1, -1)), utils.FormatDate(found[0].PeriodEndDate))
	})

	t.Run("Find By Policy Misses Cleanly", func(t *testing.T) {
		found, err := repo.FindByPolicy(ctx, -1)
		assert.NoError(t, err, "a policy without payments is not an error")
		assert.Empty(t, found)
	})

	t.Run("Count Includes The Inserted Payment", func(t *testing.T) {
		total, err := repo.Count(ctx)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, total, 1)
	})
}
