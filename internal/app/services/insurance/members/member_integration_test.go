//go:build integration

package members

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"aushealthsim/internal/app/config"
	"aushealthsim/internal/app/contracts"
	"aushealthsim/internal/app/drivers/database"
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

func TestIntegrationMemberRepository(t *testing.T) {
	db, sqlClient := openIntegrationDB(t)
	repo := NewMemberMssqlRepository(db, sqlClient, zap.NewNop())
	ctx := context.Background()
	asOf := utils.Today()

	memberNumber := uniqueNumber("TST")
	joinDate := asOf.AddDate(0, 0, -30)
	member := models.Member{
		MemberNumber:   memberNumber,
		Title:          "Mr",
		FirstName:      "Test",
		LastName:       "Member",
		DateOfBirth:    time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC),
		Gender:         "M",
		Email:          "test.member@example.com",
		MobilePhone:    "0400123456",
		AddressLine1:   "123 Test Street",
		City:           "Sydney",
		State:          "NSW",
		PostCode:       "2000",
		Country:        "Australia",
		MedicareNumber: "1234567890",
		PHIRebateTier:  models.RebateTierBase,
		JoinDate:       &joinDate,
		IsActive:       true,
	}

	inserted, err := repo.BulkInsert(ctx, []models.Member{member}, asOf)
	if err != nil {
		t.Fatalf("Failed to insert member: %v", err)
	}
	t.Cleanup(func() {
		sqlClient.NonQuery(context.Background(), "DELETE FROM Insurance.Members WHERE MemberNumber = @p1", memberNumber)
	})
	assert.Equal(t, 1, inserted, "exactly one member row should be written")

	t.Run("Find By Number Round Trips The Row", func(t *testing.T) {
		found, err := repo.FindByNumber(ctx, memberNumber)
		assert.NoError(t, err)
		if !assert.NotNil(t, found, "the inserted member should be retrievable by number") {
			return
		}
		assert.Greater(t, found.MemberID, 0, "the database should assign an identity")
		assert.Equal(t, memberNumber, found.MemberNumber)
		assert.Equal(t, "Test", found.FirstName)
		assert.Equal(t, "Member", found.LastName)
		assert.Equal(t, "1980-01-01", utils.FormatDate(found.DateOfBirth))
		assert.Equal(t, "NSW", found.State)
		assert.Equal(t, "2000", found.PostCode)
		assert.Equal(t, "1234567890", found.MedicareNumber)
		assert.Equal(t, models.RebateTierBase, found.PHIRebateTier)
		if assert.NotNil(t, found.JoinDate, "join date should survive the round trip") {
			assert.Equal(t, utils.FormatDate(joinDate), utils.FormatDate(*found.JoinDate))
		}
		assert.True(t, found.IsActive)
	})

	t.Run("Count Includes The Inserted Member", func(t *testing.T) {
		total, err := repo.Count(ctx)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, total, 1)
	})

	t.Run("Find Numbers Lists The Inserted Number", func(t *testing.T) {
		numbers, err := repo.FindNumbers(ctx)
		assert.NoError(t, err)
		assert.Contains(t, numbers, memberNumber, "the member number listing backs duplicate detection during seeding")
	})

	t.Run("Update Contact Rewrites Email Phone And Address", func(t *testing.T) {
		updated := member
		updated.Email = "updated.member@example.com"
		updated.MobilePhone = "0400999888"
		updated.AddressLine1 = "42 New Street"

		err := repo.UpdateContact(ctx, updated, asOf)
		assert.NoError(t, err)

		found, err := repo.FindByNumber(ctx, memberNumber)
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, "updated.member@example.com", found.Email)
			assert.Equal(t, "0400999888", found.MobilePhone)
			assert.Equal(t, "42 New Street", found.AddressLine1)
		}
	})

	t.Run("Find By Number Misses Cleanly", func(t *testing.T) {
		found, err := repo.FindByNumber(ctx, uniqueNumber("TST"))
		assert.NoError(t, err, "a missing member is not an error")
		assert.Nil(t, found)
	})
}
