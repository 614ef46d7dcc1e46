package sampledata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const sampleFixture = `[
	{"member_id": "M1", "first_name": "John", "last_name": "Smith", "date_of_birth": "1980-02-10", "gender": "Male", "address": "1 Collins St", "city": "Melbourne", "state": "VIC", "postcode": 3000, "email": "john@example.com", "mobile_phone": "0400000001", "home_phone": "", "medicare_number": "2123456701"},
	{"member_id": "M2", "first_name": "Sarah", "last_name": "Jones", "date_of_birth": "1975-08-22", "gender": "Female", "address": "2 George St", "city": "Sydney", "state": "NSW", "postcode": 2000, "email": "sarah@example.com", "mobile_phone": "0400000002", "home_phone": "", "medicare_number": "2123456702"},
	{"member_id": "M3", "first_name": "Wei", "last_name": "Chen", "date_of_birth": "1990-11-03", "gender": "Male", "address": "3 Adelaide St", "city": "Brisbane", "state": "QLD", "postcode": 4000, "email": "wei@example.com", "mobile_phone": "0400000003", "home_phone": "", "medicare_number": "2123456703"}
]`

func newTestRepository(t *testing.T) *sampleDataFileRepository {
	dir := t.TempDir()
	samplePath := filepath.Join(dir, "sample.json")
	if err := os.WriteFile(samplePath, []byte(sampleFixture), 0644); err != nil {
		t.Fatalf("writing sample fixture: %v", err)
	}

	return &sampleDataFileRepository{
		SamplePath: samplePath,
		UsedPath:   filepath.Join(dir, "used_members.json"),
		Log:        zap.NewNop(),
	}
}

func TestSampleDataLoadAll(t *testing.T) {
	t.Run("Reads Every Record", func(t *testing.T) {
		repository := newTestRepository(t)

		all, err := repository.LoadAll()
		assert.NoError(t, err, "loading an existing sample file should succeed")
		assert.Len(t, all, 3, "every record in the file should come back")
		assert.Equal(t, "M1", all[0].MemberID, "records should keep file order")
		assert.Equal(t, "3000", all[0].PostCode.String(), "numeric postcodes should carry their text form")
	})

	t.Run("Missing File Is An Error", func(t *testing.T) {
		repository := newTestRepository(t)
		repository.SamplePath = filepath.Join(t.TempDir(), "nowhere.json")

		_, err := repository.LoadAll()
		assert.Error(t, err, "a missing sample file should be reported")
	})
}

func TestSampleDataTakeUnused(t *testing.T) {
	t.Run("Never Hands Out The Same Record Twice", func(t *testing.T) {
		repository := newTestRepository(t)

		first, err := repository.TakeUnused(2)
		assert.NoError(t, err, "the first draw should succeed")
		assert.Len(t, first, 2, "the first draw should fill the requested count")
		assert.Equal(t, "M1", first[0].MemberID, "draws should follow file order")
		assert.Equal(t, "M2", first[1].MemberID, "draws should follow file order")

		second, err := repository.TakeUnused(2)
		assert.NoError(t, err, "the second draw should succeed")
		assert.Len(t, second, 1, "only the remaining record should come back")
		assert.Equal(t, "M3", second[0].MemberID, "the last unused record should be drawn")

		third, err := repository.TakeUnused(2)
		assert.NoError(t, err, "draining the file should not be an error")
		assert.Empty(t, third, "an exhausted file should yield nothing")
	})

	t.Run("Used IDs Are Tracked Sorted", func(t *testing.T) {
		repository := newTestRepository(t)

		_, err := repository.TakeUnused(3)
		assert.NoError(t, err, "drawing all records should succeed")

		ids, err := repository.UsedMemberIDs()
		assert.NoError(t, err, "listing used IDs should succeed")
		assert.Equal(t, []string{"M1", "M2", "M3"}, ids, "used IDs should come back sorted")
	})

	t.Run("Reset Makes Everything Available Again", func(t *testing.T) {
		repository := newTestRepository(t)

		_, err := repository.TakeUnused(3)
		assert.NoError(t, err, "drawing all records should succeed")
		assert.NoError(t, repository.Reset(), "resetting the tracker should succeed")

		ids, err := repository.UsedMemberIDs()
		assert.NoError(t, err, "listing used IDs after reset should succeed")
		assert.Empty(t, ids, "no IDs should remain used after a reset")

		again, err := repository.TakeUnused(1)
		assert.NoError(t, err, "drawing after a reset should succeed")
		assert.Len(t, again, 1, "one record should be drawable after the reset")
		assert.Equal(t, "M1", again[0].MemberID, "the first record should be available again")
	})

	t.Run("Reset Without Tracker File Is Fine", func(t *testing.T) {
		repository := newTestRepository(t)
		assert.NoError(t, repository.Reset(), "resetting before any draw should succeed")
	})
}
