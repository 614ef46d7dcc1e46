package contracts

import "aushealthsim/internal/pkg/dto/records"

// SampleDataRepository serves member records from the demo JSON file
// and remembers which ones have already been drawn, so repeated seeding
// runs never reuse a record.
type SampleDataRepository interface {
	LoadAll() ([]records.SampleMemberRecord, error)
	TakeUnused(count int) ([]records.SampleMemberRecord, error)
	UsedMemberIDs() ([]string, error)
	Reset() error
}
