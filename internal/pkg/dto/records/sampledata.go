package records

import "github.com/goccy/go-json"

// SampleMemberRecord is one entry of the demo member JSON file. PostCode
// arrives as a bare number in the export and is carried as its text.
type SampleMemberRecord struct {
	MemberID       string      `json:"member_id" validate:"required"`
	FirstName      string      `json:"first_name" validate:"required"`
	LastName       string      `json:"last_name" validate:"required"`
	DateOfBirth    string      `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender         string      `json:"gender"`
	Address        string      `json:"address"`
	City           string      `json:"city"`
	State          string      `json:"state" validate:"omitempty,au_state"`
	PostCode       json.Number `json:"postcode" validate:"omitempty,au_postcode"`
	Email          string      `json:"email" validate:"omitempty,email"`
	MobilePhone    string      `json:"mobile_phone"`
	HomePhone      string      `json:"home_phone"`
	MedicareNumber string      `json:"medicare_number" validate:"omitempty,medicare_number"`
}
