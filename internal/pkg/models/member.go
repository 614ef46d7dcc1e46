package models

import "time"

type RebateTier string

const (
	RebateTierBase  RebateTier = "Base"
	RebateTierOne   RebateTier = "Tier1"
	RebateTierTwo   RebateTier = "Tier2"
	RebateTierThree RebateTier = "Tier3"
)

// Member is a policyholder as stored in Insurance.Members. MemberID is
// assigned by the database and takes no part in the insert projection.
type Member struct {
	MemberID             int
	MemberNumber         string
	Title                string
	FirstName            string
	LastName             string
	DateOfBirth          time.Time
	Gender               string
	Email                string
	MobilePhone          string
	HomePhone            string
	AddressLine1         string
	AddressLine2         string
	City                 string
	State                string
	PostCode             string
	Country              string
	MedicareNumber       string
	LHCLoadingPercentage float64
	PHIRebateTier        RebateTier
	JoinDate             *time.Time
	IsActive             bool
}

// ToRow projects the member onto its table columns. Values keep their
// native types; unset JoinDate becomes NULL.
func (m Member) ToRow() map[string]any {
	return map[string]any{
		"MemberNumber":         m.MemberNumber,
		"Title":                m.Title,
		"FirstName":            m.FirstName,
		"LastName":             m.LastName,
		"DateOfBirth":          m.DateOfBirth,
		"Gender":               m.Gender,
		"Email":                m.Email,
		"MobilePhone":          m.MobilePhone,
		"HomePhone":            m.HomePhone,
		"AddressLine1":         m.AddressLine1,
		"AddressLine2":         m.AddressLine2,
		"City":                 m.City,
		"State":                m.State,
		"PostCode":             m.PostCode,
		"Country":              m.Country,
		"MedicareNumber":       m.MedicareNumber,
		"LHCLoadingPercentage": m.LHCLoadingPercentage,
		"PHIRebateTier":        string(m.PHIRebateTier),
		"JoinDate":             dateOrNil(m.JoinDate),
		"IsActive":             m.IsActive,
	}
}
