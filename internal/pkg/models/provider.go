package models

import "time"

// Provider is a healthcare provider registered with the fund. The
// ProviderType column carries free text such as "Hospital" or
// "Specialist - Cardiology"; constvars.ProviderTypes lists the base set.
type Provider struct {
	ProviderID          int
	ProviderNumber      string
	ProviderName        string
	ProviderType        string
	AddressLine1        string
	AddressLine2        string
	City                string
	State               string
	PostCode            string
	Country             string
	Phone               string
	Email               string
	IsPreferredProvider bool
	AgreementStartDate  *time.Time
	AgreementEndDate    *time.Time
	IsActive            bool
}

func (p Provider) ToRow() map[string]any {
	return map[string]any{
		"ProviderNumber":      p.ProviderNumber,
		"ProviderName":        p.ProviderName,
		"ProviderType":        p.ProviderType,
		"AddressLine1":        p.AddressLine1,
		"AddressLine2":        p.AddressLine2,
		"City":                p.City,
		"State":               p.State,
		"PostCode":            p.PostCode,
		"Country":             p.Country,
		"Phone":               p.Phone,
		"Email":               p.Email,
		"IsPreferredProvider": p.IsPreferredProvider,
		"AgreementStartDate":  dateOrNil(p.AgreementStartDate),
		"AgreementEndDate":    dateOrNil(p.AgreementEndDate),
		"IsActive":            p.IsActive,
	}
}
