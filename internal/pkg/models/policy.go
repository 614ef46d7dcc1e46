package models

import "time"

type CoverageType string

const (
	CoverageTypeSingle       CoverageType = "Single"
	CoverageTypeCouple       CoverageType = "Couple"
	CoverageTypeFamily       CoverageType = "Family"
	CoverageTypeSingleParent CoverageType = "Single Parent"
)

type PremiumFrequency string

const (
	PremiumFrequencyMonthly   PremiumFrequency = "Monthly"
	PremiumFrequencyQuarterly PremiumFrequency = "Quarterly"
	PremiumFrequencyAnnually  PremiumFrequency = "Annually"
)

type PolicyStatus string

const (
	PolicyStatusActive    PolicyStatus = "Active"
	PolicyStatusSuspended PolicyStatus = "Suspended"
	PolicyStatusCancelled PolicyStatus = "Cancelled"
	PolicyStatusLapsed    PolicyStatus = "Lapsed"
)

type PaymentMethod string

const (
	PaymentMethodDirectDebit PaymentMethod = "Direct Debit"
	PaymentMethodCreditCard  PaymentMethod = "Credit Card"
	PaymentMethodBPAY        PaymentMethod = "BPAY"
	PaymentMethodPayPal      PaymentMethod = "PayPal"
)

// Policy ties a primary member to a coverage plan. PrimaryMemberID and
// PlanID reference Insurance.Members and Insurance.CoveragePlans rows.
type Policy struct {
	PolicyID             int
	PolicyNumber         string
	PrimaryMemberID      int
	PlanID               int
	CoverageType         CoverageType
	StartDate            time.Time
	EndDate              *time.Time
	ExcessAmount         float64
	PremiumFrequency     PremiumFrequency
	CurrentPremium       float64
	RebatePercentage     float64
	LHCLoadingPercentage float64
	Status               PolicyStatus
	PaymentMethod        PaymentMethod
	LastPremiumPaidDate  *time.Time
	NextPremiumDueDate   *time.Time
}

func (p Policy) ToRow() map[string]any {
	return map[string]any{
		"PolicyNumber":         p.PolicyNumber,
		"PrimaryMemberID":      p.PrimaryMemberID,
		"PlanID":               p.PlanID,
		"CoverageType":         string(p.CoverageType),
		"StartDate":            p.StartDate,
		"EndDate":              dateOrNil(p.EndDate),
		"ExcessAmount":         p.ExcessAmount,
		"PremiumFrequency":     string(p.PremiumFrequency),
		"CurrentPremium":       p.CurrentPremium,
		"RebatePercentage":     p.RebatePercentage,
		"LHCLoadingPercentage": p.LHCLoadingPercentage,
		"Status":               string(p.Status),
		"PaymentMethod":        string(p.PaymentMethod),
		"LastPremiumPaidDate":  dateOrNil(p.LastPremiumPaidDate),
		"NextPremiumDueDate":   dateOrNil(p.NextPremiumDueDate),
	}
}
