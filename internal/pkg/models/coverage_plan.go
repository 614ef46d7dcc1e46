package models

import "time"

type PlanType string

const (
	PlanTypeHospital PlanType = "Hospital"
	PlanTypeExtras   PlanType = "Extras"
	PlanTypeCombined PlanType = "Combined"
)

type HospitalTier string

const (
	HospitalTierBasic  HospitalTier = "Basic"
	HospitalTierBronze HospitalTier = "Bronze"
	HospitalTierSilver HospitalTier = "Silver"
	HospitalTierGold   HospitalTier = "Gold"
)

// CoveragePlan is a health cover product as stored in
// Insurance.CoveragePlans. ExcessOptions, WaitingPeriods and
// CoverageDetails live in JSON text columns; in memory they are kept as
// real structures so callers never touch encoded text.
type CoveragePlan struct {
	PlanID          int
	PlanCode        string
	PlanName        string
	PlanType        PlanType
	HospitalTier    HospitalTier
	MonthlyPremium  float64
	AnnualPremium   float64
	ExcessOptions   []float64
	WaitingPeriods  map[string]int
	CoverageDetails map[string]any
	IsActive        bool
	EffectiveDate   time.Time
	EndDate         *time.Time
}

// ToRow projects the plan onto its table columns. The three structured
// fields encode to JSON text; empty ones become NULL. Decoding the text
// yields the original structure unchanged.
func (p CoveragePlan) ToRow() map[string]any {
	row := map[string]any{
		"PlanCode":        p.PlanCode,
		"PlanName":        p.PlanName,
		"PlanType":        string(p.PlanType),
		"HospitalTier":    string(p.HospitalTier),
		"MonthlyPremium":  p.MonthlyPremium,
		"AnnualPremium":   p.AnnualPremium,
		"ExcessOptions":   nil,
		"WaitingPeriods":  nil,
		"CoverageDetails": nil,
		"IsActive":        p.IsActive,
		"EffectiveDate":   p.EffectiveDate,
		"EndDate":         dateOrNil(p.EndDate),
	}
	if len(p.ExcessOptions) > 0 {
		row["ExcessOptions"] = jsonText(p.ExcessOptions)
	}
	if len(p.WaitingPeriods) > 0 {
		row["WaitingPeriods"] = jsonText(p.WaitingPeriods)
	}
	if len(p.CoverageDetails) > 0 {
		row["CoverageDetails"] = jsonText(p.CoverageDetails)
	}
	return row
}
