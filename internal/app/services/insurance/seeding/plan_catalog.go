package seeding

import (
	"aushealthsim/internal/pkg/constvars"
	"aushealthsim/internal/pkg/models"
	"fmt"
	"time"
)

// Plan templates modelled on typical Australian PHI products. Premiums
// are varied per generated plan so repeated seeds never produce
// identical catalogues.

type hospitalPlanTemplate struct {
	Name        string
	Tier        models.HospitalTier
	BasePremium float64
}

var hospitalPlanTemplates = []hospitalPlanTemplate{
	{Name: "Basic Hospital", Tier: models.HospitalTierBasic, BasePremium: 90.0},
	{Name: "Bronze Hospital", Tier: models.HospitalTierBronze, BasePremium: 120.0},
	{Name: "Bronze Plus Hospital", Tier: models.HospitalTierBronze, BasePremium: 140.0},
	{Name: "Silver Hospital", Tier: models.HospitalTierSilver, BasePremium: 160.0},
	{Name: "Silver Plus Hospital", Tier: models.HospitalTierSilver, BasePremium: 180.0},
	{Name: "Gold Hospital", Tier: models.HospitalTierGold, BasePremium: 220.0},
}

type extrasPlanTemplate struct {
	Name        string
	BasePremium float64
	Coverage    map[string]any
}

var extrasPlanTemplates = []extrasPlanTemplate{
	{
		Name:        "Basic Extras",
		BasePremium: 30.0,
		Coverage: map[string]any{
			"dental":  map[string]any{"annual_limit": 500, "preventative": "60%", "general": "50%"},
			"optical": map[string]any{"annual_limit": 200},
			"physio":  map[string]any{"annual_limit": 300, "per_visit": "$40"},
		},
	},
	{
		Name:        "Mid Extras",
		BasePremium: 45.0,
		Coverage: map[string]any{
			"dental":           map[string]any{"annual_limit": 800, "preventative": "70%", "general": "60%"},
			"optical":          map[string]any{"annual_limit": 300},
			"physio":           map[string]any{"annual_limit": 450, "per_visit": "$50"},
			"chiro":            map[string]any{"annual_limit": 350, "per_visit": "$40"},
			"remedial_massage": map[string]any{"annual_limit": 300, "per_visit": "$35"},
		},
	},
	{
		Name:        "Top Extras",
		BasePremium: 65.0,
		Coverage: map[string]any{
			"dental":           map[string]any{"annual_limit": 1200, "preventative": "80%", "general": "70%", "major": "60%"},
			"optical":          map[string]any{"annual_limit": 400},
			"physio":           map[string]any{"annual_limit": 700, "per_visit": "$60"},
			"chiro":            map[string]any{"annual_limit": 500, "per_visit": "$50"},
			"podiatry":         map[string]any{"annual_limit": 400, "per_visit": "$45"},
			"psychology":       map[string]any{"annual_limit": 500, "per_visit": "$80"},
			"remedial_massage": map[string]any{"annual_limit": 400, "per_visit": "$45"},
			"acupuncture":      map[string]any{"annual_limit": 300, "per_visit": "$40"},
		},
	},
}

type combinedPlanTemplate struct {
	Name              string
	Tier              models.HospitalTier
	BasePremium       float64
	HospitalComponent string
	ExtrasComponent   string
}

var combinedPlanTemplates = []combinedPlanTemplate{
	{Name: "Basic Bundle", Tier: models.HospitalTierBasic, BasePremium: 110.0, HospitalComponent: "Basic Hospital", ExtrasComponent: "Basic Extras"},
	{Name: "Bronze Bundle", Tier: models.HospitalTierBronze, BasePremium: 150.0, HospitalComponent: "Bronze Hospital", ExtrasComponent: "Mid Extras"},
	{Name: "Silver Bundle", Tier: models.HospitalTierSilver, BasePremium: 200.0, HospitalComponent: "Silver Hospital", ExtrasComponent: "Mid Extras"},
	{Name: "Gold Bundle", Tier: models.HospitalTierGold, BasePremium: 270.0, HospitalComponent: "Gold Hospital", ExtrasComponent: "Top Extras"},
}

// generatePlans builds a catalogue of roughly one third hospital, one
// third extras and one third combined plans. Effective dates fall within
// the year before asOf. Codes in taken are skipped, so reseeding an
// already populated catalogue continues the numbering instead of
// colliding with the unique plan code key.
func generatePlans(count int, asOf time.Time, taken map[string]bool) []models.CoveragePlan {
	hospitalCount := max(1, count/3)
	extrasCount := max(1, count/3)
	combinedCount := max(1, count-hospitalCount-extrasCount)

	plans := make([]models.CoveragePlan, 0, hospitalCount+extrasCount+combinedCount)

	for i := 0; i < hospitalCount; i++ {
		template := hospitalPlanTemplates[randomIndex(len(hospitalPlanTemplates))]
		monthly := round2(template.BasePremium * randomUniform(0.9, 1.1))

		plans = append(plans, models.CoveragePlan{
			PlanCode:        nextPlanCode("H", taken),
			PlanName:        template.Name,
			PlanType:        models.PlanTypeHospital,
			HospitalTier:    template.Tier,
			MonthlyPremium:  monthly,
			AnnualPremium:   monthly * 12,
			ExcessOptions:   excessOptionsForTier(template.Tier),
			WaitingPeriods:  copyWaitingPeriods(constvars.DefaultWaitingPeriods),
			CoverageDetails: hospitalCoverageDetails(template.Name, template.Tier),
			IsActive:        true,
			EffectiveDate:   asOf.AddDate(0, 0, -randomBetween(30, 365)),
		})
	}

	for i := 0; i < extrasCount; i++ {
		template := extrasPlanTemplates[randomIndex(len(extrasPlanTemplates))]
		monthly := round2(template.BasePremium * randomUniform(0.9, 1.1))

		plans = append(plans, models.CoveragePlan{
			PlanCode:       nextPlanCode("E", taken),
			PlanName:       template.Name,
			PlanType:       models.PlanTypeExtras,
			MonthlyPremium: monthly,
			AnnualPremium:  monthly * 12,
			WaitingPeriods: map[string]int{
				"general":      2,
				"major_dental": 12,
				"optical":      2,
			},
			CoverageDetails: template.Coverage,
			IsActive:        true,
			EffectiveDate:   asOf.AddDate(0, 0, -randomBetween(30, 365)),
		})
	}

	for i := 0; i < combinedCount; i++ {
		template := combinedPlanTemplates[randomIndex(len(combinedPlanTemplates))]
		monthly := round2(template.BasePremium * randomUniform(0.9, 1.1))

		waitingPeriods := copyWaitingPeriods(constvars.DefaultWaitingPeriods)
		waitingPeriods["major_dental"] = 12
		waitingPeriods["optical"] = 2

		plans = append(plans, models.CoveragePlan{
			PlanCode:       nextPlanCode("C", taken),
			PlanName:       template.Name,
			PlanType:       models.PlanTypeCombined,
			HospitalTier:   template.Tier,
			MonthlyPremium: monthly,
			AnnualPremium:  monthly * 12,
			ExcessOptions:  excessOptionsForTier(template.Tier),
			WaitingPeriods: waitingPeriods,
			CoverageDetails: map[string]any{
				"hospital_component": template.HospitalComponent,
				"extras_component":   template.ExtrasComponent,
			},
			IsActive:      true,
			EffectiveDate: asOf.AddDate(0, 0, -randomBetween(30, 365)),
		})
	}

	return plans
}

// nextPlanCode hands out the lowest free code for a prefix and marks it
// taken, so one batch never repeats itself either.
func nextPlanCode(prefix string, taken map[string]bool) string {
	for i := 1; ; i++ {
		code := fmt.Sprintf("%s%03d", prefix, i)
		if !taken[code] {
			taken[code] = true
			return code
		}
	}
}

func excessOptionsForTier(tier models.HospitalTier) []float64 {
	if tier == models.HospitalTierBasic || tier == models.HospitalTierBronze {
		return []float64{500, 750}
	}
	return []float64{0, 250, 500, 750}
}

func hospitalCoverageDetails(name string, tier models.HospitalTier) map[string]any {
	details := map[string]any{
		"description": fmt.Sprintf("%s provides cover for %s tier hospital services", name, tier),
	}

	switch tier {
	case models.HospitalTierBasic:
		details["included_services"] = []string{"Accidents", "Ambulance"}
		details["restricted_services"] = []string{"Rehabilitation", "Psychiatric services"}
		details["excluded_services"] = []string{"Heart and vascular system", "Joint replacements", "Pregnancy and birth"}
	case models.HospitalTierBronze:
		details["included_services"] = []string{"Accidents", "Ambulance", "Dental surgery", "Hernia and appendix"}
		details["restricted_services"] = []string{"Rehabilitation", "Psychiatric services"}
		details["excluded_services"] = []string{"Heart and vascular system", "Joint replacements", "Pregnancy and birth"}
	case models.HospitalTierSilver:
		details["included_services"] = []string{"Accidents", "Ambulance", "Dental surgery", "Hernia and appendix", "Heart and vascular system", "Lung and chest"}
		details["restricted_services"] = []string{"Rehabilitation", "Psychiatric services", "Pregnancy and birth"}
		details["excluded_services"] = []string{"Joint replacements"}
	default:
		details["included_services"] = []string{"Accidents", "Ambulance", "Dental surgery", "Hernia and appendix", "Heart and vascular system", "Lung and chest", "Joint replacements", "Pregnancy and birth", "Rehabilitation", "Psychiatric services"}
		details["restricted_services"] = []string{}
		details["excluded_services"] = []string{}
	}

	return details
}

func copyWaitingPeriods(src map[string]int) map[string]int {
	out := make(map[string]int, len(src))
	for service, months := range src {
		out[service] = months
	}
	return out
}
