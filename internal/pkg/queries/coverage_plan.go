package queries

const (
	CoveragePlansTable = "Insurance.CoveragePlans"

	GetAllPlans = `
		SELECT
			PlanID,
			PlanCode,
			PlanName,
			PlanType,
			HospitalTier,
			MonthlyPremium,
			AnnualPremium,
			ExcessOptions,
			WaitingPeriods,
			CoverageDetails,
			IsActive,
			EffectiveDate,
			EndDate
		FROM Insurance.CoveragePlans
	`

	GetActivePlans = `
		SELECT
			PlanID,
			PlanCode,
			PlanName,
			PlanType,
			HospitalTier,
			MonthlyPremium,
			AnnualPremium,
			ExcessOptions,
			WaitingPeriods,
			CoverageDetails,
			IsActive,
			EffectiveDate,
			EndDate
		FROM Insurance.CoveragePlans
		WHERE IsActive = 1
	`

	GetPlanByCode = `
		SELECT
			PlanID,
			PlanCode,
			PlanName,
			PlanType,
			HospitalTier,
			MonthlyPremium,
			AnnualPremium,
			ExcessOptions,
			WaitingPeriods,
			CoverageDetails,
			IsActive,
			EffectiveDate,
			EndDate
		FROM Insurance.CoveragePlans
		WHERE PlanCode = @p1
	`

	CountPlans = "SELECT COUNT(*) AS Total FROM Insurance.CoveragePlans"
)
