package queries

const (
	PoliciesTable      = "Insurance.Policies"
	PolicyMembersTable = "Insurance.PolicyMembers"

	GetAllPolicies = `
		SELECT
			PolicyID,
			PolicyNumber,
			PrimaryMemberID,
			PlanID,
			CoverageType,
			StartDate,
			EndDate,
			ExcessAmount,
			PremiumFrequency,
			CurrentPremium,
			RebatePercentage,
			LHCLoadingPercentage,
			Status,
			PaymentMethod,
			LastPremiumPaidDate,
			NextPremiumDueDate
		FROM Insurance.Policies
	`

	GetPolicyByNumber = `
		SELECT
			PolicyID,
			PolicyNumber,
			PrimaryMemberID,
			PlanID,
			CoverageType,
			StartDate,
			EndDate,
			ExcessAmount,
			PremiumFrequency,
			CurrentPremium,
			RebatePercentage,
			LHCLoadingPercentage,
			Status,
			PaymentMethod,
			LastPremiumPaidDate,
			NextPremiumDueDate
		FROM Insurance.Policies
		WHERE PolicyNumber = @p1
	`

	GetPoliciesDueForPayment = `
		SELECT
			PolicyID,
			PolicyNumber,
			PrimaryMemberID,
			PlanID,
			CoverageType,
			StartDate,
			EndDate,
			ExcessAmount,
			PremiumFrequency,
			CurrentPremium,
			RebatePercentage,
			LHCLoadingPercentage,
			Status,
			PaymentMethod,
			LastPremiumPaidDate,
			NextPremiumDueDate
		FROM Insurance.Policies
		WHERE Status = 'Active' AND NextPremiumDueDate <= @p1
	`

	CountPolicies = "SELECT COUNT(*) AS Total FROM Insurance.Policies"

	UpdatePolicyDetails = `
		UPDATE Insurance.Policies
		SET PlanID = @p1, CoverageType = @p2, ExcessAmount = @p3, Status = @p4,
			PaymentMethod = @p5, CurrentPremium = @p6, LastModified = GETDATE()
		WHERE PolicyNumber = @p7
	`

	UpdatePolicyPaymentDates = `
		UPDATE Insurance.Policies
		SET LastPremiumPaidDate = @p1, NextPremiumDueDate = @p2, LastModified = GETDATE()
		WHERE PolicyNumber = @p3
	`

	GetPolicyMemberPairs = "SELECT PolicyID, MemberID FROM Insurance.PolicyMembers"

	GetPolicyMembersByPolicy = `
		SELECT
			PolicyMemberID,
			PolicyID,
			MemberID,
			RelationshipToPrimary,
			StartDate,
			EndDate,
			IsActive
		FROM Insurance.PolicyMembers
		WHERE PolicyID = @p1
	`
)
