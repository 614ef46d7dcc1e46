package queries

const (
	ClaimsTable = "Insurance.Claims"

	GetAllClaims = `
		SELECT
			ClaimID,
			ClaimNumber,
			PolicyID,
			MemberID,
			ProviderID,
			ServiceDate,
			SubmissionDate,
			ClaimType,
			ServiceDescription,
			MBSItemNumber,
			ChargedAmount,
			MedicareAmount,
			InsuranceAmount,
			GapAmount,
			ExcessApplied,
			Status,
			ProcessedDate,
			PaymentDate,
			RejectionReason
		FROM Insurance.Claims
	`

	GetClaimByNumber = `
		SELECT
			ClaimID,
			ClaimNumber,
			PolicyID,
			MemberID,
			ProviderID,
			ServiceDate,
			SubmissionDate,
			ClaimType,
			ServiceDescription,
			MBSItemNumber,
			ChargedAmount,
			MedicareAmount,
			InsuranceAmount,
			GapAmount,
			ExcessApplied,
			Status,
			ProcessedDate,
			PaymentDate,
			RejectionReason
		FROM Insurance.Claims
		WHERE ClaimNumber = @p1
	`

	GetOpenClaims = `
		SELECT
			ClaimID,
			ClaimNumber,
			PolicyID,
			MemberID,
			ProviderID,
			ServiceDate,
			SubmissionDate,
			ClaimType,
			ServiceDescription,
			MBSItemNumber,
			ChargedAmount,
			MedicareAmount,
			InsuranceAmount,
			GapAmount,
			ExcessApplied,
			Status,
			ProcessedDate,
			PaymentDate,
			RejectionReason
		FROM Insurance.Claims
		WHERE Status = 'Submitted' OR Status = 'In Process'
	`

	CountClaims = "SELECT COUNT(*) AS Total FROM Insurance.Claims"

	UpdateClaimStatus = `
		UPDATE Insurance.Claims
		SET Status = @p1, ProcessedDate = @p2, PaymentDate = @p3, RejectionReason = @p4, LastModified = GETDATE()
		WHERE ClaimNumber = @p5
	`
)
