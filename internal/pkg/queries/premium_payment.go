package queries

const (
	PremiumPaymentsTable = "Insurance.PremiumPayments"

	GetAllPayments = `
		SELECT
			PaymentID,
			PolicyID,
			PaymentDate,
			PaymentAmount,
			PaymentMethod,
			PaymentReference,
			PaymentStatus,
			PeriodStartDate,
			PeriodEndDate
		FROM Insurance.PremiumPayments
	`

	GetPaymentsByPolicy = `
		SELECT
			PaymentID,
			PolicyID,
			PaymentDate,
			PaymentAmount,
			PaymentMethod,
			PaymentReference,
			PaymentStatus,
			PeriodStartDate,
			PeriodEndDate
		FROM Insurance.PremiumPayments
		WHERE PolicyID = @p1
	`

	CountPayments = "SELECT COUNT(*) AS Total FROM Insurance.PremiumPayments"
)
