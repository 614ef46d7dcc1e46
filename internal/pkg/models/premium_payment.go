package models

import "time"

type PaymentStatus string

const (
	PaymentStatusSuccessful PaymentStatus = "Successful"
	PaymentStatusFailed     PaymentStatus = "Failed"
	PaymentStatusPending    PaymentStatus = "Pending"
	PaymentStatusRefunded   PaymentStatus = "Refunded"
)

// PremiumPayment records one premium collection against a policy,
// covering the period PeriodStartDate through PeriodEndDate inclusive.
// A single-day period has the two dates equal.
type PremiumPayment struct {
	PaymentID        int
	PolicyID         int
	PaymentDate      time.Time
	PaymentAmount    float64
	PaymentMethod    PaymentMethod
	PaymentReference string
	PaymentStatus    PaymentStatus
	PeriodStartDate  time.Time
	PeriodEndDate    time.Time
}

func (p PremiumPayment) ToRow() map[string]any {
	return map[string]any{
		"PolicyID":         p.PolicyID,
		"PaymentDate":      p.PaymentDate,
		"PaymentAmount":    p.PaymentAmount,
		"PaymentMethod":    string(p.PaymentMethod),
		"PaymentReference": p.PaymentReference,
		"PaymentStatus":    string(p.PaymentStatus),
		"PeriodStartDate":  p.PeriodStartDate,
		"PeriodEndDate":    p.PeriodEndDate,
	}
}
