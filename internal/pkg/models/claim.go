package models

import "time"

type ClaimStatus string

const (
	ClaimStatusSubmitted ClaimStatus = "Submitted"
	ClaimStatusInProcess ClaimStatus = "In Process"
	ClaimStatusApproved  ClaimStatus = "Approved"
	ClaimStatusPaid      ClaimStatus = "Paid"
	ClaimStatusRejected  ClaimStatus = "Rejected"
)

// Claim records a benefit claim against a policy. The charged amount
// splits into the Medicare, insurance and gap portions, so
// ChargedAmount equals MedicareAmount + InsuranceAmount + GapAmount.
// Any excess counts toward the gap and is recorded in ExcessApplied.
type Claim struct {
	ClaimID            int
	ClaimNumber        string
	PolicyID           int
	MemberID           int
	ProviderID         int
	ServiceDate        time.Time
	SubmissionDate     time.Time
	ClaimType          string
	ServiceDescription string
	MBSItemNumber      string
	ChargedAmount      float64
	MedicareAmount     float64
	InsuranceAmount    float64
	GapAmount          float64
	ExcessApplied      float64
	Status             ClaimStatus
	ProcessedDate      *time.Time
	PaymentDate        *time.Time
	RejectionReason    string
}

func (c Claim) ToRow() map[string]any {
	return map[string]any{
		"ClaimNumber":        c.ClaimNumber,
		"PolicyID":           c.PolicyID,
		"MemberID":           c.MemberID,
		"ProviderID":         c.ProviderID,
		"ServiceDate":        c.ServiceDate,
		"SubmissionDate":     c.SubmissionDate,
		"ClaimType":          c.ClaimType,
		"ServiceDescription": c.ServiceDescription,
		"MBSItemNumber":      c.MBSItemNumber,
		"ChargedAmount":      c.ChargedAmount,
		"MedicareAmount":     c.MedicareAmount,
		"InsuranceAmount":    c.InsuranceAmount,
		"GapAmount":          c.GapAmount,
		"ExcessApplied":      c.ExcessApplied,
		"Status":             string(c.Status),
		"ProcessedDate":      dateOrNil(c.ProcessedDate),
		"PaymentDate":        dateOrNil(c.PaymentDate),
		"RejectionReason":    c.RejectionReason,
	}
}
