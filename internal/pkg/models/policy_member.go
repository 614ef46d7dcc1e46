package models

import "time"

type Relationship string

const (
	RelationshipSelf   Relationship = "Self"
	RelationshipSpouse Relationship = "Spouse"
	RelationshipChild  Relationship = "Child"
)

// PolicyMember links a member onto a policy, including the primary
// member itself with relationship Self.
type PolicyMember struct {
	PolicyMemberID        int
	PolicyID              int
	MemberID              int
	RelationshipToPrimary Relationship
	StartDate             time.Time
	EndDate               *time.Time
	IsActive              bool
}

func (pm PolicyMember) ToRow() map[string]any {
	return map[string]any{
		"PolicyID":              pm.PolicyID,
		"MemberID":              pm.MemberID,
		"RelationshipToPrimary": string(pm.RelationshipToPrimary),
		"StartDate":             pm.StartDate,
		"EndDate":               dateOrNil(pm.EndDate),
		"IsActive":              pm.IsActive,
	}
}
