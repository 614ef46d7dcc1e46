package policies

import (
	"aushealthsim/internal/app/contracts"
	"aushealthsim/internal/pkg/exceptions"
	"aushealthsim/internal/pkg/models"
	"aushealthsim/internal/pkg/queries"
	"context"
	"database/sql"
	"sync"
	"time"

	"go.uber.org/zap"
)

type policyMssqlRepository struct {
	DB  *sql.DB
	SQL contracts.SQLClient
	Log *zap.Logger
}

var (
	policyMssqlRepositoryInstance contracts.PolicyRepository
	oncePolicyMssqlRepository     sync.Once
)

func NewPolicyMssqlRepository(db *sql.DB, sqlClient contracts.SQLClient, logger *zap.Logger) contracts.PolicyRepository {
	oncePolicyMssqlRepository.Do(func() {
		instance := &policyMssqlRepository{
			DB:  db,
			SQL: sqlClient,
			Log: logger,
		}
		policyMssqlRepositoryInstance = instance
	})
	return policyMssqlRepositoryInstance
}

func (r *policyMssqlRepository) FindAll(ctx context.Context) ([]models.Policy, error) {
	return r.findMany(ctx, queries.GetAllPolicies)
}

func (r *policyMssqlRepository) FindByNumber(ctx context.Context, policyNumber string) (*models.Policy, error) {
	row := r.DB.QueryRowContext(ctx, queries.GetPolicyByNumber, policyNumber)
	policy, err := scanPolicy(row)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &policy, nil
}

func (r *policyMssqlRepository) FindDueForPayment(ctx context.Context, by time.Time) ([]models.Policy, error) {
	return r.findMany(ctx, queries.GetPoliciesDueForPayment, by)
}

func (r *policyMssqlRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, queries.CountPolicies).Scan(&total); err != nil {
		return 0, exceptions.ErrDatabaseQuery(err)
	}
	return total, nil
}

func (r *policyMssqlRepository) BulkInsert(ctx context.Context, policies []models.Policy, asOf time.Time) (int, error) {
	rows := make([]map[string]any, 0, len(policies))
	for _, policy := range policies {
		rows = append(rows, policy.ToRow())
	}
	return r.SQL.BulkInsertAsOf(ctx, asOf, queries.PoliciesTable, rows)
}

func (r *policyMssqlRepository) UpdateDetails(ctx context.Context, policy models.Policy, asOf time.Time) error {
	_, err := r.SQL.NonQueryAsOf(ctx, asOf, queries.UpdatePolicyDetails,
		policy.PlanID, string(policy.CoverageType), policy.ExcessAmount, string(policy.Status),
		string(policy.PaymentMethod), policy.CurrentPremium, policy.PolicyNumber)
	return err
}

func (r *policyMssqlRepository) UpdatePaymentDates(ctx context.Context, policy models.Policy, asOf time.Time) error {
	_, err := r.SQL.NonQueryAsOf(ctx, asOf, queries.UpdatePolicyPaymentDates,
		policy.LastPremiumPaidDate, policy.NextPremiumDueDate, policy.PolicyNumber)
	return err
}

func (r *policyMssqlRepository) FindMembersByPolicy(ctx context.Context, policyID int) ([]models.PolicyMember, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetPolicyMembersByPolicy, policyID)
	if err != nil {
		return nil, exceptions.ErrDatabaseQuery(err)
	}
	defer rows.Close()

	var policyMembers []models.PolicyMember
	for rows.Next() {
		var (
			policyMember models.PolicyMember
			endDate      sql.NullTime
		)
		err := rows.Scan(
			&policyMember.PolicyMemberID,
			&policyMember.PolicyID,
			&policyMember.MemberID,
			&policyMember.RelationshipToPrimary,
			&policyMember.StartDate,
			&endDate,
			&policyMember.IsActive,
		)
		if err != nil {
			return nil, exceptions.ErrDatabaseQuery(err)
		}
		if endDate.Valid {
			end := endDate.Time
			policyMember.EndDate = &end
		}
		policyMembers = append(policyMembers, policyMember)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrDatabaseQuery(err)
	}

	return policyMembers, nil
}

// MemberPairs returns every (PolicyID, MemberID) link as a set, used to
// skip duplicates before inserting membership rows.
func (r *policyMssqlRepository) MemberPairs(ctx context.Context) (map[[2]int]bool, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetPolicyMemberPairs)
	if err != nil {
		return nil, exceptions.ErrDatabaseQuery(err)
	}
	defer rows.Close()

	pairs := make(map[[2]int]bool)
	for rows.Next() {
		var policyID, memberID int
		if err := rows.Scan(&policyID, &memberID); err != nil {
			return nil, exceptions.ErrDatabaseQuery(err)
		}
		pairs[[2]int{policyID, memberID}] = true
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrDatabaseQuery(err)
	}

	return pairs, nil
}

func (r *policyMssqlRepository) BulkInsertMembers(ctx context.Context, policyMembers []models.PolicyMember, asOf time.Time) (int, error) {
	rows := make([]map[string]any, 0, len(policyMembers))
	for _, policyMember := range policyMembers {
		rows = append(rows, policyMember.ToRow())
	}
	return r.SQL.BulkInsertAsOf(ctx, asOf, queries.PolicyMembersTable, rows)
}

func (r *policyMssqlRepository) findMany(ctx context.Context, query string, args ...any) ([]models.Policy, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, exceptions.ErrDatabaseQuery(err)
	}
	defer rows.Close()

	var policies []models.Policy
	for rows.Next() {
		policy, err := scanPolicy(rows)
		if err != nil {
			return nil, err
		}
		policies = append(policies, policy)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrDatabaseQuery(err)
	}

	return policies, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPolicy(row rowScanner) (models.Policy, error) {
	var (
		policy              models.Policy
		endDate             sql.NullTime
		lastPremiumPaidDate sql.NullTime
		nextPremiumDueDate  sql.NullTime
	)

	err := row.Scan(
		&policy.PolicyID,
		&policy.PolicyNumber,
		&policy.PrimaryMemberID,
		&policy.PlanID,
		&policy.CoverageType,
		&policy.StartDate,
		&endDate,
		&policy.ExcessAmount,
		&policy.PremiumFrequency,
		&policy.CurrentPremium,
		&policy.RebatePercentage,
		&policy.LHCLoadingPercentage,
		&policy.Status,
		&policy.PaymentMethod,
		&lastPremiumPaidDate,
		&nextPremiumDueDate,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Policy{}, err
		}
		return models.Policy{}, exceptions.ErrDatabaseQuery(err)
	}

	if endDate.Valid {
		end := endDate.Time
		policy.EndDate = &end
	}
	if lastPremiumPaidDate.Valid {
		paid := lastPremiumPaidDate.Time
		policy.LastPremiumPaidDate = &paid
	}
	if nextPremiumDueDate.Valid {
		due := nextPremiumDueDate.Time
		policy.NextPremiumDueDate = &due
	}
	return policy, nil
}
