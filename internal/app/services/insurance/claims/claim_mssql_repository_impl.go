package claims

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

type claimMssqlRepository struct {
	DB  *sql.DB
	SQL contracts.SQLClient
	Log *zap.Logger
}

var (
	claimMssqlRepositoryInstance contracts.ClaimRepository
	onceClaimMssqlRepository     sync.Once
)

func NewClaimMssqlRepository(db *sql.DB, sqlClient contracts.SQLClient, logger *zap.Logger) contracts.ClaimRepository {
	onceClaimMssqlRepository.Do(func() {
		instance := &claimMssqlRepository{
			DB:  db,
			SQL: sqlClient,
			Log: logger,
		}
		claimMssqlRepositoryInstance = instance
	})
	return claimMssqlRepositoryInstance
}

func (r *claimMssqlRepository) FindAll(ctx context.Context) ([]models.Claim, error) {
	return r.findMany(ctx, queries.GetAllClaims)
}

func (r *claimMssqlRepository) FindByNumber(ctx context.Context, claimNumber string) (*models.Claim, error) {
	row := r.DB.QueryRowContext(ctx, queries.GetClaimByNumber, claimNumber)
	claim, err := scanClaim(row)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &claim, nil
}

func (r *claimMssqlRepository) FindOpen(ctx context.Context) ([]models.Claim, error) {
	return r.findMany(ctx, queries.GetOpenClaims)
}

func (r *claimMssqlRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, queries.CountClaims).Scan(&total); err != nil {
		return 0, exceptions.ErrDatabaseQuery(err)
	}
	return total, nil
}

func (r *claimMssqlRepository) BulkInsert(ctx context.Context, claims []models.Claim, asOf time.Time) (int, error) {
	rows := make([]map[string]any, 0, len(claims))
	for _, claim := range claims {
		rows = append(rows, claim.ToRow())
	}
	return r.SQL.BulkInsertAsOf(ctx, asOf, queries.ClaimsTable, rows)
}

func (r *claimMssqlRepository) UpdateStatus(ctx context.Context, claim models.Claim, asOf time.Time) error {
	_, err := r.SQL.NonQueryAsOf(ctx, asOf, queries.UpdateClaimStatus,
		string(claim.Status), claim.ProcessedDate, claim.PaymentDate, claim.RejectionReason, claim.ClaimNumber)
	return err
}

func (r *claimMssqlRepository) findMany(ctx context.Context, query string) ([]models.Claim, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, exceptions.ErrDatabaseQuery(err)
	}
	defer rows.Close()

	var claims []models.Claim
	for rows.Next() {
		claim, err := scanClaim(rows)
		if err != nil {
			return nil, err
		}
		claims = append(claims, claim)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrDatabaseQuery(err)
	}

	return claims, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClaim(row rowScanner) (models.Claim, error) {
	var (
		claim           models.Claim
		mbsItemNumber   sql.NullString
		processedDate   sql.NullTime
		paymentDate     sql.NullTime
		rejectionReason sql.NullString
	)

	err := row.Scan(
		&claim.ClaimID,
		&claim.ClaimNumber,
		&claim.PolicyID,
		&claim.MemberID,
		&claim.ProviderID,
		&claim.ServiceDate,
		&claim.SubmissionDate,
		&claim.ClaimType,
		&claim.ServiceDescription,
		&mbsItemNumber,
		&claim.ChargedAmount,
		&claim.MedicareAmount,
		&claim.InsuranceAmount,
		&claim.GapAmount,
		&claim.ExcessApplied,
		&claim.Status,
		&processedDate,
		&paymentDate,
		&rejectionReason,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Claim{}, err
		}
		return models.Claim{}, exceptions.ErrDatabaseQuery(err)
	}

	claim.MBSItemNumber = mbsItemNumber.String
	claim.RejectionReason = rejectionReason.String
	if processedDate.Valid {
		processed := processedDate.Time
		claim.ProcessedDate = &processed
	}
	if paymentDate.Valid {
		paid := paymentDate.Time
		claim.PaymentDate = &paid
	}
	return claim, nil
}
