package payments

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

type premiumPaymentMssqlRepository struct {
	DB  *sql.DB
	SQL contracts.SQLClient
	Log *zap.Logger
}

var (
	premiumPaymentMssqlRepositoryInstance contracts.PremiumPaymentRepository
	oncePremiumPaymentMssqlRepository     sync.Once
)

func NewPremiumPaymentMssqlRepository(db *sql.DB, sqlClient contracts.SQLClient, logger *zap.Logger) contracts.PremiumPaymentRepository {
	oncePremiumPaymentMssqlRepository.Do(func() {
		instance := &premiumPaymentMssqlRepository{
			DB:  db,
			SQL: sqlClient,
			Log: logger,
		}
		premiumPaymentMssqlRepositoryInstance = instance
	})
	return premiumPaymentMssqlRepositoryInstance
}

func (r *premiumPaymentMssqlRepository) FindAll(ctx context.Context) ([]models.PremiumPayment, error) {
	return r.findMany(ctx, queries.GetAllPayments)
}

func (r *premiumPaymentMssqlRepository) FindByPolicy(ctx context.Context, policyID int) ([]models.PremiumPayment, error) {
	return r.findMany(ctx, queries.GetPaymentsByPolicy, policyID)
}

func (r *premiumPaymentMssqlRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, queries.CountPayments).Scan(&total); err != nil {
		return 0, exceptions.ErrDatabaseQuery(err)
	}
	return total, nil
}

func (r *premiumPaymentMssqlRepository) BulkInsert(ctx context.Context, payments []models.PremiumPayment, asOf time.Time) (int, error) {
	rows := make([]map[string]any, 0, len(payments))
	for _, payment := range payments {
		rows = append(rows, payment.ToRow())
	}
	return r.SQL.BulkInsertAsOf(ctx, asOf, queries.PremiumPaymentsTable, rows)
}

func (r *premiumPaymentMssqlRepository) findMany(ctx context.Context, query string, args ...any) ([]models.PremiumPayment, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, exceptions.ErrDatabaseQuery(err)
	}
	defer rows.Close()

	var payments []models.PremiumPayment
	for rows.Next() {
		var (
			payment          models.PremiumPayment
			paymentReference sql.NullString
		)
		err := rows.Scan(
			&payment.PaymentID,
			&payment.PolicyID,
			&payment.PaymentDate,
			&payment.PaymentAmount,
			&payment.PaymentMethod,
			&paymentReference,
			&payment.PaymentStatus,
			&payment.PeriodStartDate,
			&payment.PeriodEndDate,
		)
		if err != nil {
			return nil, exceptions.ErrDatabaseQuery(err)
		}
		payment.PaymentReference = paymentReference.String
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrDatabaseQuery(err)
	}

	return payments, nil
}
