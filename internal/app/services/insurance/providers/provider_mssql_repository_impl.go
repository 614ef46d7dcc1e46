package providers

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

type providerMssqlRepository struct {
	DB  *sql.DB
	SQL contracts.SQLClient
	Log *zap.Logger
}

var (
	providerMssqlRepositoryInstance contracts.ProviderRepository
	onceProviderMssqlRepository     sync.Once
)

func NewProviderMssqlRepository(db *sql.DB, sqlClient contracts.SQLClient, logger *zap.Logger) contracts.ProviderRepository {
	onceProviderMssqlRepository.Do(func() {
		instance := &providerMssqlRepository{
			DB:  db,
			SQL: sqlClient,
			Log: logger,
		}
		providerMssqlRepositoryInstance = instance
	})
	return providerMssqlRepositoryInstance
}

func (r *providerMssqlRepository) FindAll(ctx context.Context) ([]models.Provider, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetAllProviders)
	if err != nil {
		return nil, exceptions.ErrDatabaseQuery(err)
	}
	defer rows.Close()

	var providers []models.Provider
	for rows.Next() {
		provider, err := scanProvider(rows)
		if err != nil {
			return nil, err
		}
		providers = append(providers, provider)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrDatabaseQuery(err)
	}

	return providers, nil
}

func (r *providerMssqlRepository) FindByNumber(ctx context.Context, providerNumber string) (*models.Provider, error) {
	row := r.DB.QueryRowContext(ctx, queries.GetProviderByNumber, providerNumber)
	provider, err := scanProvider(row)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &provider, nil
}

func (r *providerMssqlRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, queries.CountProviders).Scan(&total); err != nil {
		return 0, exceptions.ErrDatabaseQuery(err)
	}
	return total, nil
}

func (r *providerMssqlRepository) BulkInsert(ctx context.Context, providers []models.Provider, asOf time.Time) (int, error) {
	rows := make([]map[string]any, 0, len(providers))
	for _, provider := range providers {
		rows = append(rows, provider.ToRow())
	}
	return r.SQL.BulkInsertAsOf(ctx, asOf, queries.ProvidersTable, rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProvider(row rowScanner) (models.Provider, error) {
	var (
		provider           models.Provider
		addressLine2       sql.NullString
		phone              sql.NullString
		email              sql.NullString
		agreementStartDate sql.NullTime
		agreementEndDate   sql.NullTime
	)

	err := row.Scan(
		&provider.ProviderID,
		&provider.ProviderNumber,
		&provider.ProviderName,
		&provider.ProviderType,
		&provider.AddressLine1,
		&addressLine2,
		&provider.City,
		&provider.State,
		&provider.PostCode,
		&provider.Country,
		&phone,
		&email,
		&provider.IsPreferredProvider,
		&agreementStartDate,
		&agreementEndDate,
		&provider.IsActive,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Provider{}, err
		}
		return models.Provider{}, exceptions.ErrDatabaseQuery(err)
	}

	provider.AddressLine2 = addressLine2.String
	provider.Phone = phone.String
	provider.Email = email.String
	if agreementStartDate.Valid {
		start := agreementStartDate.Time
		provider.AgreementStartDate = &start
	}
	if agreementEndDate.Valid {
		end := agreementEndDate.Time
		provider.AgreementEndDate = &end
	}
	return provider, nil
}
