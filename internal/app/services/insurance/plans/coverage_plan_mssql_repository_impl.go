package plans

import (
	"aushealthsim/internal/app/contracts"
	"aushealthsim/internal/pkg/exceptions"
	"aushealthsim/internal/pkg/models"
	"aushealthsim/internal/pkg/queries"
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type coveragePlanMssqlRepository struct {
	DB  *sql.DB
	SQL contracts.SQLClient
	Log *zap.Logger
}

var (
	coveragePlanMssqlRepositoryInstance contracts.CoveragePlanRepository
	onceCoveragePlanMssqlRepository     sync.Once
)

func NewCoveragePlanMssqlRepository(db *sql.DB, sqlClient contracts.SQLClient, logger *zap.Logger) contracts.CoveragePlanRepository {
	onceCoveragePlanMssqlRepository.Do(func() {
		instance := &coveragePlanMssqlRepository{
			DB:  db,
			SQL: sqlClient,
			Log: logger,
		}
		coveragePlanMssqlRepositoryInstance = instance
	})
	return coveragePlanMssqlRepositoryInstance
}

func (r *coveragePlanMssqlRepository) FindAll(ctx context.Context) ([]models.CoveragePlan, error) {
	return r.findMany(ctx, queries.GetAllPlans)
}

func (r *coveragePlanMssqlRepository) FindActive(ctx context.Context) ([]models.CoveragePlan, error) {
	return r.findMany(ctx, queries.GetActivePlans)
}

func (r *coveragePlanMssqlRepository) FindByCode(ctx context.Context, planCode string) (*models.CoveragePlan, error) {
	row := r.DB.QueryRowContext(ctx, queries.GetPlanByCode, planCode)
	plan, err := scanPlan(row)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *coveragePlanMssqlRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, queries.CountPlans).Scan(&total); err != nil {
		return 0, exceptions.ErrDatabaseQuery(err)
	}
	return total, nil
}

func (r *coveragePlanMssqlRepository) BulkInsert(ctx context.Context, plans []models.CoveragePlan, asOf time.Time) (int, error) {
	rows := make([]map[string]any, 0, len(plans))
	for _, plan := range plans {
		rows = append(rows, plan.ToRow())
	}
	return r.SQL.BulkInsertAsOf(ctx, asOf, queries.CoveragePlansTable, rows)
}

func (r *coveragePlanMssqlRepository) findMany(ctx context.Context, query string) ([]models.CoveragePlan, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, exceptions.ErrDatabaseQuery(err)
	}
	defer rows.Close()

	var plans []models.CoveragePlan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrDatabaseQuery(err)
	}

	return plans, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanPlan reads one plan row and decodes the three JSON text columns
// back into their in-memory structures. NULL text decodes to nil.
func scanPlan(row rowScanner) (models.CoveragePlan, error) {
	var (
		plan            models.CoveragePlan
		hospitalTier    sql.NullString
		excessOptions   sql.NullString
		waitingPeriods  sql.NullString
		coverageDetails sql.NullString
		endDate         sql.NullTime
	)

	err := row.Scan(
		&plan.PlanID,
		&plan.PlanCode,
		&plan.PlanName,
		&plan.PlanType,
		&hospitalTier,
		&plan.MonthlyPremium,
		&plan.AnnualPremium,
		&excessOptions,
		&waitingPeriods,
		&coverageDetails,
		&plan.IsActive,
		&plan.EffectiveDate,
		&endDate,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.CoveragePlan{}, err
		}
		return models.CoveragePlan{}, exceptions.ErrDatabaseQuery(err)
	}

	plan.HospitalTier = models.HospitalTier(hospitalTier.String)
	if endDate.Valid {
		end := endDate.Time
		plan.EndDate = &end
	}

	if excessOptions.Valid {
		if err := json.Unmarshal([]byte(excessOptions.String), &plan.ExcessOptions); err != nil {
			return models.CoveragePlan{}, exceptions.ErrCannotUnmarshalJSON(err)
		}
	}
	if waitingPeriods.Valid {
		if err := json.Unmarshal([]byte(waitingPeriods.String), &plan.WaitingPeriods); err != nil {
			return models.CoveragePlan{}, exceptions.ErrCannotUnmarshalJSON(err)
		}
	}
	if coverageDetails.Valid {
		if err := json.Unmarshal([]byte(coverageDetails.String), &plan.CoverageDetails); err != nil {
			return models.CoveragePlan{}, exceptions.ErrCannotUnmarshalJSON(err)
		}
	}

	return plan, nil
}
