package contracts

import (
	"context"

	"aushealthsim/internal/pkg/models"
)

type SchemaUsecase interface {
	Tables(ctx context.Context) ([]models.TableInfo, error)
	Columns(ctx context.Context, schema, table string) ([]models.ColumnInfo, error)
	// RegisteredDrivers lists the database/sql driver names compiled
	// into this binary.
	RegisteredDrivers() []string
}
