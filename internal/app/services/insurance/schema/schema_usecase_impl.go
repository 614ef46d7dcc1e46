package schema

import (
	"aushealthsim/internal/app/contracts"
	"aushealthsim/internal/pkg/constvars"
	"aushealthsim/internal/pkg/exceptions"
	"aushealthsim/internal/pkg/models"
	"aushealthsim/internal/pkg/queries"
	"context"
	"database/sql"
	"sync"

	"go.uber.org/zap"
)

type schemaUsecase struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	schemaUsecaseInstance contracts.SchemaUsecase
	onceSchemaUsecase     sync.Once
)

func NewSchemaUsecase(db *sql.DB, logger *zap.Logger) contracts.SchemaUsecase {
	onceSchemaUsecase.Do(func() {
		instance := &schemaUsecase{
			DB:  db,
			Log: logger,
		}
		schemaUsecaseInstance = instance
	})
	return schemaUsecaseInstance
}

func (uc *schemaUsecase) Tables(ctx context.Context) ([]models.TableInfo, error) {
	uc.Log.Info("schemaUsecase.Tables called")

	rows, err := uc.DB.QueryContext(ctx, queries.ListTables)
	if err != nil {
		uc.Log.Error("schemaUsecase.Tables error listing tables", zap.Error(err))
		return nil, exceptions.ErrSchemaIntrospection(err)
	}
	defer rows.Close()

	var tables []models.TableInfo
	for rows.Next() {
		var table models.TableInfo
		if err := rows.Scan(&table.Schema, &table.Name); err != nil {
			uc.Log.Error("schemaUsecase.Tables error scanning table row", zap.Error(err))
			return nil, exceptions.ErrSchemaIntrospection(err)
		}
		tables = append(tables, table)
	}

	if err := rows.Err(); err != nil {
		uc.Log.Error("schemaUsecase.Tables error reading table rows", zap.Error(err))
		return nil, exceptions.ErrSchemaIntrospection(err)
	}

	uc.Log.Info("schemaUsecase.Tables succeeded",
		zap.Int(constvars.LoggingCountKey, len(tables)),
	)
	return tables, nil
}

func (uc *schemaUsecase) Columns(ctx context.Context, schema, table string) ([]models.ColumnInfo, error) {
	uc.Log.Info("schemaUsecase.Columns called",
		zap.String(constvars.LoggingTableKey, schema+"."+table),
	)

	rows, err := uc.DB.QueryContext(ctx, queries.ListTableColumns, schema, table)
	if err != nil {
		uc.Log.Error("schemaUsecase.Columns error listing columns", zap.Error(err))
		return nil, exceptions.ErrSchemaIntrospection(err)
	}
	defer rows.Close()

	var columns []models.ColumnInfo
	for rows.Next() {
		var column models.ColumnInfo
		if err := rows.Scan(&column.Name, &column.TypeName, &column.MaxLength, &column.IsNullable); err != nil {
			uc.Log.Error("schemaUsecase.Columns error scanning column row", zap.Error(err))
			return nil, exceptions.ErrSchemaIntrospection(err)
		}
		columns = append(columns, column)
	}

	if err := rows.Err(); err != nil {
		uc.Log.Error("schemaUsecase.Columns error reading column rows", zap.Error(err))
		return nil, exceptions.ErrSchemaIntrospection(err)
	}

	uc.Log.Info("schemaUsecase.Columns succeeded",
		zap.String(constvars.LoggingTableKey, schema+"."+table),
		zap.Int(constvars.LoggingCountKey, len(columns)),
	)
	return columns, nil
}

func (uc *schemaUsecase) RegisteredDrivers() []string {
	return sql.Drivers()
}
