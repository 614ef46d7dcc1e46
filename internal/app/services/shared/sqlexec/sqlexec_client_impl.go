package sqlexec

import (
	"aushealthsim/internal/app/contracts"
	"aushealthsim/internal/pkg/constvars"
	"aushealthsim/internal/pkg/exceptions"
	"aushealthsim/internal/pkg/queries"
	"aushealthsim/internal/pkg/utils"
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type mssqlClient struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	mssqlClientInstance contracts.SQLClient
	onceMSSQLClient     sync.Once
)

func NewMSSQLClient(db *sql.DB, logger *zap.Logger) contracts.SQLClient {
	onceMSSQLClient.Do(func() {
		instance := &mssqlClient{
			DB:  db,
			Log: logger,
		}
		mssqlClientInstance = instance
	})
	return mssqlClientInstance
}

func (c *mssqlClient) Query(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
	c.Log.Debug("running query", zap.String(constvars.LoggingQueryKey, query))

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, exceptions.ErrDatabaseQuery(err)
	}
	defer rows.Close()

	result, err := collectRows(rows)
	if err != nil {
		return nil, exceptions.ErrDatabaseQuery(err)
	}
	return result, nil
}

func (c *mssqlClient) NonQuery(ctx context.Context, query string, args ...any) (int64, error) {
	c.Log.Debug("running statement", zap.String(constvars.LoggingQueryKey, query))

	result, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, exceptions.ErrDatabaseExec(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, exceptions.ErrDatabaseExec(err)
	}
	return affected, nil
}

func (c *mssqlClient) NonQueryAsOf(ctx context.Context, asOf time.Time, query string, args ...any) (int64, error) {
	return c.NonQuery(ctx, rewriteAsOf(query, asOf), args...)
}

func (c *mssqlClient) CallProcedure(ctx context.Context, name string, params map[string]any) ([]map[string]any, error) {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	assignments := make([]string, len(keys))
	args := make([]any, len(keys))
	for i, key := range keys {
		assignments[i] = fmt.Sprintf("@%s = @p%d", key, i+1)
		args[i] = params[key]
	}

	query := fmt.Sprintf("EXEC %s", name)
	if len(assignments) > 0 {
		query = fmt.Sprintf("EXEC %s %s", name, strings.Join(assignments, ", "))
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, exceptions.ErrDatabaseQuery(err)
	}
	defer rows.Close()

	result, err := collectRows(rows)
	if err != nil {
		return nil, exceptions.ErrDatabaseQuery(err)
	}
	return result, nil
}

func (c *mssqlClient) BulkInsert(ctx context.Context, table string, rows []map[string]any) (int, error) {
	return c.BulkInsertAsOf(ctx, utils.Today(), table, rows)
}

// BulkInsertAsOf writes rows in fixed-size batches, one transaction per
// batch. Column order comes from the first row sorted by name, so every
// row must carry the same key set. When the table has a LastModified
// column the rows did not provide, the asOf date is appended to every
// row.
func (c *mssqlClient) BulkInsertAsOf(ctx context.Context, asOf time.Time, table string, rows []map[string]any) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	columns := make([]string, 0, len(rows[0]))
	for column := range rows[0] {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	stampLastModified := false
	if _, carried := rows[0][constvars.LastModifiedColumn]; !carried {
		has, err := c.hasColumn(ctx, table, constvars.LastModifiedColumn)
		if err != nil {
			return 0, err
		}
		stampLastModified = has
	}

	insertColumns := columns
	if stampLastModified {
		insertColumns = append(append([]string{}, columns...), constvars.LastModifiedColumn)
	}

	placeholders := make([]string, len(insertColumns))
	for i := range insertColumns {
		placeholders[i] = fmt.Sprintf("@p%d", i+1)
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(insertColumns, ", "),
		strings.Join(placeholders, ", "),
	)

	inserted := 0
	for batch := 0; batch*constvars.BulkInsertBatchSize < len(rows); batch++ {
		start := batch * constvars.BulkInsertBatchSize
		end := start + constvars.BulkInsertBatchSize
		if end > len(rows) {
			end = len(rows)
		}

		if err := c.insertBatch(ctx, query, columns, rows[start:end], stampLastModified, asOf); err != nil {
			return inserted, exceptions.ErrBulkInsertBatch(err, table, batch+1)
		}
		inserted += end - start
		c.Log.Debug("bulk insert batch committed",
			zap.String(constvars.LoggingTableKey, table),
			zap.Int(constvars.LoggingBatchKey, batch+1),
			zap.Int(constvars.LoggingRowsKey, end-start),
		)
	}

	c.Log.Info("bulk insert finished",
		zap.String(constvars.LoggingTableKey, table),
		zap.Int(constvars.LoggingRowsKey, inserted),
	)
	return inserted, nil
}

func (c *mssqlClient) insertBatch(ctx context.Context, query string, columns []string, rows []map[string]any, stampLastModified bool, asOf time.Time) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		values := make([]any, 0, len(columns)+1)
		for _, column := range columns {
			values = append(values, row[column])
		}
		if stampLastModified {
			values = append(values, asOf)
		}
		if _, err := stmt.ExecContext(ctx, values...); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (c *mssqlClient) hasColumn(ctx context.Context, table, column string) (bool, error) {
	name := table
	if idx := strings.LastIndex(table, "."); idx >= 0 {
		name = table[idx+1:]
	}

	var found string
	err := c.DB.QueryRowContext(ctx, queries.HasColumn, name, column).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	} else if err != nil {
		return false, exceptions.ErrDatabaseQuery(err)
	}
	return true, nil
}

// rewriteAsOf pins GETDATE() calls inside a statement to the simulation
// date so historical runs write consistent timestamps.
func rewriteAsOf(query string, asOf time.Time) string {
	cast := fmt.Sprintf("CAST('%s' AS DATETIME)", asOf.Format(constvars.DateFormat))
	return strings.ReplaceAll(query, "GETDATE()", cast)
}

func collectRows(rows *sql.Rows) ([]map[string]any, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var result []map[string]any
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		record := make(map[string]any, len(columns))
		for i, column := range columns {
			value := values[i]
			if raw, ok := value.([]byte); ok {
				value = string(raw)
			}
			record[column] = value
		}
		result = append(result, record)
	}
	return result, rows.Err()
}
