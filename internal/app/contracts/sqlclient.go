package contracts

import (
	"context"
	"time"
)

// SQLClient is the low level surface onto the simulation database. Rows
// come back as column-name-keyed maps so callers can work with any
// table shape.
//
// The AsOf variants pin database-side timestamps to a simulation date:
// GETDATE() calls inside a statement are rewritten to that date, and
// bulk inserts stamp it into LastModified when the target table carries
// that column.
type SQLClient interface {
	Query(ctx context.Context, query string, args ...any) ([]map[string]any, error)
	NonQuery(ctx context.Context, query string, args ...any) (int64, error)
	NonQueryAsOf(ctx context.Context, asOf time.Time, query string, args ...any) (int64, error)
	CallProcedure(ctx context.Context, name string, params map[string]any) ([]map[string]any, error)
	BulkInsert(ctx context.Context, table string, rows []map[string]any) (int, error)
	BulkInsertAsOf(ctx context.Context, asOf time.Time, table string, rows []map[string]any) (int, error)
}
