package config

import (
	"database/sql"
	"log"

	"go.uber.org/zap"
)

// Bootstrap bundles the handles a database command must release on the
// way out, so a command body only needs a single defer.
type Bootstrap struct {
	DB     *sql.DB
	Logger *zap.Logger
}

func (b *Bootstrap) Shutdown() error {
	if b.DB != nil {
		if err := b.DB.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing SQL Server connection")
	}

	if b.Logger != nil {
		if err := b.Logger.Sync(); err != nil {
			return err
		}
	}

	return nil
}
