package database

import (
	"database/sql"
	"fmt"
	"log"

	"aushealthsim/internal/app/config"

	_ "github.com/denisenkom/go-mssqldb"
)

// ConnectionString renders the go-mssqldb DSN for the configured
// server.
func ConnectionString(driverConfig *config.DriverConfig) string {
	return fmt.Sprintf("server=%s;port=%d;database=%s;user id=%s;password=%s;TrustServerCertificate=%t",
		driverConfig.SQLServer.Server,
		driverConfig.SQLServer.Port,
		driverConfig.SQLServer.Database,
		driverConfig.SQLServer.Username,
		driverConfig.SQLServer.Password,
		driverConfig.SQLServer.TrustServerCertificate)
}

func NewSQLServerDB(driverConfig *config.DriverConfig) *sql.DB {
	db, err := sql.Open(driverConfig.SQLServer.Driver, ConnectionString(driverConfig))
	if err != nil {
		log.Fatalf("Failed to open sqlserver database connection: %s", err.Error())
	}

	err = db.Ping()
	if err != nil {
		log.Fatalf("Failed to connect to sqlserver database: %s", err.Error())
	}

	log.Println("Successfully connected to sqlserver database")

	return db
}
