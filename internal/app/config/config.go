package config

import (
	"log"

	"aushealthsim/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
	// Database credentials traditionally live in their own env file.
	godotenv.Load("config/db_config.env")
}

func NewDriverConfig() *DriverConfig {
	if utils.GetEnvString("DB_PASSWORD", "") == "" {
		log.Println("DB_PASSWORD is not set, SQL Server logins will fail")
	}
	return &DriverConfig{
		SQLServer: SQLServer{
			Server:                 utils.GetEnvString("DB_SERVER", "localhost"),
			Port:                   utils.GetEnvInt("DB_PORT", 1433),
			Database:               utils.GetEnvString("DB_DATABASE", "aushealthsim"),
			Username:               utils.GetEnvString("DB_USERNAME", "sa"),
			Password:               utils.GetEnvString("DB_PASSWORD", ""),
			Driver:                 utils.GetEnvString("DB_DRIVER", "sqlserver"),
			TrustServerCertificate: utils.GetEnvBool("DB_TRUST_SERVER_CERTIFICATE", true),
		},
		Logger: Logger{
			// HEALTHSIM_LOG_LEVEL wins over the generic key so operators
			// can raise verbosity without touching the env file.
			Level:               utils.GetEnvString("HEALTHSIM_LOG_LEVEL", utils.GetEnvString("LOGGER_LEVEL", "info")),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logs/aushealthsim.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logs/aushealthsim_error.log"),
			MirrorToFile:        utils.GetEnvBool("LOGGER_MIRROR_TO_FILE", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Version:         utils.GetEnvString("APP_VERSION", "v1.0"),
			SampleDataPath:  utils.GetEnvString("APP_SAMPLE_DATA_PATH", "data/sample_members.json"),
			UsedMembersPath: utils.GetEnvString("APP_USED_MEMBERS_PATH", "data/used_members.json"),
			MigrationsPath:  utils.GetEnvString("APP_MIGRATIONS_PATH", "internal/migration"),
		},
	}
}
