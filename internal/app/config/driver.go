package config

type (
	DriverConfig struct {
		SQLServer SQLServer
		Logger    Logger
	}
	SQLServer struct {
		Server                 string
		Port                   int
		Database               string
		Username               string
		Password               string
		Driver                 string
		TrustServerCertificate bool
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
		// MirrorToFile adds OutputFileName as a second sink next to
		// the console output, matching the CLI --log-file flag.
		MirrorToFile bool
	}
)
