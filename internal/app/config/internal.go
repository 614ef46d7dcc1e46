package config

type InternalConfig struct {
	App App
}

type App struct {
	Env     string
	Version string
	// SampleDataPath points at the demo member JSON file the seeder
	// draws from; UsedMembersPath tracks which of its records have
	// already been inserted.
	SampleDataPath  string
	UsedMembersPath string
	MigrationsPath  string
}
