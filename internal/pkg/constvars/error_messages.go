package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"numeric":  "must be a number",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"datetime": "must match the layout %s",

	"au_state":        "must be an Australian state or territory code",
	"au_postcode":     "must be a four digit postcode",
	"medicare_number": "must be a ten digit Medicare number",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"len":      true,
	"oneof":    true,
	"gt":       true,
	"gte":      true,
	"lt":       true,
	"lte":      true,
	"datetime": true,
}

// Error messages for operators running the tool
const (
	ErrClientCannotProcessRequest          = "failed to process the request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientInvalidDate                   = "invalid date, expected YYYY-MM-DD"
	ErrClientSampleDataMissing             = "sample data file is missing or unreadable"
	ErrClientUnknownTestSuite              = "unknown test suite, expected unit, integration or e2e"
)

// Error messages for developers
const (
	ErrDevInvalidInput        = "invalid input"
	ErrDevCannotMarshalJSON   = "cannot marshal JSON"
	ErrDevCannotUnmarshalJSON = "cannot unmarshal JSON"
	ErrDevCannotParseDate     = "cannot parse date"
	ErrDevCannotReadFile      = "cannot read file"
	ErrDevCannotWriteFile     = "cannot write file"
	ErrDevDatabaseQuery       = "failed to execute query"
	ErrDevDatabaseExec        = "failed to execute statement"
	ErrDevDatabaseMigration   = "failed to run migrations"
	ErrDevBulkInsertBatch     = "failed to insert batch"
	ErrDevSchemaIntrospection = "failed to read schema catalog"
	ErrDevSampleDataNotFound  = "sample data file not found"
	ErrDevTestSuiteFailed     = "test suite failed"
	ErrDevUnknownTestSuite    = "unknown test suite"
)

const (
	ResponseUnknown = "unknown"
)
