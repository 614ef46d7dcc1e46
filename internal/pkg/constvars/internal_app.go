package constvars

const (
	SchemaName         = "Insurance"
	LastModifiedColumn = "LastModified"
)

const (
	DateFormat        = "2006-01-02"
	CompactDateFormat = "20060102"
)

// Reference number layouts. Claim and payment references carry the
// generation date; policy numbers carry a state code.
const (
	ClaimNumberFormat      = "CL-%s-%s"
	PaymentReferenceFormat = "PMT-%s-%s"
	PolicyNumberFormat     = "POL-%s-%s"
)

const (
	ClaimNumberDigits      = 5
	PaymentReferenceDigits = 5
	PolicyNumberDigits     = 6
	ProviderNumberDigits   = 6
)

const (
	BulkInsertBatchSize = 1000
)

// Test suite names understood by the runner. Integration and e2e
// suites are compiled behind matching build tags.
const (
	SuiteUnit        = "unit"
	SuiteIntegration = "integration"
	SuiteEndToEnd    = "e2e"
)

const (
	TestDateEnvKey = "HEALTHSIM_TEST_DATE"
)
