package exceptions

import (
	"aushealthsim/internal/pkg/constvars"
	"fmt"
)

var (
	ErrCannotParseDate = func(err error, value string) *CustomError {
		return BuildNewCustomError(err, constvars.ExitUsage, constvars.ErrClientInvalidDate, fmt.Sprintf("%s %q", constvars.ErrDevCannotParseDate, value))
	}
	ErrDatabaseQuery = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ExitFailure, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDatabaseQuery)
	}
	ErrDatabaseExec = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ExitFailure, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDatabaseExec)
	}
	ErrDatabaseMigration = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ExitFailure, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDatabaseMigration)
	}
	ErrBulkInsertBatch = func(err error, table string, batch int) *CustomError {
		return BuildNewCustomError(err, constvars.ExitFailure, constvars.ErrClientCannotProcessRequest, fmt.Sprintf("%s %d into %s", constvars.ErrDevBulkInsertBatch, batch, table))
	}
	ErrSchemaIntrospection = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ExitFailure, constvars.ErrClientCannotProcessRequest, constvars.ErrDevSchemaIntrospection)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ExitFailure, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotUnmarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ExitFailure, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotUnmarshalJSON)
	}
	ErrCannotReadFile = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, constvars.ExitFailure, constvars.ErrClientSampleDataMissing, fmt.Sprintf("%s %q", constvars.ErrDevCannotReadFile, path))
	}
	ErrCannotWriteFile = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, constvars.ExitFailure, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf("%s %q", constvars.ErrDevCannotWriteFile, path))
	}
	ErrSampleDataNotFound = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, constvars.ExitFailure, constvars.ErrClientSampleDataMissing, fmt.Sprintf("%s at %q", constvars.ErrDevSampleDataNotFound, path))
	}
	ErrUnknownTestSuite = func(suite string) *CustomError {
		return BuildNewCustomError(nil, constvars.ExitUsage, constvars.ErrClientUnknownTestSuite, fmt.Sprintf("%s %q", constvars.ErrDevUnknownTestSuite, suite))
	}
	ErrTestSuiteRun = func(err error, suite string) *CustomError {
		return BuildNewCustomError(err, constvars.ExitFailure, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf("%s %q", constvars.ErrDevTestSuiteFailed, suite))
	}
)
