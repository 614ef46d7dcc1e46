package queries

// System catalog queries for schema inspection.
const (
	ListTables = `
		SELECT SCHEMA_NAME(schema_id) AS SchemaName, name AS TableName
		FROM sys.tables
		ORDER BY SchemaName, TableName
	`

	ListTableColumns = `
		SELECT c.name AS ColumnName, t.name AS TypeName, c.max_length AS MaxLength, c.is_nullable AS IsNullable
		FROM sys.columns c
		JOIN sys.types t ON c.user_type_id = t.user_type_id
		JOIN sys.tables tbl ON c.object_id = tbl.object_id
		JOIN sys.schemas s ON tbl.schema_id = s.schema_id
		WHERE s.name = @p1 AND tbl.name = @p2
		ORDER BY c.column_id
	`

	HasColumn = `
		SELECT COLUMN_NAME
		FROM INFORMATION_SCHEMA.COLUMNS
		WHERE TABLE_NAME = @p1 AND COLUMN_NAME = @p2
	`
)
