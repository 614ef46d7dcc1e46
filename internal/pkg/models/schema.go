package models

// TableInfo identifies a table by schema and name.
type TableInfo struct {
	Schema string
	Name   string
}

// ColumnInfo describes one column as reported by the system catalog.
type ColumnInfo struct {
	Name       string
	TypeName   string
	MaxLength  int
	IsNullable bool
}
