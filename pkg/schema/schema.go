package schema

type (
	// ColumnKind identifies the portable type of a column. Dialects map each kind
	// onto their native type names.
	ColumnKind int

	// DefaultKind identifies a server-generated default value.
	DefaultKind int

	// ColumnType is a portable column type. Size is only meaningful for String.
	ColumnType struct {
		Kind ColumnKind
		Size int
	}

	// Column describes a single table column.
	Column struct {
		Name          string
		Type          ColumnType
		Nullable      bool
		AutoIncrement bool
		Default       DefaultKind
	}

	// Table describes a table with an ordered column list and primary key.
	Table struct {
		Name       string
		Columns    []Column
		PrimaryKey []string
	}

	// Definition is the complete set of objects a bootstrap run ensures exist:
	// one database and the tables inside it.
	Definition struct {
		Database string
		Tables   []Table
	}
)

const (
	Integer ColumnKind = iota
	String
	Date
	Timestamp
)

const (
	NoDefault DefaultKind = iota
	CurrentTimestamp
)

// Submissions is the table every generated project stores form submissions in.
// The column order and types are part of the contract with generated projects
// and must never change; bootstrap only ever creates it when absent.
var Submissions = Table{
	Name: "submissions",
	Columns: []Column{
		{Name: "id", Type: ColumnType{Kind: Integer}, AutoIncrement: true},
		{Name: "name", Type: ColumnType{Kind: String, Size: 255}},
		{Name: "dob", Type: ColumnType{Kind: Date}},
		{Name: "date_from", Type: ColumnType{Kind: Date}, Nullable: true},
		{Name: "date_to", Type: ColumnType{Kind: Date}, Nullable: true},
		{Name: "created_at", Type: ColumnType{Kind: Timestamp}, Nullable: true, Default: CurrentTimestamp},
	},
	PrimaryKey: []string{"id"},
}

// ForDatabase returns the definition bootstrapped for a generated project using
// the given database name.
//
// Example:
//
//	def := schema.ForDatabase("my_shop")
//	err := bootstrap.New(factory).Run(ctx, def)
func ForDatabase(name string) Definition {
	return Definition{
		Database: name,
		Tables:   []Table{Submissions},
	}
}

// IsPrimaryKey reports whether the named column is part of the table's primary key.
func (t Table) IsPrimaryKey(column string) bool {
	for _, pk := range t.PrimaryKey {
		if pk == column {
			return true
		}
	}

	return false
}

// ColumnNames returns the table's column names in definition order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}

	return names
}

func (k ColumnKind) String() string {
	switch k {
	case Integer:
		return "integer"
	case String:
		return "string"
	case Date:
		return "date"
	case Timestamp:
		return "timestamp"
	default:
		return "unknown"
	}
}
