package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError   = "error"
	FieldPath    = "path"
	FieldDataDir = "data_dir"

	// Conversion fields.
	FieldDate    = "date"
	FieldDates   = "dates"
	FieldEntries = "entries"
	FieldLines   = "lines"
	FieldFormat  = "format"
	FieldPadding = "padding"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
