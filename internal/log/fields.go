package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldPath      = "path"
	FieldRows      = "rows"
	FieldCategory  = "category"
	FieldAmount    = "amount"
	FieldDate      = "date"
)

// ComponentApp is the default component stamped on log records.
const ComponentApp = "app"
