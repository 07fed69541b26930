package models

const (
	// MaxFatalErrors caps the error list returned when an upload imports nothing.
	MaxFatalErrors = 10
	// MaxWarningErrors caps the non-fatal row errors returned alongside a
	// successful import.
	MaxWarningErrors = 5
)

// RowError reports a single spreadsheet row that failed validation. Row is the
// 1-based spreadsheet row number including the header row, so the first data
// row is row 2.
type RowError struct {
	Row     int               `json:"row"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data"`
}

// ImportResult is the response body for a catalog replacement upload.
type ImportResult struct {
	Message       string     `json:"message"`
	ImportedCount int        `json:"importedCount"`
	Errors        []RowError `json:"errors"`
}
