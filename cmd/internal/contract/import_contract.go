package contract

// Accepted spreadsheet extensions for the bulk import.
var ValidSpreadsheetFileTypes = []string{"xlsx", "xls", "csv"}

const MaxSpreadsheetSizeBytes = 30 * 1024 * 1024

// ImportResponse is the completion report of a spreadsheet import. Skipped
// rows never abort the batch; they are only counted. SupervisorError is set
// when the contracts were persisted but the supervisor inserts failed.
type ImportResponse struct {
	Imported          int    `json:"imported"`
	Skipped           int    `json:"skipped"`
	SupervisorsLinked int    `json:"supervisors_linked"`
	SupervisorError   string `json:"supervisor_error,omitempty"`
}
