package responses

type ImportCustomers struct {
	Imported     int      `json:"imported"`
	Skipped      int      `json:"skipped"`
	SkippedRows  []string `json:"skippedEmails,omitempty"`
	ArchivedFile string   `json:"archivedFile,omitempty"`
}
