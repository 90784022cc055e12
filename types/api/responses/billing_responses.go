package responses

// ProcessRetriesResult summarises one retry tick of the billing worker.
type ProcessRetriesResult struct {
	ProcessedCount  int `json:"processed_count"`
	SuccessfulCount int `json:"successful_count"`
	FailedCount     int `json:"failed_count"`
	SkippedCount    int `json:"skipped_count"`
}
