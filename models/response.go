package models

// AnalyzeResponse is returned for a successful analysis. A request
// never carries both an answer and an error: failures are returned as
// ErrorResponse with a mapped status code instead.
type AnalyzeResponse struct {
	Answer    string `json:"answer"`
	SessionID string `json:"sessionID,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// HistoryResponse is the structure for the response of GET /history.
type HistoryResponse struct {
	SessionID string      `json:"sessionID"`
	Count     int         `json:"count"`
	Entries   []ChatEntry `json:"entries"`
}
