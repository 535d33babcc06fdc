package models

// ChatEntry is one completed question/answer turn. Entries are
// append-only and rendered most recent first; failed turns are never
// recorded.
type ChatEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
