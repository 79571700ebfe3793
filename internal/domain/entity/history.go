package entity

import "time"

// HistoryItem is a visited URL as reported by the host browser.
type HistoryItem struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	LastVisited time.Time `json:"last_visited"`
	VisitCount  int64     `json:"visit_count"`
}

// HistoryQuery mirrors the browser history search parameters.
// An empty Text matches every entry.
type HistoryQuery struct {
	Text       string `json:"text"`
	MaxResults int    `json:"maxResults"`
}
