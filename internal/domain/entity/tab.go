package entity

import "time"

// TabID identifies a live browser tab.
type TabID int64

// WindowID identifies a browser window.
type WindowID int64

// WindowIDNone tags entries detached from any live window.
const WindowIDNone WindowID = -1

// Tab is a snapshot of an open tab.
type Tab struct {
	ID         TabID    `json:"id"`
	WindowID   WindowID `json:"windowId"`
	Title      string   `json:"title,omitempty"`
	URL        string   `json:"url,omitempty"`
	FavIconURL string   `json:"favIconUrl,omitempty"`
	Active     bool     `json:"active"`
}

// Window is a snapshot of a browser window.
type Window struct {
	ID        WindowID `json:"id"`
	Focused   bool     `json:"focused"`
	Incognito bool     `json:"incognito"`
}

// TabFilter narrows a tab query. Zero values mean "any".
type TabFilter struct {
	WindowID *WindowID `json:"windowId,omitempty"`
	Active   *bool     `json:"active,omitempty"`
}

// InWindow returns a filter matching tabs of one window.
func InWindow(id WindowID) TabFilter {
	return TabFilter{WindowID: &id}
}

// ActiveIn returns a filter matching the active tab of one window.
func ActiveIn(id WindowID) TabFilter {
	active := true
	return TabFilter{WindowID: &id, Active: &active}
}

// Matches reports whether tab satisfies the filter.
func (f TabFilter) Matches(tab Tab) bool {
	if f.WindowID != nil && tab.WindowID != *f.WindowID {
		return false
	}
	if f.Active != nil && tab.Active != *f.Active {
		return false
	}
	return true
}

// TabUpdate holds the tab properties to change.
type TabUpdate struct {
	Active bool `json:"active"`
}

// CreateTabInput describes a new tab. An empty URL opens the browser's new tab page.
type CreateTabInput struct {
	URL string `json:"url,omitempty"`
}

// CreateWindowInput describes a new window.
type CreateWindowInput struct {
	Incognito bool `json:"incognito,omitempty"`
}

// ClosedSession is a recently closed entry. Window sessions carry no Tab.
type ClosedSession struct {
	Tab          *Tab
	LastModified time.Time
}
