package entity

// GroupKey tags a result section and decides how its rows are selected.
type GroupKey string

const (
	GroupCurrentWindowTabs  GroupKey = "current_window_tabs"
	GroupRecentlyClosedTabs GroupKey = "recently_closed_tabs"
	GroupBookmarks          GroupKey = "bookmarks"
	GroupHistorySuggestions GroupKey = "history_suggestions"
	GroupCommands           GroupKey = "commands"
)

// GroupOrder is the display order of the palette sections.
var GroupOrder = []GroupKey{
	GroupCurrentWindowTabs,
	GroupCommands,
	GroupRecentlyClosedTabs,
	GroupBookmarks,
	GroupHistorySuggestions,
}

var groupHeadings = map[GroupKey]string{
	GroupCurrentWindowTabs:  "Current Window",
	GroupCommands:           "Commands",
	GroupRecentlyClosedTabs: "Recently Closed",
	GroupBookmarks:          "Bookmarks",
	GroupHistorySuggestions: "History Suggestions",
}

// Heading returns the section title shown above the group.
func (g GroupKey) Heading() string {
	if h, ok := groupHeadings[g]; ok {
		return h
	}
	return string(g)
}

// Navigable reports whether selecting a row of this group navigates to a URL.
// Commands are invoked instead.
func (g GroupKey) Navigable() bool {
	return g != GroupCommands
}

// Valid reports whether g is one of the known group keys.
func (g GroupKey) Valid() bool {
	_, ok := groupHeadings[g]
	return ok
}

// ParseGroupKey converts a wire value into a GroupKey.
func ParseGroupKey(s string) (GroupKey, bool) {
	g := GroupKey(s)
	return g, g.Valid()
}
