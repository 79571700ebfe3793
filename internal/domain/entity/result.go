package entity

// NoTitle is the placeholder used when a source omits the title.
const NoTitle = "No title"

// RawEntry is what a data provider returns before normalization.
type RawEntry struct {
	Title    string
	URL      string
	IconURL  string
	WindowID WindowID
}

// ResultItem is one selectable row of the palette.
// URL is never empty once built through NewResultItem, except on command rows.
type ResultItem struct {
	Title   string    `json:"title"`
	URL     string    `json:"url"`
	IconURL string    `json:"iconUrl,omitempty"`
	Group   GroupKey  `json:"group"`
	Command CommandID `json:"command,omitempty"` // set only on command rows
}

// NewResultItem builds a row, applying the title placeholder.
// It returns false when the URL is empty.
func NewResultItem(title, url, iconURL string, group GroupKey) (ResultItem, bool) {
	if url == "" {
		return ResultItem{}, false
	}
	if title == "" {
		title = NoTitle
	}
	return ResultItem{Title: title, URL: url, IconURL: iconURL, Group: group}, true
}

// Group is an ordered, display-ready section.
type Group struct {
	Key     GroupKey
	Heading string
	Items   []ResultItem
}

// AggregateResult is the output of one aggregation cycle.
// It is rebuilt from scratch for every query change.
type AggregateResult struct {
	Query    string
	Token    uint64
	Commands []CommandSpec

	items    map[GroupKey][]ResultItem
	resolved map[GroupKey]bool
}

// NewAggregateResult starts an empty result for the given cycle.
func NewAggregateResult(query string, token uint64) AggregateResult {
	return AggregateResult{
		Query:    query,
		Token:    token,
		items:    make(map[GroupKey][]ResultItem),
		resolved: make(map[GroupKey]bool),
	}
}

// SetGroup stores the items of a navigable group and marks it resolved.
func (r *AggregateResult) SetGroup(key GroupKey, items []ResultItem) {
	if r.items == nil {
		r.items = make(map[GroupKey][]ResultItem)
	}
	if r.resolved == nil {
		r.resolved = make(map[GroupKey]bool)
	}
	r.items[key] = items
	r.resolved[key] = true
}

// SetCommands stores the filtered command list.
func (r *AggregateResult) SetCommands(cmds []CommandSpec) {
	if r.resolved == nil {
		r.resolved = make(map[GroupKey]bool)
	}
	r.Commands = cmds
	r.resolved[GroupCommands] = true
}

// Group returns the items stored for key. Commands are not ResultItems; use Commands.
func (r AggregateResult) Group(key GroupKey) []ResultItem {
	return r.items[key]
}

// Resolved reports whether the group for key has landed in this cycle.
func (r AggregateResult) Resolved(key GroupKey) bool {
	return r.resolved[key]
}

// NavigableCount counts the rows across every group except Commands.
func (r AggregateResult) NavigableCount() int {
	n := 0
	for key, items := range r.items {
		if key.Navigable() {
			n += len(items)
		}
	}
	return n
}

// Groups returns the sections in display order. Command rows carry the command ID
// instead of a URL.
func (r AggregateResult) Groups() []Group {
	groups := make([]Group, 0, len(GroupOrder))
	for _, key := range GroupOrder {
		g := Group{Key: key, Heading: key.Heading()}
		if key == GroupCommands {
			for _, c := range r.Commands {
				g.Items = append(g.Items, c.Item())
			}
		} else {
			g.Items = r.items[key]
		}
		groups = append(groups, g)
	}
	return groups
}

// Clone returns a deep copy safe to hand to another goroutine.
func (r AggregateResult) Clone() AggregateResult {
	out := NewAggregateResult(r.Query, r.Token)
	out.Commands = append([]CommandSpec(nil), r.Commands...)
	for k, v := range r.items {
		out.items[k] = append([]ResultItem(nil), v...)
	}
	for k, v := range r.resolved {
		out.resolved[k] = v
	}
	return out
}

// GroupUpdate signals that one group of the current cycle has landed.
type GroupUpdate struct {
	Token    uint64
	Query    string
	Group    GroupKey
	Items    []ResultItem
	Commands []CommandSpec
}
