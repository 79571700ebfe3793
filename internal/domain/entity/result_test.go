package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResultItem(t *testing.T) {
	item, ok := NewResultItem("", "https://example.com", "", GroupBookmarks)
	require.True(t, ok)
	assert.Equal(t, NoTitle, item.Title)
	assert.Equal(t, GroupBookmarks, item.Group)

	_, ok = NewResultItem("Title", "", "", GroupBookmarks)
	assert.False(t, ok)
}

func TestAggregateResult_GroupsFollowDisplayOrder(t *testing.T) {
	r := NewAggregateResult("q", 3)
	r.SetGroup(GroupHistorySuggestions, []ResultItem{{Title: "h", URL: "https://h.example"}})
	r.SetGroup(GroupCurrentWindowTabs, []ResultItem{{Title: "t", URL: "https://t.example"}})
	r.SetCommands([]CommandSpec{{ID: "new_tab", Name: "New Tab"}})

	groups := r.Groups()
	require.Len(t, groups, len(GroupOrder))
	for i, g := range groups {
		assert.Equal(t, GroupOrder[i], g.Key)
		assert.Equal(t, g.Key.Heading(), g.Heading)
	}
	assert.Equal(t, CommandID("new_tab"), groups[1].Items[0].Command)
	assert.Equal(t, 2, r.NavigableCount())
	assert.True(t, r.Resolved(GroupCommands))
	assert.False(t, r.Resolved(GroupBookmarks))
}

func TestAggregateResult_CloneIsIndependent(t *testing.T) {
	r := NewAggregateResult("q", 1)
	r.SetGroup(GroupBookmarks, []ResultItem{{Title: "a", URL: "https://a.example"}})

	c := r.Clone()
	c.SetGroup(GroupBookmarks, nil)

	assert.Len(t, r.Group(GroupBookmarks), 1)
	assert.Empty(t, c.Group(GroupBookmarks))
}

func TestTabFilter_Matches(t *testing.T) {
	tab := Tab{ID: 1, WindowID: 7, Active: true}

	assert.True(t, TabFilter{}.Matches(tab))
	assert.True(t, InWindow(7).Matches(tab))
	assert.False(t, InWindow(8).Matches(tab))
	assert.True(t, ActiveIn(7).Matches(tab))
	assert.False(t, ActiveIn(7).Matches(Tab{WindowID: 7}))
}

func TestBookmarkNode_WalkPreOrder(t *testing.T) {
	root := &BookmarkNode{ID: "root", Children: []*BookmarkNode{
		{ID: "a", Children: []*BookmarkNode{{ID: "a1", URL: "https://a1.example"}}},
		{ID: "b", URL: "https://b.example"},
	}}

	var order []string
	root.Walk(func(n *BookmarkNode) { order = append(order, n.ID) })

	assert.Equal(t, []string{"root", "a", "a1", "b"}, order)
	assert.True(t, root.IsFolder())
}
