package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/palette/internal/application/port/mocks"
	"github.com/bnema/palette/internal/application/usecase"
	"github.com/bnema/palette/internal/domain/entity"
)

func TestActiveTabsProvider_KeepsOnlyCurrentWindow(t *testing.T) {
	ctx := testContext()

	tabs := portmocks.NewMockTabDirectory(t)
	windows := portmocks.NewMockWindowDirectory(t)

	windows.EXPECT().GetCurrentWindow(mock.Anything).Return(entity.Window{ID: 2, Focused: true}, nil).Once()
	tabs.EXPECT().QueryTabs(mock.Anything, entity.InWindow(2)).Return([]entity.Tab{
		{ID: 1, WindowID: 2, Title: "Go", URL: "https://go.dev", FavIconURL: "https://go.dev/favicon.ico"},
		{ID: 2, WindowID: 3, Title: "Other window", URL: "https://example.com"},
		{ID: 3, WindowID: 2, Title: "Rust", URL: "https://rust-lang.org"},
	}, nil)

	p := usecase.NewActiveTabsProvider(tabs, windows)
	entries, err := p.Fetch(ctx, "ignored")

	require.NoError(t, err)
	assert.Equal(t, entity.GroupCurrentWindowTabs, p.Group())
	require.Len(t, entries, 2)
	assert.Equal(t, "https://go.dev/favicon.ico", entries[0].IconURL)
	assert.Equal(t, entity.WindowID(2), entries[1].WindowID)
}

func TestActiveTabsProvider_WindowLookupEachCall(t *testing.T) {
	ctx := testContext()

	tabs := portmocks.NewMockTabDirectory(t)
	windows := portmocks.NewMockWindowDirectory(t)

	windows.EXPECT().GetCurrentWindow(mock.Anything).Return(entity.Window{ID: 1}, nil).Once()
	windows.EXPECT().GetCurrentWindow(mock.Anything).Return(entity.Window{ID: 4}, nil).Once()
	tabs.EXPECT().QueryTabs(mock.Anything, entity.InWindow(1)).Return(nil, nil).Once()
	tabs.EXPECT().QueryTabs(mock.Anything, entity.InWindow(4)).Return(nil, nil).Once()

	p := usecase.NewActiveTabsProvider(tabs, windows)
	_, err := p.Fetch(ctx, "")
	require.NoError(t, err)
	_, err = p.Fetch(ctx, "")
	require.NoError(t, err)
}

func TestActiveTabsProvider_WindowError(t *testing.T) {
	ctx := testContext()

	tabs := portmocks.NewMockTabDirectory(t)
	windows := portmocks.NewMockWindowDirectory(t)
	windows.EXPECT().GetCurrentWindow(mock.Anything).Return(entity.Window{}, errors.New("no window"))

	_, err := usecase.NewActiveTabsProvider(tabs, windows).Fetch(ctx, "")
	assert.ErrorContains(t, err, "failed to get current window")
}

func TestRecentlyClosedProvider_SkipsWindows(t *testing.T) {
	ctx := testContext()

	sessions := portmocks.NewMockSessionStore(t)
	sessions.EXPECT().GetRecentlyClosed(mock.Anything).Return([]entity.ClosedSession{
		{Tab: &entity.Tab{ID: 9, WindowID: 1, Title: "Closed", URL: "https://closed.example"}, LastModified: time.Now()},
		{Tab: nil, LastModified: time.Now()},
	}, nil)

	entries, err := usecase.NewRecentlyClosedProvider(sessions).Fetch(ctx, "")

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.WindowIDNone, entries[0].WindowID)
	assert.Equal(t, "https://closed.example", entries[0].URL)
}

func TestBookmarksProvider_PreOrderSkipsFolders(t *testing.T) {
	ctx := testContext()

	tree := []*entity.BookmarkNode{
		{ID: "1", Title: "Toolbar", Children: []*entity.BookmarkNode{
			{ID: "2", Title: "A", URL: "https://a.example"},
			{ID: "3", Title: "Dev", Children: []*entity.BookmarkNode{
				{ID: "4", Title: "B", URL: "https://b.example"},
			}},
			{ID: "5", Title: "C", URL: "https://c.example"},
		}},
		{ID: "6", Title: "D", URL: "https://d.example"},
	}

	store := portmocks.NewMockBookmarkStore(t)
	store.EXPECT().GetBookmarkTree(mock.Anything).Return(tree, nil)

	entries, err := usecase.NewBookmarksProvider(store).Fetch(ctx, "")

	require.NoError(t, err)
	var titles []string
	for _, e := range entries {
		titles = append(titles, e.Title)
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, titles)
}

func TestHistoryProvider_EmptyQuerySeed(t *testing.T) {
	ctx := testContext()

	items := make([]entity.HistoryItem, 0, 8)
	for i := 0; i < 8; i++ {
		items = append(items, entity.HistoryItem{Title: "t", URL: "https://h.example/" + string(rune('a'+i))})
	}

	store := portmocks.NewMockHistoryStore(t)
	store.EXPECT().SearchHistory(mock.Anything, entity.HistoryQuery{Text: "", MaxResults: 5}).Return(items, nil)

	entries, err := usecase.NewHistoryProvider(store, usecase.HistoryLimits{}).Fetch(ctx, "")

	require.NoError(t, err)
	assert.LessOrEqual(t, len(entries), 5)
}

func TestHistoryProvider_SearchDropsIncomplete(t *testing.T) {
	ctx := testContext()

	store := portmocks.NewMockHistoryStore(t)
	store.EXPECT().SearchHistory(mock.Anything, entity.HistoryQuery{Text: "go", MaxResults: 1000}).Return([]entity.HistoryItem{
		{Title: "Go", URL: "https://go.dev"},
		{Title: "", URL: "https://untitled.example"},
		{Title: "No URL", URL: ""},
	}, nil)

	entries, err := usecase.NewHistoryProvider(store, usecase.HistoryLimits{}).Fetch(ctx, "go")

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "https://go.dev", entries[0].URL)
}

func TestHistoryProvider_CustomLimits(t *testing.T) {
	ctx := testContext()

	store := portmocks.NewMockHistoryStore(t)
	store.EXPECT().SearchHistory(mock.Anything, entity.HistoryQuery{Text: "x", MaxResults: 50}).Return(nil, nil)

	_, err := usecase.NewHistoryProvider(store, usecase.HistoryLimits{SeedLimit: 3, MaxResults: 50}).Fetch(ctx, "x")
	require.NoError(t, err)
}
