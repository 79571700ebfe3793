package sqlite_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/palette/internal/application/port"
	"github.com/bnema/palette/internal/domain/entity"
	"github.com/bnema/palette/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/palette/internal/logging"
)

const placesSchema = `
CREATE TABLE moz_places (
	id INTEGER PRIMARY KEY,
	url LONGVARCHAR,
	title LONGVARCHAR,
	visit_count INTEGER DEFAULT 0,
	hidden INTEGER DEFAULT 0 NOT NULL,
	last_visit_date INTEGER
);
CREATE TABLE moz_bookmarks (
	id INTEGER PRIMARY KEY,
	type INTEGER,
	fk INTEGER DEFAULT NULL,
	parent INTEGER,
	position INTEGER,
	title LONGVARCHAR,
	guid TEXT
);`

const placesFixture = `
INSERT INTO moz_places (id, url, title, visit_count, hidden, last_visit_date) VALUES
	(1, 'https://go.dev/doc', 'Go docs', 12, 0, 1700000300000000),
	(2, 'https://example.com/100%_real', 'Percent', 1, 0, 1700000200000000),
	(3, 'https://hidden.example', 'Hidden', 4, 1, 1700000400000000),
	(4, 'https://never.example', 'Bookmarked only', 0, 0, NULL),
	(5, 'https://rust-lang.org', NULL, 2, 0, 1700000100000000);
INSERT INTO moz_bookmarks (id, type, fk, parent, position, title, guid) VALUES
	(1, 2, NULL, 0, 0, '', 'root________'),
	(2, 2, NULL, 1, 0, 'menu', 'menu________'),
	(3, 2, NULL, 1, 1, 'toolbar', 'toolbar_____'),
	(4, 2, NULL, 1, 2, 'tags', 'tags________'),
	(10, 1, 4, 3, 1, 'Never', 'bm1'),
	(11, 1, 1, 3, 0, 'Go', 'bm2'),
	(12, 3, NULL, 3, 2, NULL, 'sep'),
	(13, 2, NULL, 2, 0, 'Reading', 'f1'),
	(14, 1, 5, 13, 0, 'Rust', 'bm3'),
	(15, 2, NULL, 4, 0, 'golang', 'tag1'),
	(16, 1, 1, 15, 0, NULL, 'tag1bm');`

func placesTestCtx() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

func newPlacesStore(t *testing.T) *sqlite.PlacesStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), sqlite.PlacesFile)

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(placesSchema)
	require.NoError(t, err)
	_, err = db.Exec(placesFixture)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	store, err := sqlite.NewPlacesStore(placesTestCtx(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func historyURLs(items []entity.HistoryItem) []string {
	urls := make([]string, 0, len(items))
	for _, it := range items {
		urls = append(urls, it.URL)
	}
	return urls
}

func TestPlacesStore_SearchHistory(t *testing.T) {
	store := newPlacesStore(t)
	ctx := placesTestCtx()

	t.Run("empty text matches every visible place, newest first", func(t *testing.T) {
		items, err := store.SearchHistory(ctx, entity.HistoryQuery{MaxResults: 10})
		require.NoError(t, err)
		assert.Equal(t, []string{"https://go.dev/doc", "https://example.com/100%_real", "https://rust-lang.org"}, historyURLs(items))
		assert.Equal(t, time.UnixMicro(1700000300000000), items[0].LastVisited)
		assert.Equal(t, int64(12), items[0].VisitCount)
		assert.Equal(t, "", items[2].Title)
	})

	t.Run("matches title case-insensitively", func(t *testing.T) {
		items, err := store.SearchHistory(ctx, entity.HistoryQuery{Text: "DOCS", MaxResults: 10})
		require.NoError(t, err)
		assert.Equal(t, []string{"https://go.dev/doc"}, historyURLs(items))
	})

	t.Run("wildcards match literally", func(t *testing.T) {
		items, err := store.SearchHistory(ctx, entity.HistoryQuery{Text: "100%_", MaxResults: 10})
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/100%_real"}, historyURLs(items))

		items, err = store.SearchHistory(ctx, entity.HistoryQuery{Text: "_", MaxResults: 10})
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/100%_real"}, historyURLs(items))
	})

	t.Run("max results", func(t *testing.T) {
		items, err := store.SearchHistory(ctx, entity.HistoryQuery{MaxResults: 1})
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})
}

func TestPlacesStore_GetBookmarkTree(t *testing.T) {
	store := newPlacesStore(t)

	roots, err := store.GetBookmarkTree(placesTestCtx())
	require.NoError(t, err)

	var titles []string
	for _, r := range roots {
		titles = append(titles, r.Title)
	}
	assert.Equal(t, []string{"menu", "toolbar"}, titles)

	var urls []string
	for _, r := range roots {
		r.Walk(func(n *entity.BookmarkNode) {
			if !n.IsFolder() {
				urls = append(urls, n.Title+"="+n.URL)
			}
		})
	}
	assert.Equal(t, []string{
		"Rust=https://rust-lang.org",
		"Go=https://go.dev/doc",
		"Never=https://never.example",
	}, urls)
}

func TestPlacesStore_CreateBookmarkIsReadOnly(t *testing.T) {
	store := newPlacesStore(t)
	err := store.CreateBookmark(placesTestCtx(), entity.CreateBookmarkInput{Title: "x", URL: "https://x.example"})
	assert.ErrorIs(t, err, port.ErrReadOnly)
}

func TestNewPlacesStore_MissingFile(t *testing.T) {
	_, err := sqlite.NewPlacesStore(placesTestCtx(), filepath.Join(t.TempDir(), "nope.sqlite"))
	require.Error(t, err)
}

func TestDiscoverPlaces_PicksNewestProfile(t *testing.T) {
	home := t.TempDir()
	older := filepath.Join(home, ".mozilla", "firefox", "abc.default", sqlite.PlacesFile)
	newer := filepath.Join(home, ".mozilla", "firefox", "xyz.default-release", sqlite.PlacesFile)
	for _, p := range []string{older, newer} {
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(older, past, past))

	assert.Equal(t, newer, sqlite.DiscoverPlaces(home))
	assert.Equal(t, "", sqlite.DiscoverPlaces(t.TempDir()))
}
