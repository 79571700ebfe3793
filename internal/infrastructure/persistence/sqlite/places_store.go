package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/bnema/palette/internal/application/port"
	"github.com/bnema/palette/internal/domain/entity"
	"github.com/bnema/palette/internal/logging"
)

// PlacesFile is the Firefox history and bookmarks database name.
const PlacesFile = "places.sqlite"

// moz_bookmarks.type values.
const (
	bookmarkTypeURL    = 1
	bookmarkTypeFolder = 2
)

// tagsRootGUID is the folder holding tag folders; its entries duplicate real bookmarks.
const tagsRootGUID = "tags________"

const defaultHistoryLimit = 1000

// PlacesStore reads history and bookmarks from a Firefox places.sqlite.
type PlacesStore struct {
	db *sql.DB
}

var (
	_ port.HistoryStore  = (*PlacesStore)(nil)
	_ port.BookmarkStore = (*PlacesStore)(nil)
)

// NewPlacesStore opens the places database at path read-only.
func NewPlacesStore(ctx context.Context, path string) (*PlacesStore, error) {
	db, err := OpenReadOnly(ctx, path)
	if err != nil {
		return nil, err
	}
	return &PlacesStore{db: db}, nil
}

// Close releases the database.
func (s *PlacesStore) Close() error {
	return Close(s.db)
}

// escapeLike escapes LIKE wildcards so text matches literally with ESCAPE '\'.
func escapeLike(text string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(text)
}

const searchHistorySQL = `
SELECT url, COALESCE(title, ''), COALESCE(last_visit_date, 0), visit_count
FROM moz_places
WHERE hidden = 0
  AND visit_count > 0
  AND (url LIKE ?1 ESCAPE '\' OR title LIKE ?1 ESCAPE '\')
ORDER BY last_visit_date DESC
LIMIT ?2`

// SearchHistory matches text against url and title, most recent first.
func (s *PlacesStore) SearchHistory(ctx context.Context, query entity.HistoryQuery) ([]entity.HistoryItem, error) {
	limit := query.MaxResults
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	pattern := "%" + escapeLike(query.Text) + "%"

	rows, err := s.db.QueryContext(ctx, searchHistorySQL, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search history: %w", err)
	}
	defer rows.Close()

	items := make([]entity.HistoryItem, 0)
	for rows.Next() {
		var (
			item      entity.HistoryItem
			lastVisit int64 // PRTime, microseconds
		)
		if err := rows.Scan(&item.URL, &item.Title, &lastVisit, &item.VisitCount); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		if lastVisit > 0 {
			item.LastVisited = time.UnixMicro(lastVisit)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history rows: %w", err)
	}

	logging.FromContext(ctx).Trace().Int("count", len(items)).Msg("places history search")
	return items, nil
}

const bookmarkTreeSQL = `
SELECT b.id, b.type, COALESCE(b.parent, 0), COALESCE(b.title, ''), COALESCE(p.url, ''), COALESCE(b.guid, '')
FROM moz_bookmarks b
LEFT JOIN moz_places p ON p.id = b.fk
WHERE b.type IN (1, 2)
ORDER BY b.parent, b.position`

type bookmarkRow struct {
	id     int64
	kind   int
	parent int64
	title  string
	url    string
	guid   string
}

// GetBookmarkTree returns the top-level folders under the hidden root.
func (s *PlacesStore) GetBookmarkTree(ctx context.Context) ([]*entity.BookmarkNode, error) {
	rows, err := s.db.QueryContext(ctx, bookmarkTreeSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookmarks: %w", err)
	}
	defer rows.Close()

	var all []bookmarkRow
	for rows.Next() {
		var r bookmarkRow
		if err := rows.Scan(&r.id, &r.kind, &r.parent, &r.title, &r.url, &r.guid); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark row: %w", err)
		}
		all = append(all, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookmark rows: %w", err)
	}

	return buildBookmarkTree(all), nil
}

// buildBookmarkTree links rows, already sorted by position within each parent.
func buildBookmarkTree(rows []bookmarkRow) []*entity.BookmarkNode {
	nodes := make(map[int64]*entity.BookmarkNode, len(rows))
	for _, r := range rows {
		if r.kind == bookmarkTypeURL && r.url == "" {
			continue
		}
		node := &entity.BookmarkNode{ID: strconv.FormatInt(r.id, 10), Title: r.title}
		if r.kind == bookmarkTypeURL {
			node.URL = r.url
		}
		nodes[r.id] = node
	}

	var roots []*entity.BookmarkNode
	for _, r := range rows {
		node, ok := nodes[r.id]
		if !ok {
			continue
		}
		if r.parent == 0 {
			roots = append(roots, node)
			continue
		}
		if r.guid == tagsRootGUID {
			continue
		}
		if parent, ok := nodes[r.parent]; ok {
			parent.Children = append(parent.Children, node)
		}
	}

	// The hidden root is the only parentless folder; expose its children.
	return lo.FlatMap(roots, func(root *entity.BookmarkNode, _ int) []*entity.BookmarkNode {
		if root.IsFolder() {
			return root.Children
		}
		return []*entity.BookmarkNode{root}
	})
}

// CreateBookmark is not supported on a read-only database.
func (s *PlacesStore) CreateBookmark(context.Context, entity.CreateBookmarkInput) error {
	return port.ErrReadOnly
}

// DiscoverPlaces returns the most recently modified places.sqlite among the
// Firefox profiles under home, or "" when none exists.
func DiscoverPlaces(home string) string {
	patterns := []string{
		filepath.Join(home, ".mozilla", "firefox", "*", PlacesFile),
		filepath.Join(home, "snap", "firefox", "common", ".mozilla", "firefox", "*", PlacesFile),
		filepath.Join(home, ".var", "app", "org.mozilla.firefox", ".mozilla", "firefox", "*", PlacesFile),
		filepath.Join(home, "Library", "Application Support", "Firefox", "Profiles", "*", PlacesFile),
	}

	var (
		best    string
		bestMod time.Time
	)
	for _, pattern := range patterns {
		matches, _ := filepath.Glob(pattern)
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || info.IsDir() {
				continue
			}
			if info.ModTime().After(bestMod) {
				best, bestMod = m, info.ModTime()
			}
		}
	}
	return best
}
