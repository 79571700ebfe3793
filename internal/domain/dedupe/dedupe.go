// Package dedupe collapses provider output into unique, display-ready rows.
package dedupe

import (
	"github.com/samber/lo"

	"github.com/bnema/palette/internal/domain/entity"
)

// IconResolver maps a page URL to an icon URL.
type IconResolver interface {
	Resolve(rawURL string) string
}

// Dedupe keeps the first occurrence of every key, preserving input order.
func Dedupe[T any](entries []T, key func(T) string) []T {
	if len(entries) == 0 {
		return nil
	}
	return lo.UniqBy(entries, key)
}

// ByURL keys an entry by its URL.
func ByURL(e entity.RawEntry) string { return e.URL }

// ByTitle keys an entry by its title.
func ByTitle(e entity.RawEntry) string { return e.Title }

// KeyFor returns the collapse key used for a group.
// History suggestions collapse by title, every other group by URL.
func KeyFor(group entity.GroupKey) func(entity.RawEntry) string {
	if group == entity.GroupHistorySuggestions {
		return ByTitle
	}
	return ByURL
}

// Normalize turns raw entries into result rows for group.
// Entries without a URL are dropped, missing titles get the placeholder and
// missing icons are resolved through resolver.
func Normalize(entries []entity.RawEntry, group entity.GroupKey, resolver IconResolver) []entity.ResultItem {
	items := make([]entity.ResultItem, 0, len(entries))
	for _, e := range entries {
		icon := e.IconURL
		if icon == "" && resolver != nil {
			icon = resolver.Resolve(e.URL)
		}
		item, ok := entity.NewResultItem(e.Title, e.URL, icon, group)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items
}

// Apply runs Dedupe with the group key and then Normalize.
func Apply(entries []entity.RawEntry, group entity.GroupKey, resolver IconResolver) []entity.ResultItem {
	return Normalize(Dedupe(entries, KeyFor(group)), group, resolver)
}
