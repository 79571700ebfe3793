package usecase

import (
	"context"
	"sort"
	"strings"

	urlutil "github.com/bnema/palette/internal/domain/url"
	"github.com/bnema/palette/internal/logging"
)

// SearchShortcut is one configured bang, e.g. "gh" for GitHub search.
type SearchShortcut struct {
	URL         string
	Description string
}

// BangSuggestion is a bang shown while the user types "!".
type BangSuggestion struct {
	Key         string
	Description string
}

// BangHint describes what the fallback would do with the current query.
type BangHint struct {
	// Suggestions lists the bangs whose key starts with the typed prefix.
	// It is empty once a key is completed with a space.
	Suggestions []BangSuggestion
	// Active is the completed bang, nil when none matches.
	Active *BangSuggestion
	// Terms is the text sent to the active bang.
	Terms string
}

// BangHintsUseCase resolves bang prefixes for display next to the query.
type BangHintsUseCase struct {
	shortcuts map[string]SearchShortcut
}

// NewBangHintsUseCase creates a hints use case over shortcuts.
func NewBangHintsUseCase(shortcuts map[string]SearchShortcut) *BangHintsUseCase {
	return &BangHintsUseCase{shortcuts: shortcuts}
}

// Hint returns the bang hint for query. Queries not starting with "!" yield
// an empty hint.
func (uc *BangHintsUseCase) Hint(ctx context.Context, query string) BangHint {
	log := logging.FromContext(ctx)

	if !strings.HasPrefix(query, "!") {
		return BangHint{}
	}

	if key, terms, ok := urlutil.ParseBangShortcut(query); ok {
		if s, found := uc.lookup(key); found {
			log.Debug().Str("bang", s.Key).Msg("bang completed")
			return BangHint{Active: &s, Terms: terms}
		}
		return BangHint{}
	}

	// "!gh " without terms is not a completed bang yet.
	prefix := strings.TrimPrefix(query, "!")
	if strings.Contains(prefix, " ") {
		return BangHint{}
	}
	return BangHint{Suggestions: uc.suggest(prefix)}
}

// lookup finds a shortcut by key, ignoring case.
func (uc *BangHintsUseCase) lookup(key string) (BangSuggestion, bool) {
	for k, s := range uc.shortcuts {
		if strings.EqualFold(k, key) {
			return suggestion(k, s), true
		}
	}
	return BangSuggestion{}, false
}

// suggest returns the shortcuts whose key starts with prefix, sorted by key.
func (uc *BangHintsUseCase) suggest(prefix string) []BangSuggestion {
	prefix = strings.ToLower(prefix)

	suggestions := make([]BangSuggestion, 0, len(uc.shortcuts))
	for key, s := range uc.shortcuts {
		if strings.HasPrefix(strings.ToLower(key), prefix) {
			suggestions = append(suggestions, suggestion(key, s))
		}
	}

	sort.Slice(suggestions, func(i, j int) bool {
		return strings.ToLower(suggestions[i].Key) < strings.ToLower(suggestions[j].Key)
	})
	return suggestions
}

func suggestion(key string, s SearchShortcut) BangSuggestion {
	description := s.Description
	if description == "" {
		description = s.URL
	}
	return BangSuggestion{Key: key, Description: description}
}
