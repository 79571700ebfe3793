package usecase_test

import (
	"context"

	"github.com/bnema/palette/internal/application/usecase"
	"github.com/bnema/palette/internal/domain/entity"
	"github.com/bnema/palette/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// stubProvider is a Provider backed by a function.
type stubProvider struct {
	group entity.GroupKey
	fetch func(ctx context.Context, query string) ([]entity.RawEntry, error)
}

func (p stubProvider) Group() entity.GroupKey { return p.group }

func (p stubProvider) Fetch(ctx context.Context, query string) ([]entity.RawEntry, error) {
	if p.fetch == nil {
		return nil, nil
	}
	return p.fetch(ctx, query)
}

func staticProvider(group entity.GroupKey, entries ...entity.RawEntry) stubProvider {
	return stubProvider{group: group, fetch: func(context.Context, string) ([]entity.RawEntry, error) {
		return entries, nil
	}}
}

func emptyProviders() []stubProvider {
	return []stubProvider{
		{group: entity.GroupCurrentWindowTabs},
		{group: entity.GroupRecentlyClosedTabs},
		{group: entity.GroupBookmarks},
		{group: entity.GroupHistorySuggestions},
	}
}

func asProviders(stubs ...stubProvider) []usecase.Provider {
	out := make([]usecase.Provider, 0, len(stubs))
	for _, s := range stubs {
		out = append(out, s)
	}
	return out
}
