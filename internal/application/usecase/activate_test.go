package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/palette/internal/application/port/mocks"
	"github.com/bnema/palette/internal/application/usecase"
	"github.com/bnema/palette/internal/domain/entity"
)

// fakeState is a QueryState holding a fixed snapshot and counting resets.
type fakeState struct {
	snap   entity.AggregateResult
	resets int
}

func (s *fakeState) Snapshot() entity.AggregateResult { return s.snap.Clone() }

func (s *fakeState) Reset(context.Context) uint64 {
	s.resets++
	s.snap = entity.NewAggregateResult("", s.snap.Token+1)
	return s.snap.Token
}

func stateWith(query string, groups map[entity.GroupKey][]entity.ResultItem, cmds []entity.CommandSpec) *fakeState {
	res := entity.NewAggregateResult(query, 1)
	for k, v := range groups {
		res.SetGroup(k, v)
	}
	res.SetCommands(cmds)
	return &fakeState{snap: res}
}

func TestSelectionUseCase_SubmitFallsBackToSearch(t *testing.T) {
	ctx := testContext()
	table, _ := newCommandTable(t, "")
	tabs := portmocks.NewMockTabDirectory(t)
	state := stateWith("rust book", nil, nil)

	tabs.EXPECT().CreateTab(mock.Anything, entity.CreateTabInput{URL: "https://www.google.com/search?q=rust%20book"}).Return(nil)

	uc := usecase.NewSelectionUseCase(state, table, tabs, usecase.FallbackOptions{})
	out, err := uc.Submit(ctx)
	require.NoError(t, err)
	assert.True(t, out.Fallback)
	assert.Equal(t, "https://www.google.com/search?q=rust%20book", out.URL)
	assert.Equal(t, 1, state.resets)
	assert.Equal(t, "", state.Snapshot().Query)
}

func TestSelectionUseCase_SubmitNoOps(t *testing.T) {
	table, _ := newCommandTable(t, "")
	winCmds := table.Filter("win")

	tests := []struct {
		name     string
		state    *fakeState
		fallback usecase.FallbackOptions
	}{
		{
			name:  "empty query",
			state: stateWith("", nil, nil),
		},
		{
			name:  "whitespace query",
			state: stateWith("   ", nil, nil),
		},
		{
			name: "navigable results present",
			state: stateWith("docs", map[entity.GroupKey][]entity.ResultItem{
				entity.GroupBookmarks: {{Title: "Docs", URL: "https://docs.example", Group: entity.GroupBookmarks}},
			}, nil),
		},
		{
			name:     "commands suppress fallback when enabled",
			state:    stateWith("win", nil, winCmds),
			fallback: usecase.FallbackOptions{IncludeCommands: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tabs := portmocks.NewMockTabDirectory(t)
			uc := usecase.NewSelectionUseCase(tt.state, table, tabs, tt.fallback)

			out, err := uc.Submit(testContext())
			require.NoError(t, err)
			assert.False(t, out.Fallback)
			assert.Zero(t, tt.state.resets)
		})
	}
}

func TestSelectionUseCase_SubmitIgnoresCommandsByDefault(t *testing.T) {
	table, _ := newCommandTable(t, "")
	tabs := portmocks.NewMockTabDirectory(t)
	state := stateWith("win", nil, table.Filter("win"))

	tabs.EXPECT().CreateTab(mock.Anything, entity.CreateTabInput{URL: "https://www.google.com/search?q=win"}).Return(nil)

	uc := usecase.NewSelectionUseCase(state, table, tabs, usecase.FallbackOptions{})
	out, err := uc.Submit(testContext())
	require.NoError(t, err)
	assert.True(t, out.Fallback)
}

func TestSelectionUseCase_SubmitBangShortcut(t *testing.T) {
	table, _ := newCommandTable(t, "")
	tabs := portmocks.NewMockTabDirectory(t)
	state := stateWith("!gh bubbletea", nil, nil)

	tabs.EXPECT().CreateTab(mock.Anything, entity.CreateTabInput{URL: "https://github.com/search?q=bubbletea"}).Return(nil)

	uc := usecase.NewSelectionUseCase(state, table, tabs, usecase.FallbackOptions{
		Shortcuts: map[string]string{"gh": "https://github.com/search?q=%s"},
	})
	out, err := uc.Submit(testContext())
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/search?q=bubbletea", out.URL)
}

func TestSelectionUseCase_SubmitCreateTabError(t *testing.T) {
	table, _ := newCommandTable(t, "")
	tabs := portmocks.NewMockTabDirectory(t)
	state := stateWith("query", nil, nil)

	tabs.EXPECT().CreateTab(mock.Anything, mock.Anything).Return(errors.New("host gone"))

	uc := usecase.NewSelectionUseCase(state, table, tabs, usecase.FallbackOptions{})
	_, err := uc.Submit(testContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open search")
	assert.Equal(t, 1, state.resets)
}

func TestSelectionUseCase_ActivateFocusesExistingTab(t *testing.T) {
	groups := []entity.GroupKey{
		entity.GroupBookmarks,
		entity.GroupHistorySuggestions,
		entity.GroupRecentlyClosedTabs,
		entity.GroupCurrentWindowTabs,
	}

	for _, group := range groups {
		t.Run(string(group), func(t *testing.T) {
			table, _ := newCommandTable(t, "")
			tabs := portmocks.NewMockTabDirectory(t)
			state := stateWith("ex", nil, nil)

			tabs.EXPECT().QueryTabs(mock.Anything, entity.TabFilter{}).Return([]entity.Tab{
				{ID: 3, WindowID: 1, URL: "https://other.example"},
				{ID: 5, WindowID: 2, URL: "https://example.com"},
			}, nil)
			tabs.EXPECT().UpdateTab(mock.Anything, entity.TabID(5), entity.TabUpdate{Active: true}).Return(nil)

			uc := usecase.NewSelectionUseCase(state, table, tabs, usecase.FallbackOptions{})
			out, err := uc.Activate(testContext(), usecase.ActivateInput{Item: entity.ResultItem{
				Title: "Example", URL: "https://example.com", Group: group,
			}})
			require.NoError(t, err)
			require.NotNil(t, out.FocusedTab)
			assert.Equal(t, entity.TabID(5), *out.FocusedTab)
			assert.False(t, out.Created)
			assert.Equal(t, 1, state.resets)
		})
	}
}

func TestSelectionUseCase_ActivateOpensNewTab(t *testing.T) {
	table, _ := newCommandTable(t, "")
	tabs := portmocks.NewMockTabDirectory(t)
	state := stateWith("ex", nil, nil)

	tabs.EXPECT().QueryTabs(mock.Anything, entity.TabFilter{}).Return([]entity.Tab{
		{ID: 3, URL: "https://other.example"},
	}, nil)
	tabs.EXPECT().CreateTab(mock.Anything, entity.CreateTabInput{URL: "https://example.com"}).Return(nil)

	uc := usecase.NewSelectionUseCase(state, table, tabs, usecase.FallbackOptions{})
	out, err := uc.Activate(testContext(), usecase.ActivateInput{Item: entity.ResultItem{
		URL: "https://example.com", Group: entity.GroupBookmarks,
	}})
	require.NoError(t, err)
	assert.True(t, out.Created)
	assert.Nil(t, out.FocusedTab)
}

func TestSelectionUseCase_ActivateCommand(t *testing.T) {
	table, m := newCommandTable(t, "")
	state := stateWith("hist", nil, table.Filter("hist"))

	m.tabs.EXPECT().CreateTab(mock.Anything, entity.CreateTabInput{URL: "chrome://history"}).Return(nil)

	cmd, ok := table.ByID(usecase.CommandOpenHistory)
	require.True(t, ok)

	uc := usecase.NewSelectionUseCase(state, table, m.tabs, usecase.FallbackOptions{})
	out, err := uc.Activate(testContext(), usecase.ActivateInput{Item: cmd.Item()})
	require.NoError(t, err)
	assert.Equal(t, usecase.CommandOpenHistory, out.Command)
	assert.Equal(t, 1, state.resets)
}

func TestSelectionUseCase_ActivateErrors(t *testing.T) {
	t.Run("unknown command", func(t *testing.T) {
		table, m := newCommandTable(t, "")
		state := stateWith("x", nil, nil)
		uc := usecase.NewSelectionUseCase(state, table, m.tabs, usecase.FallbackOptions{})

		_, err := uc.Activate(testContext(), usecase.ActivateInput{Item: entity.ResultItem{
			Group: entity.GroupCommands, Command: "self_destruct",
		}})
		assert.ErrorIs(t, err, usecase.ErrUnknownCommand)
		assert.Equal(t, 1, state.resets)
	})

	t.Run("failing effect resets query", func(t *testing.T) {
		table, m := newCommandTable(t, "")
		state := stateWith("reload", nil, nil)
		boom := errors.New("no tab")
		m.tabs.EXPECT().ReloadActiveTab(mock.Anything).Return(boom)

		cmd, _ := table.ByID(usecase.CommandReloadTab)
		uc := usecase.NewSelectionUseCase(state, table, m.tabs, usecase.FallbackOptions{})

		_, err := uc.Activate(testContext(), usecase.ActivateInput{Item: cmd.Item()})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, state.resets)
	})

	t.Run("empty url", func(t *testing.T) {
		table, m := newCommandTable(t, "")
		state := stateWith("x", nil, nil)
		uc := usecase.NewSelectionUseCase(state, table, m.tabs, usecase.FallbackOptions{})

		_, err := uc.Activate(testContext(), usecase.ActivateInput{Item: entity.ResultItem{Group: entity.GroupBookmarks}})
		assert.ErrorIs(t, err, usecase.ErrEmptyURL)
	})
}
