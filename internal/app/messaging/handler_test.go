package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/palette/internal/application/port/mocks"
	"github.com/bnema/palette/internal/application/usecase"
	"github.com/bnema/palette/internal/domain/entity"
	"github.com/bnema/palette/internal/logging"
)

// memSender records every frame as decoded JSON.
type memSender struct {
	mu     sync.Mutex
	frames []map[string]any
	err    error
}

func (s *memSender) Send(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, m)
	return s.err
}

func (s *memSender) ofType(typ string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []map[string]any
	for _, f := range s.frames {
		if f["type"] == typ {
			out = append(out, f)
		}
	}
	return out
}

func (s *memSender) all() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]map[string]any(nil), s.frames...)
}

type providerFunc struct {
	group entity.GroupKey
	fetch func(ctx context.Context, query string) ([]entity.RawEntry, error)
}

func (p providerFunc) Group() entity.GroupKey { return p.group }

func (p providerFunc) Fetch(ctx context.Context, query string) ([]entity.RawEntry, error) {
	return p.fetch(ctx, query)
}

type fixture struct {
	ctx     context.Context
	sender  *memSender
	handler *Handler
	agg     *usecase.PaletteAggregator
	tabs    *portmocks.MockTabDirectory
	windows *portmocks.MockWindowDirectory
}

func newFixture(t *testing.T, providers ...usecase.Provider) *fixture {
	t.Helper()
	ctx := logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
	f := &fixture{
		ctx:     ctx,
		sender:  &memSender{},
		tabs:    portmocks.NewMockTabDirectory(t),
		windows: portmocks.NewMockWindowDirectory(t),
	}
	table := usecase.NewCommandTable(usecase.CommandCapabilities{
		Tabs:      f.tabs,
		Windows:   f.windows,
		Bookmarks: portmocks.NewMockBookmarkStore(t),
	}, usecase.CommandOptions{})

	f.handler = NewHandler(ctx, f.sender, "1.2.3")
	f.agg = usecase.NewPaletteAggregator(providers, table, usecase.WithListener(f.handler.OnGroup))
	t.Cleanup(f.agg.Close)
	f.handler.SetPalette(f.agg, usecase.NewSelectionUseCase(f.agg, table, f.tabs, usecase.FallbackOptions{}))
	return f
}

func (f *fixture) handle(raw string) {
	f.handler.HandleMessage(f.ctx, json.RawMessage(raw))
}

func TestHandler_LegacyActionsAlwaysSucceed(t *testing.T) {
	f := newFixture(t)
	f.windows.EXPECT().CreateWindow(mock.Anything, entity.CreateWindowInput{}).Return(nil)
	f.tabs.EXPECT().CreateTab(mock.Anything, entity.CreateTabInput{URL: "chrome://history"}).Return(errors.New("blocked"))

	f.handle(`{"type":"FROM_APP","action":"newWindow"}`)
	f.handle(`{"action":"openHistory"}`)
	f.handle(`{"type":"FROM_APP","action":"launchRockets"}`)

	frames := f.sender.all()
	require.Len(t, frames, 3)
	for _, fr := range frames {
		assert.Equal(t, map[string]any{"success": true}, fr)
	}
}

func TestHandler_QueryStreamsGroups(t *testing.T) {
	f := newFixture(t, providerFunc{group: entity.GroupBookmarks, fetch: func(context.Context, string) ([]entity.RawEntry, error) {
		return []entity.RawEntry{{Title: "Window manager", URL: "https://wm.example", IconURL: "wm.ico"}}, nil
	}})

	f.handle(`{"type":"query","text":"win"}`)

	require.Eventually(t, func() bool { return len(f.sender.ofType(TypeGroup)) == 2 }, time.Second, time.Millisecond)

	var commands, bookmarks map[string]any
	for _, fr := range f.sender.ofType(TypeGroup) {
		switch fr["group"] {
		case string(entity.GroupCommands):
			commands = fr
		case string(entity.GroupBookmarks):
			bookmarks = fr
		}
	}
	require.NotNil(t, commands)
	require.NotNil(t, bookmarks)

	assert.Equal(t, "Commands", commands["heading"])
	assert.Len(t, commands["items"], 2)
	assert.Len(t, commands["commands"], 2)
	assert.Equal(t, "win", commands["query"])

	items := bookmarks["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "https://wm.example", items[0].(map[string]any)["url"])
	assert.Equal(t, commands["token"], bookmarks["token"])
}

func TestHandler_ActivateFocusesTab(t *testing.T) {
	f := newFixture(t)
	f.tabs.EXPECT().QueryTabs(mock.Anything, entity.TabFilter{}).Return([]entity.Tab{{ID: 11, URL: "https://x.com"}}, nil)
	f.tabs.EXPECT().UpdateTab(mock.Anything, entity.TabID(11), entity.TabUpdate{Active: true}).Return(nil)

	f.handle(`{"type":"activate","group":"bookmarks","url":"https://x.com","title":"X"}`)

	activated := f.sender.ofType(TypeActivated)
	require.Len(t, activated, 1)
	assert.Equal(t, true, activated[0]["success"])
	assert.Equal(t, float64(11), activated[0]["focusedTab"])
	assert.Equal(t, "", f.agg.Query())
}

func TestHandler_ActivateUnknownGroup(t *testing.T) {
	f := newFixture(t)

	f.handle(`{"type":"activate","group":"downloads","url":"https://x.com"}`)

	activated := f.sender.ofType(TypeActivated)
	require.Len(t, activated, 1)
	assert.Equal(t, false, activated[0]["success"])
	assert.Contains(t, activated[0]["error"], "unknown group")
}

func TestHandler_SubmitFallback(t *testing.T) {
	f := newFixture(t)
	f.tabs.EXPECT().CreateTab(mock.Anything, entity.CreateTabInput{URL: "https://www.google.com/search?q=rust%20book"}).Return(nil)

	_, err := f.agg.Collect(f.ctx, "rust book")
	require.NoError(t, err)
	f.handle(`{"type":"submit"}`)

	submitted := f.sender.ofType(TypeSubmitted)
	require.Len(t, submitted, 1)
	assert.Equal(t, true, submitted[0]["fallback"])
	assert.Equal(t, "https://www.google.com/search?q=rust%20book", submitted[0]["url"])
	assert.Equal(t, "", f.agg.Query())
}

func TestHandler_ResetPingAndErrors(t *testing.T) {
	f := newFixture(t)

	f.agg.SetQuery(f.ctx, "something")
	f.handle(`{"type":"reset"}`)
	assert.Equal(t, "", f.agg.Query())

	f.handle(`{"type":"ping"}`)
	pong := f.sender.ofType(TypePong)
	require.Len(t, pong, 1)
	assert.Equal(t, "1.2.3", pong[0]["version"])

	f.handle(`{"type":"teleport"}`)
	f.handle(`{}`)
	f.handle(`not json`)
	assert.Len(t, f.sender.ofType(TypeError), 3)
}

func TestHandler_NotReady(t *testing.T) {
	sender := &memSender{}
	h := NewHandler(context.Background(), sender, "dev")

	h.HandleMessage(context.Background(), json.RawMessage(`{"type":"ping"}`))
	h.HandleMessage(context.Background(), json.RawMessage(`{"type":"query","text":"a"}`))
	h.HandleMessage(context.Background(), json.RawMessage(`{"action":"newTab"}`))

	frames := sender.all()
	require.Len(t, frames, 3)
	assert.Equal(t, TypePong, frames[0]["type"])
	assert.Equal(t, TypeError, frames[1]["type"])
	assert.Equal(t, true, frames[2]["success"])
}
