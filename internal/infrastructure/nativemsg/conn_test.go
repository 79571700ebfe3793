package nativemsg

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExtension plays the extension side of a Conn over two pipes.
type fakeExtension struct {
	toHost   *io.PipeWriter
	fromHost *io.PipeReader
}

func newPipeConn(t *testing.T, handler Handler) (*Conn, *fakeExtension, <-chan error) {
	t.Helper()
	hostIn, extOut := io.Pipe()
	extIn, hostOut := io.Pipe()

	conn := NewConn(hostIn, hostOut, handler)
	ext := &fakeExtension{toHost: extOut, fromHost: extIn}

	served := make(chan error, 1)
	go func() { served <- conn.Serve(context.Background()) }()

	t.Cleanup(func() {
		_ = extOut.Close()
		_ = extIn.Close()
	})
	return conn, ext, served
}

func (e *fakeExtension) readRequest(t *testing.T) envelope {
	t.Helper()
	raw, err := ReadFrame(e.fromHost)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return env
}

func (e *fakeExtension) send(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, WriteJSON(e.toHost, v))
}

func TestConn_CallRoundTrip(t *testing.T) {
	conn, ext, _ := newPipeConn(t, nil)

	go func() {
		req := ext.readRequest(t)
		assert.Equal(t, frameRequest, req.Type)
		assert.Equal(t, MethodTabsQuery, req.Method)
		assert.NotEmpty(t, req.ID)
		assert.JSONEq(t, `{"windowId":3}`, string(req.Params))
		ext.send(t, envelope{Type: frameResponse, ID: req.ID, Result: json.RawMessage(`[{"id":1,"windowId":3,"url":"https://a.example","active":true}]`)})
	}()

	var tabs []map[string]any
	err := conn.Call(context.Background(), MethodTabsQuery, map[string]int{"windowId": 3}, &tabs)
	require.NoError(t, err)
	require.Len(t, tabs, 1)
	assert.Equal(t, "https://a.example", tabs[0]["url"])
}

func TestConn_CallRemoteError(t *testing.T) {
	conn, ext, _ := newPipeConn(t, nil)

	go func() {
		req := ext.readRequest(t)
		ext.send(t, envelope{Type: frameResponse, ID: req.ID, Error: "No tab with id: 9"})
	}()

	err := conn.Call(context.Background(), MethodTabsUpdate, nil, nil)
	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, MethodTabsUpdate, remote.Method)
	assert.Equal(t, "No tab with id: 9", remote.Message)
}

func TestConn_PendingCallFailsOnClose(t *testing.T) {
	conn, ext, served := newPipeConn(t, nil)

	go func() {
		_ = ext.readRequest(t)
		_ = ext.toHost.Close()
	}()

	err := conn.Call(context.Background(), MethodHistorySearch, nil, nil)
	assert.ErrorIs(t, err, ErrClosed)
	assert.NoError(t, <-served)

	assert.ErrorIs(t, conn.Call(context.Background(), MethodTabsQuery, nil, nil), ErrClosed)
}

func TestConn_CallHonoursContext(t *testing.T) {
	conn, ext, _ := newPipeConn(t, nil)
	go func() { _ = ext.readRequest(t) }()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := conn.Call(ctx, MethodTabsQuery, nil, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestConn_InboundInOrder(t *testing.T) {
	var mu sync.Mutex
	var got []string
	done := make(chan struct{})

	handler := HandlerFunc(func(_ context.Context, raw json.RawMessage) {
		var msg struct {
			Type string `json:"type"`
		}
		_ = json.Unmarshal(raw, &msg)
		mu.Lock()
		got = append(got, msg.Type)
		if len(got) == 3 {
			close(done)
		}
		mu.Unlock()
	})

	_, ext, _ := newPipeConn(t, handler)
	ext.send(t, map[string]string{"type": "query"})
	require.NoError(t, WriteFrame(ext.toHost, []byte("not json")))
	ext.send(t, map[string]string{"type": "response", "id": "unknown"})
	ext.send(t, map[string]string{"type": "submit"})
	ext.send(t, map[string]string{"type": "reset"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler did not receive messages")
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"query", "submit", "reset"}, got)
}

func TestConn_SendConcurrent(t *testing.T) {
	conn, ext, _ := newPipeConn(t, nil)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, conn.Send(map[string]int{"n": i}))
		}(i)
	}

	seen := make(map[int]bool)
	for i := 0; i < n; i++ {
		raw, err := ReadFrame(ext.fromHost)
		require.NoError(t, err)
		var msg map[string]int
		require.NoError(t, json.Unmarshal(raw, &msg))
		seen[msg["n"]] = true
	}
	wg.Wait()
	assert.Len(t, seen, n)
}

func TestConn_HandlerCallDoesNotStallReader(t *testing.T) {
	const backlog = 200

	var conn *Conn
	var mu sync.Mutex
	handled := 0
	callErr := make(chan error, 1)
	done := make(chan struct{})

	handler := HandlerFunc(func(ctx context.Context, raw json.RawMessage) {
		mu.Lock()
		handled++
		first, last := handled == 1, handled == backlog+1
		mu.Unlock()

		if first {
			callErr <- conn.Call(ctx, MethodTabsQuery, nil, nil)
		}
		if last {
			close(done)
		}
	})

	conn, ext, _ := newPipeConn(t, handler)

	go func() {
		req := ext.readRequest(t)
		for i := 0; i < backlog; i++ {
			ext.send(t, map[string]string{"type": "query"})
		}
		ext.send(t, envelope{Type: frameResponse, ID: req.ID, Result: json.RawMessage(`[]`)})
	}()
	ext.send(t, map[string]string{"type": "activate"})

	select {
	case err := <-callErr:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("call blocked behind inbound backlog")
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("backlog was not delivered")
	}
}
