package nativemsg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/bnema/palette/internal/logging"
)

const (
	frameRequest  = "request"
	frameResponse = "response"
)

// ErrClosed is returned by calls pending or issued after the input closed.
var ErrClosed = errors.New("native messaging connection closed")

// RemoteError is an error reported by the extension for a request.
type RemoteError struct {
	Method  string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Method, e.Message)
}

// Handler receives inbound frames that are not call responses.
// Frames are delivered one at a time, in arrival order.
type Handler interface {
	HandleMessage(ctx context.Context, raw json.RawMessage)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, raw json.RawMessage)

// HandleMessage calls f.
func (f HandlerFunc) HandleMessage(ctx context.Context, raw json.RawMessage) {
	f(ctx, raw)
}

// envelope is the common frame shape for requests and responses.
type envelope struct {
	Type   string          `json:"type"`
	ID     string          `json:"id,omitempty"`
	Method string          `json:"method,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// Conn multiplexes calls to the extension and inbound messages over one
// frame stream.
type Conn struct {
	r       io.Reader
	w       io.Writer
	handler Handler

	wmu sync.Mutex

	mu      sync.Mutex
	pending map[string]chan envelope
	closed  bool
}

// NewConn creates a connection reading from r and writing to w.
// A nil handler drops inbound messages.
func NewConn(r io.Reader, w io.Writer, handler Handler) *Conn {
	return &Conn{
		r:       r,
		w:       w,
		handler: handler,
		pending: make(map[string]chan envelope),
	}
}

// Serve reads frames until the input closes or ctx is done.
// It returns nil on a clean end of input.
func (c *Conn) Serve(ctx context.Context) error {
	log := logging.FromContext(ctx)

	// The handler may block in Call, so the reader never waits on it.
	inbound := newFrameQueue()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			raw, ok := inbound.pop()
			if !ok {
				return
			}
			if c.handler != nil {
				c.handler.HandleMessage(ctx, raw)
			}
		}
	}()

	err := c.readLoop(ctx, inbound)
	c.failPending()
	inbound.close()
	<-done

	if errors.Is(err, io.EOF) {
		log.Debug().Msg("native messaging input closed")
		return nil
	}
	return err
}

func (c *Conn) readLoop(ctx context.Context, inbound *frameQueue) error {
	log := logging.FromContext(ctx)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw, err := ReadFrame(c.r)
		if err != nil {
			return err
		}

		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			log.Warn().Err(err).Int("bytes", len(raw)).Msg("dropping malformed frame")
			continue
		}

		if env.Type == frameResponse {
			c.resolve(ctx, env)
			continue
		}

		inbound.push(raw)
	}
}

// frameQueue is an unbounded FIFO of inbound frames.
type frameQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	frames []json.RawMessage
	closed bool
}

func newFrameQueue() *frameQueue {
	q := &frameQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *frameQueue) push(raw json.RawMessage) {
	q.mu.Lock()
	q.frames = append(q.frames, raw)
	q.mu.Unlock()
	q.cond.Signal()
}

// pop waits for the next frame. It reports false once the queue is closed and drained.
func (q *frameQueue) pop() (json.RawMessage, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.frames) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.frames) == 0 {
		return nil, false
	}
	raw := q.frames[0]
	q.frames[0] = nil
	q.frames = q.frames[1:]
	return raw, true
}

func (q *frameQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.cond.Broadcast()
}

func (c *Conn) resolve(ctx context.Context, env envelope) {
	c.mu.Lock()
	ch, ok := c.pending[env.ID]
	delete(c.pending, env.ID)
	c.mu.Unlock()

	if !ok {
		logging.FromContext(ctx).Debug().Str("id", env.ID).Msg("response for unknown request")
		return
	}
	ch <- env
}

func (c *Conn) failPending() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	for id, ch := range c.pending {
		close(ch)
		delete(c.pending, id)
	}
}

// Send writes v as one frame. It is safe for concurrent use.
func (c *Conn) Send(v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	c.wmu.Lock()
	defer c.wmu.Unlock()
	return WriteFrame(c.w, payload)
}

// Call sends a request to the extension and decodes the result into out.
// A nil out discards the result.
func (c *Conn) Call(ctx context.Context, method string, params, out any) error {
	req := envelope{Type: frameRequest, ID: uuid.NewString(), Method: method}
	if params != nil {
		raw, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("failed to encode %s params: %w", method, err)
		}
		req.Params = raw
	}

	ch := make(chan envelope, 1)
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.pending[req.ID] = ch
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.pending, req.ID)
		c.mu.Unlock()
	}()

	if err := c.Send(req); err != nil {
		return fmt.Errorf("failed to send %s: %w", method, err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case resp, ok := <-ch:
		if !ok {
			return ErrClosed
		}
		if resp.Error != "" {
			return &RemoteError{Method: method, Message: resp.Error}
		}
		if out != nil && len(resp.Result) > 0 {
			if err := json.Unmarshal(resp.Result, out); err != nil {
				return fmt.Errorf("failed to decode %s result: %w", method, err)
			}
		}
		return nil
	}
}
