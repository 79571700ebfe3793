package usecase

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/palette/internal/domain/dedupe"
	"github.com/bnema/palette/internal/domain/entity"
	"github.com/bnema/palette/internal/domain/favicon"
	"github.com/bnema/palette/internal/logging"
)

// ErrSuperseded is returned by Collect when a newer query replaced its cycle.
var ErrSuperseded = errors.New("aggregation cycle superseded by a newer query")

// GroupListener receives every group that lands for the current cycle.
// Calls are serialized and an update is only delivered while its token is
// current, so the listener never sees an older token after a newer one.
// The listener must not start a cycle itself.
type GroupListener func(entity.GroupUpdate)

// AggregatorOption configures a PaletteAggregator.
type AggregatorOption func(*PaletteAggregator)

// WithListener registers the group update listener.
func WithListener(fn GroupListener) AggregatorOption {
	return func(a *PaletteAggregator) {
		a.listener = fn
	}
}

// WithIconResolver overrides the favicon resolver used during normalization.
func WithIconResolver(r dedupe.IconResolver) AggregatorOption {
	return func(a *PaletteAggregator) {
		a.resolver = r
	}
}

// PaletteAggregator owns the query state and runs one aggregation cycle per
// query change. Every cycle carries a token; results of an older token never
// reach the visible result.
type PaletteAggregator struct {
	providers []Provider
	commands  *CommandTable
	resolver  dedupe.IconResolver
	listener  GroupListener

	// emitMu orders listener calls. It is never taken while holding mu.
	emitMu sync.Mutex

	mu     sync.Mutex
	token  uint64
	result entity.AggregateResult
	cancel context.CancelFunc
}

// NewPaletteAggregator creates an aggregator in the idle state with an empty query.
func NewPaletteAggregator(providers []Provider, commands *CommandTable, opts ...AggregatorOption) *PaletteAggregator {
	a := &PaletteAggregator{
		providers: providers,
		commands:  commands,
		resolver:  favicon.NewResolver("", ""),
		result:    entity.NewAggregateResult("", 0),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetQuery starts a new cycle for query and returns its token.
// Commands are filtered synchronously; providers resolve in the background.
func (a *PaletteAggregator) SetQuery(ctx context.Context, query string) uint64 {
	cycleCtx, token, update := a.begin(ctx, query)
	a.emit(cycleCtx, update)

	for _, p := range a.providers {
		go func(p Provider) {
			items := a.fetch(cycleCtx, p, query)
			a.apply(cycleCtx, token, p.Group(), items)
		}(p)
	}
	return token
}

// Reset clears the query, starting a fresh cycle.
func (a *PaletteAggregator) Reset(ctx context.Context) uint64 {
	return a.SetQuery(ctx, "")
}

// Collect runs one cycle for query and waits for every provider.
// It returns ErrSuperseded when another query replaced the cycle meanwhile.
func (a *PaletteAggregator) Collect(ctx context.Context, query string) (entity.AggregateResult, error) {
	cycleCtx, token, update := a.begin(ctx, query)
	a.emit(cycleCtx, update)

	g, gctx := errgroup.WithContext(cycleCtx)
	for _, p := range a.providers {
		g.Go(func() error {
			items := a.fetch(gctx, p, query)
			if !a.apply(gctx, token, p.Group(), items) {
				return ErrSuperseded
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return entity.AggregateResult{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.token != token {
		return entity.AggregateResult{}, ErrSuperseded
	}
	return a.result.Clone(), nil
}

// Snapshot returns a deep copy of the visible result.
func (a *PaletteAggregator) Snapshot() entity.AggregateResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result.Clone()
}

// Query returns the current query text.
func (a *PaletteAggregator) Query() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result.Query
}

// Token returns the token of the current cycle.
func (a *PaletteAggregator) Token() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token
}

// Close cancels the running cycle.
func (a *PaletteAggregator) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}

// Commands returns the command table the aggregator filters.
func (a *PaletteAggregator) Commands() *CommandTable {
	return a.commands
}

func (a *PaletteAggregator) begin(ctx context.Context, query string) (context.Context, uint64, entity.GroupUpdate) {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Cancellation is advisory, stale results are dropped by the token check.
	if a.cancel != nil {
		a.cancel()
	}
	a.token++
	token := a.token

	cycleCtx, cancel := context.WithCancel(logging.WithQueryToken(ctx, token))
	a.cancel = cancel

	var cmds []entity.CommandSpec
	if a.commands != nil {
		cmds = a.commands.Filter(query)
	}
	a.result = entity.NewAggregateResult(query, token)
	a.result.SetCommands(cmds)

	logging.FromContext(cycleCtx).Trace().
		Str("query", query).
		Int("commands", len(cmds)).
		Msg("aggregation cycle started")

	return cycleCtx, token, entity.GroupUpdate{
		Token:    token,
		Query:    query,
		Group:    entity.GroupCommands,
		Commands: cmds,
	}
}

func (a *PaletteAggregator) fetch(ctx context.Context, p Provider, query string) []entity.ResultItem {
	raw, err := p.Fetch(ctx, query)
	if err != nil {
		logging.FromContext(ctx).Debug().
			Err(err).
			Str("group", string(p.Group())).
			Msg("provider failed, group resolves empty")
		raw = nil
	}
	return dedupe.Apply(raw, p.Group(), a.resolver)
}

// apply stores a provider result if token is still current and reports whether it did.
func (a *PaletteAggregator) apply(ctx context.Context, token uint64, group entity.GroupKey, items []entity.ResultItem) bool {
	a.mu.Lock()
	if token != a.token {
		current := a.token
		a.mu.Unlock()
		logging.FromContext(ctx).Trace().
			Str("group", string(group)).
			Uint64("current", current).
			Msg("discarding stale provider response")
		return false
	}
	a.result.SetGroup(group, items)
	update := entity.GroupUpdate{
		Token: token,
		Query: a.result.Query,
		Group: group,
		Items: append([]entity.ResultItem(nil), items...),
	}
	a.mu.Unlock()

	a.emit(ctx, update)
	return true
}

// emit hands update to the listener unless a newer cycle began since it was built.
func (a *PaletteAggregator) emit(ctx context.Context, update entity.GroupUpdate) {
	if a.listener == nil {
		return
	}

	a.emitMu.Lock()
	defer a.emitMu.Unlock()
	if current := a.Token(); current != update.Token {
		logging.FromContext(ctx).Trace().
			Str("group", string(update.Group)).
			Uint64("current", current).
			Msg("discarding stale group update")
		return
	}
	a.listener(update)
}
