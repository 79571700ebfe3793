// Package messaging dispatches messages from the extension to the palette
// use cases and streams results back.
package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/palette/internal/application/usecase"
	"github.com/bnema/palette/internal/domain/entity"
	"github.com/bnema/palette/internal/logging"
)

// Inbound message types.
const (
	TypeFromApp  = "FROM_APP"
	TypeQuery    = "query"
	TypeActivate = "activate"
	TypeSubmit   = "submit"
	TypeReset    = "reset"
	TypePing     = "ping"
)

// Outbound message types.
const (
	TypeGroup     = "group"
	TypeActivated = "activated"
	TypeSubmitted = "submitted"
	TypePong      = "pong"
	TypeError     = "error"
)

var errMissingType = errors.New("message has neither type nor action")

// Sender writes one message to the extension.
type Sender interface {
	Send(v any) error
}

// Palette is the query state the handler drives.
type Palette interface {
	SetQuery(ctx context.Context, query string) uint64
	Reset(ctx context.Context) uint64
	Commands() *usecase.CommandTable
}

// Selector activates rows and runs the search fallback.
type Selector interface {
	Activate(ctx context.Context, input usecase.ActivateInput) (*usecase.ActivateOutput, error)
	Submit(ctx context.Context) (*usecase.SubmitOutput, error)
}

// Message is an inbound message from the extension.
type Message struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	// Query
	Text string `json:"text"`
	// Activation
	Group   string `json:"group"`
	URL     string `json:"url"`
	Title   string `json:"title"`
	Command string `json:"command"`
}

// ActionReply answers a legacy action message.
type ActionReply struct {
	Success bool `json:"success"`
}

// GroupFrame carries one landed group of an aggregation cycle.
type GroupFrame struct {
	Type     string               `json:"type"`
	Token    uint64               `json:"token"`
	Query    string               `json:"query"`
	Group    entity.GroupKey      `json:"group"`
	Heading  string               `json:"heading"`
	Items    []entity.ResultItem  `json:"items"`
	Commands []entity.CommandSpec `json:"commands,omitempty"`
}

// ActivatedFrame reports the outcome of an activation.
type ActivatedFrame struct {
	Type       string           `json:"type"`
	Success    bool             `json:"success"`
	Error      string           `json:"error,omitempty"`
	Command    entity.CommandID `json:"command,omitempty"`
	FocusedTab *entity.TabID    `json:"focusedTab,omitempty"`
	Created    bool             `json:"created,omitempty"`
}

// SubmittedFrame reports whether the search fallback fired.
type SubmittedFrame struct {
	Type     string `json:"type"`
	Fallback bool   `json:"fallback"`
	URL      string `json:"url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// PongFrame answers a ping.
type PongFrame struct {
	Type    string `json:"type"`
	Version string `json:"version"`
}

// ErrorFrame reports a message the handler could not process.
type ErrorFrame struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// Handler processes messages from the extension.
type Handler struct {
	log      *zerolog.Logger
	sender   Sender
	version  string
	palette  Palette
	selector Selector
}

// NewHandler creates a handler replying through sender. Group updates are
// logged with the logger carried by ctx.
func NewHandler(ctx context.Context, sender Sender, version string) *Handler {
	return &Handler{log: logging.FromContext(ctx), sender: sender, version: version}
}

// SetPalette injects the query state and selection use cases.
func (h *Handler) SetPalette(palette Palette, selector Selector) {
	h.palette = palette
	h.selector = selector
}

// OnGroup forwards a group update to the extension. It is meant to be the
// aggregator listener.
func (h *Handler) OnGroup(update entity.GroupUpdate) {
	frame := GroupFrame{
		Type:    TypeGroup,
		Token:   update.Token,
		Query:   update.Query,
		Group:   update.Group,
		Heading: update.Group.Heading(),
		Items:   update.Items,
	}
	if update.Group == entity.GroupCommands {
		frame.Commands = update.Commands
		frame.Items = make([]entity.ResultItem, 0, len(update.Commands))
		for _, c := range update.Commands {
			frame.Items = append(frame.Items, c.Item())
		}
	}
	if frame.Items == nil {
		frame.Items = []entity.ResultItem{}
	}
	if err := h.sender.Send(frame); err != nil {
		h.log.Warn().Err(err).Str("group", string(update.Group)).Msg("failed to send group")
	}
}

// HandleMessage processes one inbound message.
func (h *Handler) HandleMessage(ctx context.Context, raw json.RawMessage) {
	log := logging.FromContext(ctx)

	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		log.Warn().Err(err).Msg("failed to unmarshal message")
		h.reply(ctx, ErrorFrame{Type: TypeError, Error: fmt.Sprintf("invalid message: %v", err)})
		return
	}

	switch {
	case msg.Type == TypeFromApp, msg.Type == "" && msg.Action != "":
		h.handleAction(ctx, msg)
	case msg.Type == TypePing:
		h.reply(ctx, PongFrame{Type: TypePong, Version: h.version})
	case h.palette == nil || h.selector == nil:
		log.Warn().Str("type", msg.Type).Msg("palette not attached")
		h.reply(ctx, ErrorFrame{Type: TypeError, Error: "palette not ready"})
	case msg.Type == TypeQuery:
		h.handleQuery(ctx, msg)
	case msg.Type == TypeActivate:
		h.handleActivate(ctx, msg)
	case msg.Type == TypeSubmit:
		h.handleSubmit(ctx)
	case msg.Type == TypeReset:
		h.palette.Reset(ctx)
	case msg.Type == "":
		h.reply(ctx, ErrorFrame{Type: TypeError, Error: errMissingType.Error()})
	default:
		log.Debug().Str("type", msg.Type).Msg("unknown message type")
		h.reply(ctx, ErrorFrame{Type: TypeError, Error: fmt.Sprintf("unknown message type %q", msg.Type)})
	}
}

// handleAction runs a legacy action. The reply is always a success, whatever
// the action did.
func (h *Handler) handleAction(ctx context.Context, msg Message) {
	log := logging.FromContext(ctx)
	defer h.reply(ctx, ActionReply{Success: true})

	if h.palette == nil {
		return
	}
	cmd, ok := h.palette.Commands().ByAction(msg.Action)
	if !ok {
		log.Warn().Str("action", msg.Action).Msg("unknown action")
		return
	}
	if err := cmd.Invoke(ctx); err != nil {
		log.Error().Err(err).Str("action", msg.Action).Msg("action failed")
	}
}

func (h *Handler) handleQuery(ctx context.Context, msg Message) {
	token := h.palette.SetQuery(ctx, msg.Text)
	logging.FromContext(ctx).Trace().Uint64("token", token).Int("len", len(msg.Text)).Msg("query updated")
}

func (h *Handler) handleActivate(ctx context.Context, msg Message) {
	log := logging.FromContext(ctx)

	group, ok := entity.ParseGroupKey(msg.Group)
	if !ok && msg.Command == "" {
		h.reply(ctx, ActivatedFrame{Type: TypeActivated, Error: fmt.Sprintf("unknown group %q", msg.Group)})
		return
	}

	out, err := h.selector.Activate(ctx, usecase.ActivateInput{Item: entity.ResultItem{
		Title:   msg.Title,
		URL:     msg.URL,
		Group:   group,
		Command: entity.CommandID(msg.Command),
	}})
	if err != nil {
		log.Error().Err(err).Str("group", msg.Group).Msg("activation failed")
		h.reply(ctx, ActivatedFrame{Type: TypeActivated, Error: err.Error()})
		return
	}

	h.reply(ctx, ActivatedFrame{
		Type:       TypeActivated,
		Success:    true,
		Command:    out.Command,
		FocusedTab: out.FocusedTab,
		Created:    out.Created,
	})
}

func (h *Handler) handleSubmit(ctx context.Context) {
	out, err := h.selector.Submit(ctx)
	frame := SubmittedFrame{Type: TypeSubmitted}
	if out != nil {
		frame.Fallback = out.Fallback
		frame.URL = out.URL
	}
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("search fallback failed")
		frame.Error = err.Error()
	}
	h.reply(ctx, frame)
}

func (h *Handler) reply(ctx context.Context, v any) {
	if err := h.sender.Send(v); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to send reply")
	}
}
