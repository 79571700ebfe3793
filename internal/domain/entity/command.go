package entity

import "context"

// CommandID identifies a fixed palette command.
type CommandID string

// CommandSpec is a static palette command.
type CommandSpec struct {
	ID           CommandID                       `json:"id"`
	Action       string                          `json:"action"` // legacy bridge action, e.g. "newTab"
	Name         string                          `json:"name"`
	Icon         string                          `json:"icon,omitempty"`
	ShortcutHint string                          `json:"shortcutHint,omitempty"`
	Invoke       func(ctx context.Context) error `json:"-"`
}

// Item renders the command as a palette row.
func (c CommandSpec) Item() ResultItem {
	return ResultItem{Title: c.Name, IconURL: c.Icon, Group: GroupCommands, Command: c.ID}
}
