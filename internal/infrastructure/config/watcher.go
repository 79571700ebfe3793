package config

import (
	"context"
	"reflect"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/palette/internal/logging"
)

// Watch reloads the config file whenever it changes and hands each callback
// a copy of the new configuration. An edit that fails to decode or validate
// is logged through ctx's logger and the previous configuration stays active.
// Edits that leave the effective configuration unchanged notify nobody.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) { m.handleChange(ctx, e) })
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

func (m *Manager) handleChange(ctx context.Context, e fsnotify.Event) {
	log := logging.FromContext(ctx)
	log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")

	changed, err := m.reload()
	if err != nil {
		log.Warn().Err(err).Msg("config reload rejected, keeping previous values")
		return
	}
	if !changed {
		return
	}
	log.Info().Str("file", e.Name).Msg("config reloaded")
	m.notify()
}

// OnConfigChange registers a callback run after every effective reload.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload rereads the file and reports whether the decoded config differs.
func (m *Manager) reload() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	previous := m.config
	if err := m.viper.ReadInConfig(); err != nil {
		return false, err
	}
	if err := m.decode(); err != nil {
		return false, err
	}
	return !reflect.DeepEqual(previous, m.config), nil
}

// notify runs the callbacks outside the lock, each with its own copy.
func (m *Manager) notify() {
	m.mu.RLock()
	callbacks := append(([]func(*Config))(nil), m.callbacks...)
	m.mu.RUnlock()

	for _, callback := range callbacks {
		callback(m.Get())
	}
}
