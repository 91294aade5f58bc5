package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magicbook/internal/eventbus"
)

type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() { return func() {} }

func (b *recordingBus) Close() {}

func (b *recordingBus) recorded() []eventbus.DomainEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]eventbus.DomainEvent(nil), b.events...)
}

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	bus := &recordingBus{}
	svc := NewConfigServiceWithBus(path, bus)

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "compact_width = 80")
	assert.Regexp(t, `submit_delay = ['"]2s['"]`, string(data))

	assert.Equal(t, []eventbus.DomainEvent{
		eventbus.ConfigSavedEvent{Path: path},
		eventbus.ConfigLoadedEvent{Path: path, Created: true},
	}, bus.recorded())
}

func TestLoadExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
version = 1

[ui]
reduced_motion = true
compact_width = 100

[content]
path = "/tmp/portfolio.yaml"
watch = true

[contact]
submit_delay = "500ms"
`), 0644))

	bus := &recordingBus{}
	cfg, err := NewConfigServiceWithBus(path, bus).Load()
	require.NoError(t, err)

	assert.True(t, cfg.UI.ReducedMotion)
	assert.Equal(t, 100, cfg.UI.CompactWidth)
	assert.True(t, cfg.UI.Welcome, "unset keys keep their defaults")
	assert.Equal(t, "/tmp/portfolio.yaml", cfg.Content.Path)
	assert.True(t, cfg.Content.Watch)
	assert.Equal(t, 500*time.Millisecond, cfg.Contact.SubmitDelay)
	assert.Equal(t, 5*time.Second, cfg.Contact.StatusTTL)

	assert.Equal(t, []eventbus.DomainEvent{
		eventbus.ConfigLoadedEvent{Path: path, Created: false},
	}, bus.recorded())
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ncompact_width = 100\n"), 0644))

	t.Setenv("MAGICBOOK_UI_COMPACT_WIDTH", "120")
	t.Setenv("MAGICBOOK_UI_REDUCED_MOTION", "true")
	t.Setenv("MAGICBOOK_CONTACT_STATUS_TTL", "1s")

	cfg, err := NewConfigService(path).LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.UI.CompactWidth)
	assert.True(t, cfg.UI.ReducedMotion)
	assert.Equal(t, time.Second, cfg.Contact.StatusTTL)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("MAGICBOOK_UI_WELCOME", "false")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.UI.Welcome)
	assert.Equal(t, 80, cfg.UI.CompactWidth)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	svc := NewConfigService("")

	_, err := svc.LoadFromPath(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("[ui\ncompact_width = "), 0644))
	_, err = svc.LoadFromPath(broken)
	assert.Error(t, err)

	negative := filepath.Join(dir, "negative.toml")
	require.NoError(t, os.WriteFile(negative, []byte("[ui]\ncompact_width = -1\n"), 0644))
	_, err = svc.LoadFromPath(negative)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.UI.ReducedMotion = true
	cfg.Content.Path = "portfolio.yaml"
	cfg.Contact.StatusTTL = 90 * time.Second
	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "config.toml", filepath.Base(DefaultPath()))
	assert.Equal(t, DefaultPath(), NewConfigService("").Path())
}
