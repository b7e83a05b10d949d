package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medics-dev/MedICS-Extension-Base/pkg/ui"
)

func TestRegistryTypedGetters(t *testing.T) {
	r := NewRegistry(nil)

	assert.Nil(t, r.Logger())
	assert.Nil(t, r.Config())
	assert.Nil(t, r.Events())
	assert.Nil(t, r.UIManager())
	assert.Nil(t, r.MainWindow())

	cfg := NewMemoryConfig()
	mw := &ui.NopWidget{}
	r.SetConfig(cfg)
	r.SetMainWindow(mw)

	assert.Equal(t, ConfigManager(cfg), r.Config())
	assert.Equal(t, ui.Widget(mw), r.MainWindow())
}

func TestRegistryComponents(t *testing.T) {
	r := NewRegistry(nil)

	require.NoError(t, r.RegisterComponent("workspace_manager", "ws"))
	assert.Error(t, r.RegisterComponent("workspace_manager", "again"))

	c, ok := r.Component("workspace_manager")
	require.True(t, ok)
	assert.Equal(t, "ws", c)

	_, ok = r.Component("missing")
	assert.False(t, ok)
}

func TestRegistryWellKnownComponentNames(t *testing.T) {
	r := NewRegistry(nil)

	_, ok := r.Component(ComponentConfigManager)
	assert.False(t, ok, "unset capability does not resolve")

	cfg := NewMemoryConfig()
	r.SetConfig(cfg)
	c, ok := r.Component(ComponentConfigManager)
	require.True(t, ok)
	assert.Equal(t, any(cfg), c)

	// An explicit registration wins over the typed slot.
	other := NewMemoryConfig()
	require.NoError(t, r.RegisterComponent(ComponentConfigManager, other))
	c, _ = r.Component(ComponentConfigManager)
	assert.Equal(t, any(other), c)
}
