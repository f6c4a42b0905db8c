package platform

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireSingleInstance_SecondAcquireFails(t *testing.T) {
	name := "zenpomodoro-test-" + strings.ReplaceAll(t.Name(), "/", "-")
	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	defer func() { _ = guard.Release() }()

	_, err = AcquireSingleInstance(name)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())
	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	assert.Equal(t, guard.Address(), again.Address())
	require.NoError(t, again.Release())
}

func TestInstanceGuard_NilSafe(t *testing.T) {
	var guard *InstanceGuard

	assert.NoError(t, guard.Release())
	assert.Empty(t, guard.Address())
}

func TestPortFromName_InRange(t *testing.T) {
	for _, name := range []string{"", "ZenPomodoro", "EagleEye", "a much longer application name"} {
		port := portFromName(name)
		assert.GreaterOrEqual(t, port, 20000)
		assert.LessOrEqual(t, port, 39999)
		assert.Equal(t, port, portFromName(name))
	}
}

func TestAppConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	service := NewService()

	configDir, err := service.GetConfigDir()
	require.NoError(t, err)
	appDir, err := service.AppConfigDir("ZenPomodoro")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(configDir, "ZenPomodoro"), appDir)

	_, err = service.AppConfigDir("")
	assert.Error(t, err)
}
