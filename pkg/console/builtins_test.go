package console

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/actdeck/pkg/actions"
	"github.com/arthur-debert/actdeck/pkg/errors"
)

func TestRegisterBuiltins(t *testing.T) {
	var out bytes.Buffer
	c, _ := newTestConsole(t, Options{AssumeYes: true, Sort: SortByRegistration})

	require.NoError(t, RegisterBuiltins(c, &out))
	assert.Equal(t, BuiltinNames(), names(c.Entries()))

	t.Run("registering twice fails", func(t *testing.T) {
		err := RegisterBuiltins(c, &out)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateName))
	})

	t.Run("destructive builtins require confirmation", func(t *testing.T) {
		for _, name := range []string{"free_os_memory", "clear_log"} {
			action, err := c.Lookup(name)
			require.NoError(t, err)
			assert.True(t, action.RequiresConfirmation(), name)
		}
		action, err := c.Lookup("gc")
		require.NoError(t, err)
		assert.False(t, action.RequiresConfirmation())
	})

	t.Run("builtins are described and distinct", func(t *testing.T) {
		gc, err := c.Lookup("gc")
		require.NoError(t, err)
		memStats, err := c.Lookup("mem_stats")
		require.NoError(t, err)

		assert.Equal(t, "gc (runtime.GC)", gc.String())
		assert.Equal(t, "mem_stats (runtime.ReadMemStats)", memStats.String())

		sameShape, err := actions.New(gc.ID(), gc.Name(), memStats.Handler(), gc.RequiresConfirmation())
		require.NoError(t, err)
		assert.False(t, gc.Equal(sameShape), "bound builtins have distinct handlers")
	})
}

func TestBuiltinsRun(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	tests := []struct {
		name       string
		wantOutput string
	}{
		{"gc", "Garbage collection complete"},
		{"free_os_memory", "Returned free memory"},
		{"goroutines", "Goroutines:"},
		{"mem_stats", "Heap alloc:"},
		{"clear_log", "Cleared"},
		{"version", "actdeck version dev"},
	}

	var out bytes.Buffer
	c, _ := newTestConsole(t, Options{AssumeYes: true})
	require.NoError(t, RegisterBuiltins(c, &out))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out.Reset()

			handled, err := c.Invoke(tt.name)
			require.NoError(t, err)
			assert.True(t, handled)
			assert.Contains(t, out.String(), tt.wantOutput)
		})
	}
}

func TestClearLogTruncates(t *testing.T) {
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)

	logPath := filepath.Join(stateHome, "actdeck", "actdeck.log")
	require.NoError(t, os.MkdirAll(filepath.Dir(logPath), 0755))
	require.NoError(t, os.WriteFile(logPath, []byte("noise\n"), 0644))

	var out bytes.Buffer
	c, _ := newTestConsole(t, Options{AssumeYes: true})
	require.NoError(t, RegisterBuiltins(c, &out))

	handled, err := c.Invoke("clear_log")
	require.NoError(t, err)
	assert.True(t, handled)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Empty(t, data)
}
