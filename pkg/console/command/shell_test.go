package command

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestShell(t *testing.T) {
	requireShell(t)

	t.Run("passes arguments as positional parameters", func(t *testing.T) {
		r := NewResolver(TableOf(map[string]Binding{"greet": Shell(`echo "hello $1"`)}))
		out, ok := r.Resolve("greet world")
		require.True(t, ok)
		require.Equal(t, OutputDeferred, out.Kind)

		text, err := out.Task(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "hello world", text)
	})

	t.Run("reports stderr on failure", func(t *testing.T) {
		r := NewResolver(TableOf(map[string]Binding{"fail": Shell(`echo "nope" >&2; exit 3`)}))
		out, _ := r.Resolve("fail")
		_, err := out.Task(context.Background())
		assert.EqualError(t, err, "nope")
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		r := NewResolver(TableOf(map[string]Binding{"wait": Shell(`sleep 5`)}))
		out, _ := r.Resolve("wait")

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		start := time.Now()
		_, err := out.Task(ctx)
		assert.Error(t, err)
		assert.Less(t, time.Since(start), 4*time.Second)
	})
}
