package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls []string
}

func (r *recorder) task(name string, err error) *Task {
	return &Task{
		Short: name,
		Run: func(ctx context.Context) error {
			r.calls = append(r.calls, name)
			return err
		},
	}
}

func TestRootCmd(t *testing.T) {
	t.Run("Should run the default task without arguments", func(t *testing.T) {
		r := &recorder{}
		cmd := NewRootCmd(TaskList{
			"default":     r.task("default", nil),
			"compileSass": r.task("compileSass", nil),
		})
		cmd.SetArgs([]string{})

		require.NoError(t, cmd.ExecuteContext(context.Background()))
		assert.Equal(t, []string{"default"}, r.calls)
	})

	t.Run("Should run the named task", func(t *testing.T) {
		r := &recorder{}
		cmd := NewRootCmd(TaskList{
			"default":     r.task("default", nil),
			"compileSass": r.task("compileSass", nil),
		})
		cmd.SetArgs([]string{"compileSass"})

		require.NoError(t, cmd.ExecuteContext(context.Background()))
		assert.Equal(t, []string{"compileSass"}, r.calls)
	})

	t.Run("Should fail on an unknown task", func(t *testing.T) {
		r := &recorder{}
		cmd := NewRootCmd(TaskList{"default": r.task("default", nil)})
		cmd.SetArgs([]string{"deploy"})

		err := cmd.ExecuteContext(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "task deploy not found")
		assert.Empty(t, r.calls)
	})

	t.Run("Should fail when there is no default task", func(t *testing.T) {
		cmd := NewRootCmd(TaskList{})
		cmd.SetArgs([]string{})

		err := cmd.ExecuteContext(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "task default not found")
	})

	t.Run("Should surface the task error", func(t *testing.T) {
		r := &recorder{}
		cmd := NewRootCmd(TaskList{"default": r.task("default", errors.New("boom"))})
		cmd.SetArgs([]string{})

		err := cmd.ExecuteContext(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "task default failed")
		assert.Contains(t, err.Error(), "boom")
	})
}
