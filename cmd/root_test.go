package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unitime/unitime/internal/board"
	"github.com/unitime/unitime/internal/cli"
	"github.com/unitime/unitime/internal/models"
	clitest "github.com/unitime/unitime/internal/testutil/cli"
)

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"board", "column", "task", "reset"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
	assert.NotNil(t, root.PersistentFlags().Lookup(cli.FlagBackend))
	assert.NotNil(t, root.PersistentFlags().Lookup(cli.FlagDataDir))
}

func TestReset_Force(t *testing.T) {
	env := clitest.SetupCLITest(t)
	env.WithBoard(t, func(store *board.Store) {
		col := store.Columns()[0]
		_, err := store.CreateTask(col.ID)
		require.NoError(t, err)
	})

	res := env.Execute(t, resetCmd(), "reset", "--force", "--json")
	require.NoError(t, res.Err)

	out := clitest.DecodeJSON[resetResult](t, res.Stdout)
	assert.True(t, out.Success)
	assert.Equal(t, 3, out.Data.DeletedColumns)
	assert.Equal(t, 1, out.Data.DeletedTasks)

	for _, key := range []string{models.ColumnsKey, models.TasksKey} {
		_, err := os.Stat(filepath.Join(env.DataDir, key+".json"))
		assert.True(t, os.IsNotExist(err), "%s should be removed", key)
	}
}

func TestReset_DeclinedKeepsBoard(t *testing.T) {
	env := clitest.SetupCLITest(t)
	env.Stdin = "n\n"

	res := env.Execute(t, resetCmd(), "reset")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Cancelled")

	env.WithBoard(t, func(store *board.Store) {
		assert.Len(t, store.Columns(), 3)
	})
}

func TestReset_Confirmed(t *testing.T) {
	env := clitest.SetupCLITest(t)
	env.Stdin = "yes\n"

	res := env.Execute(t, resetCmd(), "reset")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Board cleared: 3 column(s) and 0 task(s) deleted")
}
