package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tareas/internal/config"
	"tareas/internal/task"
)

func TestOpenRepository(t *testing.T) {
	for _, driver := range []string{config.StorageMemory, config.StorageSQLite} {
		t.Run(driver, func(t *testing.T) {
			repo, closer, err := openRepository(driver)
			require.NoError(t, err)
			defer closer.Close()

			store := task.NewStore(repo)
			id, err := store.Add("Casa", "Barrer")
			require.NoError(t, err)
			require.NoError(t, store.ToggleCompleted(id))

			tasks, err := store.List()
			require.NoError(t, err)
			assert.Equal(t, []task.Task{{ID: id, Name: "Casa: Barrer", Completed: true}}, tasks)
		})
	}
}

func TestOpenRepository_Unknown(t *testing.T) {
	_, _, err := openRepository("redis")
	assert.Error(t, err)
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "tab", "storage"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestRun_RejectsBadFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	err := run(options{configPath: path, tab: "ajustes"})
	assert.ErrorContains(t, err, "invalid options")
	assert.FileExists(t, path)

	err = run(options{configPath: path, storage: "postgres"})
	assert.ErrorContains(t, err, "invalid options")
}
