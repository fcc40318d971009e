package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tareas/internal/config"
	"tareas/internal/logging"
	"tareas/internal/storage"
	"tareas/internal/task"
	"tareas/internal/ui"
)

type options struct {
	configPath string
	tab        string
	storage    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "tareas",
		Short: "Terminal playground, beatbox quiz and categorized to-do list",
		Long: `tareas opens three screens: Fondo (background and image toggles),
Examen (a multiple-choice quiz) and Tareas (a to-do list grouped by category).

Tasks live only for the running session. Categories, seed tasks, quiz
questions and key bindings come from the config file, created with defaults
on first launch.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default $TAREAS_CONFIG or the user config dir)")
	cmd.Flags().StringVarP(&opts.tab, "tab", "t", "", "tab to open first: fondo, examen or tareas")
	cmd.Flags().StringVar(&opts.storage, "storage", "", "task backend: sqlite or memory")
	return cmd
}

func run(opts options) error {
	configPath := opts.configPath
	if configPath == "" {
		configPath = config.ResolveConfigPath()
	}
	firstLaunch := false
	if _, err := os.Stat(configPath); err != nil {
		firstLaunch = errors.Is(err, os.ErrNotExist)
	}
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.tab != "" {
		cfg.StartTab = strings.ToLower(opts.tab)
	}
	if opts.storage != "" {
		cfg.Storage = strings.ToLower(opts.storage)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	logger, logCloser, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer logCloser.Close()
	if firstLaunch {
		logger.Info("wrote default config", "path", configPath)
	}

	repo, closeRepo, err := openRepository(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open task storage: %w", err)
	}
	defer closeRepo.Close()

	store := task.NewStore(repo)
	store.Subscribe(func(c task.Change) {
		logger.Debug("task change", "kind", c.Kind, "id", c.Task.ID, "name", c.Task.Name, "completed", c.Task.Completed, "version", c.Version)
	})
	if err := store.Seed(cfg.Seeds()); err != nil {
		return fmt.Errorf("failed to seed tasks: %w", err)
	}
	logger.Info("starting", "storage", cfg.Storage, "categories", cfg.Categories, "tab", cfg.StartTab)

	if err := ui.Run(store, cfg, logger); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func openRepository(driver string) (task.Repository, io.Closer, error) {
	switch driver {
	case config.StorageMemory:
		return task.NewMemoryRepository(), closerFunc(func() error { return nil }), nil
	case config.StorageSQLite:
		db, err := storage.Open("tareas")
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage %q", driver)
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
