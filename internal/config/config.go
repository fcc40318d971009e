package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"tareas/internal/quiz"
	"tareas/internal/task"
)

const (
	DefaultConfigFileName = "config.toml"
	EnvConfigPath         = "TAREAS_CONFIG"

	StorageSQLite = "sqlite"
	StorageMemory = "memory"

	TabFondo  = "fondo"
	TabExamen = "examen"
	TabTareas = "tareas"
)

// Tabs lists the screens in display order.
var Tabs = []string{TabFondo, TabExamen, TabTareas}

type Keymap struct {
	Quit      string `toml:"quit"`
	NextTab   string `toml:"next_tab"`
	PrevTab   string `toml:"prev_tab"`
	Up        string `toml:"up"`
	Down      string `toml:"down"`
	Left      string `toml:"left"`
	Right     string `toml:"right"`
	FocusNext string `toml:"focus_next"`
	FocusPrev string `toml:"focus_prev"`
	Toggle    string `toml:"toggle"`
	Delete    string `toml:"delete"`
	Confirm   string `toml:"confirm"`
	Cancel    string `toml:"cancel"`
	Retry     string `toml:"retry"`
}

type Seed struct {
	Name string `toml:"name"`
	Done bool   `toml:"done"`
}

type Question struct {
	Prompt  string   `toml:"prompt"`
	Options []string `toml:"options"`
	Answer  string   `toml:"answer"`
}

type Quiz struct {
	PassScore int        `toml:"pass_score"`
	Questions []Question `toml:"questions"`
}

type Config struct {
	Categories []string `toml:"categories"`
	Tasks      []Seed   `toml:"tasks"`
	Storage    string   `toml:"storage"`
	StartTab   string   `toml:"start_tab"`
	LogFile    string   `toml:"log_file"`
	LogLevel   string   `toml:"log_level"`
	Keys       Keymap   `toml:"keys"`
	Quiz       Quiz     `toml:"quiz"`
}

// ResolveConfigPath prefers $TAREAS_CONFIG, then the user config dir, then
// the working directory.
func ResolveConfigPath() string {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, "tareas", DefaultConfigFileName)
}

// LoadOrCreate reads path, writing the defaults there first if it does not
// exist yet. Settings missing from the file keep their defaults; an explicit
// empty list such as tasks = [] is kept empty.
func LoadOrCreate(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Decode into a zero value: array tables append to non-empty slices.
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.Categories == nil {
		c.Categories = def.Categories
	}
	if c.Tasks == nil {
		c.Tasks = def.Tasks
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Storage == "" {
		c.Storage = def.Storage
	}
	if c.StartTab == "" {
		c.StartTab = def.StartTab
	}
	c.Storage = strings.ToLower(c.Storage)
	c.StartTab = strings.ToLower(c.StartTab)
	if len(c.Quiz.Questions) == 0 {
		c.Quiz.Questions = def.Quiz.Questions
	}
	fillKey(&c.Keys.Quit, def.Keys.Quit)
	fillKey(&c.Keys.NextTab, def.Keys.NextTab)
	fillKey(&c.Keys.PrevTab, def.Keys.PrevTab)
	fillKey(&c.Keys.Up, def.Keys.Up)
	fillKey(&c.Keys.Down, def.Keys.Down)
	fillKey(&c.Keys.Left, def.Keys.Left)
	fillKey(&c.Keys.Right, def.Keys.Right)
	fillKey(&c.Keys.FocusNext, def.Keys.FocusNext)
	fillKey(&c.Keys.FocusPrev, def.Keys.FocusPrev)
	fillKey(&c.Keys.Toggle, def.Keys.Toggle)
	fillKey(&c.Keys.Delete, def.Keys.Delete)
	fillKey(&c.Keys.Confirm, def.Keys.Confirm)
	fillKey(&c.Keys.Cancel, def.Keys.Cancel)
	fillKey(&c.Keys.Retry, def.Keys.Retry)
}

func fillKey(k *string, def string) {
	if *k == "" {
		*k = def
	}
}

// Validate rejects settings the app cannot start with. Categories are
// taken as given.
func (c Config) Validate() error {
	switch c.Storage {
	case StorageSQLite, StorageMemory:
	default:
		return fmt.Errorf("unknown storage %q (want %s or %s)", c.Storage, StorageSQLite, StorageMemory)
	}
	if !slices.Contains(Tabs, c.StartTab) {
		return fmt.Errorf("unknown start_tab %q (want one of %s)", c.StartTab, strings.Join(Tabs, ", "))
	}
	for _, q := range c.QuizQuestions() {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("quiz: %w", err)
		}
	}
	return nil
}

// Seeds converts the configured initial tasks for task.Store.Seed.
func (c Config) Seeds() []task.Seed {
	seeds := make([]task.Seed, 0, len(c.Tasks))
	for _, s := range c.Tasks {
		seeds = append(seeds, task.Seed{Name: s.Name, Completed: s.Done})
	}
	return seeds
}

func (c Config) QuizQuestions() []quiz.Question {
	qs := make([]quiz.Question, 0, len(c.Quiz.Questions))
	for _, q := range c.Quiz.Questions {
		qs = append(qs, quiz.Question{Prompt: q.Prompt, Options: q.Options, Answer: q.Answer})
	}
	return qs
}

func Default() Config {
	var questions []Question
	for _, q := range quiz.DefaultQuestions() {
		questions = append(questions, Question{Prompt: q.Prompt, Options: q.Options, Answer: q.Answer})
	}
	return Config{
		Categories: []string{"Casa", "Escuela"},
		Tasks: []Seed{
			{Name: "Casa: Lavar trastes"},
			{Name: "Casa: Barrer"},
			{Name: "Escuela: Hacer tarea"},
			{Name: "Escuela: Estudiar"},
		},
		Storage:  StorageSQLite,
		StartTab: TabTareas,
		LogLevel: "info",
		Keys: Keymap{
			Quit:      "q",
			NextTab:   "ctrl+n",
			PrevTab:   "ctrl+p",
			Up:        "k",
			Down:      "j",
			Left:      "h",
			Right:     "l",
			FocusNext: "tab",
			FocusPrev: "shift+tab",
			Toggle:    " ",
			Delete:    "d",
			Confirm:   "enter",
			Cancel:    "esc",
			Retry:     "r",
		},
		Quiz: Quiz{
			Questions: questions,
		},
	}
}
