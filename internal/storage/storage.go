package storage

import (
	"database/sql"
	"errors"
	"net/url"
	"time"

	_ "modernc.org/sqlite"

	"tareas/internal/task"
)

// SQLite is a task.Repository on a private in-memory database. The single
// connection is what keeps the database alive; nothing is written to disk.
type SQLite struct {
	db *sql.DB
}

var _ task.Repository = (*SQLite)(nil)

func Open(name string) (*SQLite, error) {
	if name == "" {
		return nil, errors.New("database name is empty")
	}
	db, err := sql.Open("sqlite", memoryDSN(name))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &SQLite{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLite) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS tasks (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL CHECK (name <> ''),
	done INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);`
	_, err := s.db.Exec(ddl)
	return err
}

func (s *SQLite) Insert(t task.Task) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT INTO tasks (id, name, done, created_at) VALUES (?, ?, ?, ?);`,
		string(t.ID), t.Name, boolToInt(t.Completed), now)
	return err
}

func (s *SQLite) Toggle(id task.ID) (task.Task, error) {
	row := s.db.QueryRow(`UPDATE tasks SET done = 1 - done WHERE id = ? RETURNING id, name, done;`, string(id))
	return scanTask(row)
}

func (s *SQLite) Delete(id task.ID) (task.Task, error) {
	row := s.db.QueryRow(`DELETE FROM tasks WHERE id = ? RETURNING id, name, done;`, string(id))
	return scanTask(row)
}

func (s *SQLite) List() ([]task.Task, error) {
	rows, err := s.db.Query(`SELECT id, name, done FROM tasks ORDER BY seq;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(sc scanner) (task.Task, error) {
	var t task.Task
	var id string
	var doneInt int
	if err := sc.Scan(&id, &t.Name, &doneInt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return task.Task{}, task.ErrNotFound
		}
		return task.Task{}, err
	}
	t.ID = task.ID(id)
	t.Completed = doneInt == 1
	return t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// modernc.org/sqlite uses driver name "sqlite"; mode=memory keeps the
// database private to its connection.
func memoryDSN(name string) string {
	u := url.URL{
		Scheme: "file",
		Opaque: url.PathEscape(name),
	}
	q := url.Values{}
	q.Set("mode", "memory")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
