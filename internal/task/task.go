// Package task holds the to-do entity and the store that owns the ordered
// task collection shared by every widget on the Tareas screen.
package task

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyInput = errors.New("task description is empty")
	ErrNotFound   = errors.New("task not found")
)

// ID identifies a task for the lifetime of the process. It is never reused
// and never shown to the user.
type ID string

func NewID() ID {
	return ID(uuid.NewString())
}

type Task struct {
	ID        ID
	Name      string
	Completed bool
}

// Seed is an initial (name, completed) pair loaded at startup.
type Seed struct {
	Name      string
	Completed bool
}

// Name joins a category label and a description the way every task name is
// written: "<Category>: <description>".
func Name(category, description string) string {
	return fmt.Sprintf("%s: %s", category, description)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
