// Package notify delivers transient user-facing alerts after sync operations
// complete. Implementations must not block: the orchestrator calls Notify
// inline on its own goroutine.
package notify

import (
	"context"
	"fmt"
	"io"

	"fleetsync/internal/logging"
)

// Notifier receives one (title, body) pair per completed operation.
type Notifier interface {
	Notify(title, body string)
}

// Log writes notifications to the structured logger.
type Log struct {
	log logging.Logger
}

func NewLog(log logging.Logger) *Log {
	return &Log{log: log}
}

func (n *Log) Notify(title, body string) {
	n.log.Info(context.Background(), "notification", "title", title, "body", body)
}

// Console prints notifications to the given writer, for the CLI.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (n *Console) Notify(title, body string) {
	fmt.Fprintf(n.w, "[%s] %s\n", title, body)
}
