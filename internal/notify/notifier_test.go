package notify

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"fleetsync/internal/logging"
)

func TestConsole_Notify(t *testing.T) {
	var buf bytes.Buffer
	n := NewConsole(&buf)
	n.Notify("Sync finished", "3 vehicles, 8 users")
	assert.Equal(t, "[Sync finished] 3 vehicles, 8 users\n", buf.String())
}

func TestLog_Notify(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	n := NewLog(log)
	n.Notify("Vehicle added", "plate ABC123")

	out := buf.String()
	assert.True(t, strings.Contains(out, "title=\"Vehicle added\""), out)
	assert.True(t, strings.Contains(out, "plate ABC123"), out)
}
