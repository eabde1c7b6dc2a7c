package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
)

// CapturedLogs collects JSON log output written during a test. It is safe for
// concurrent writers.
type CapturedLogs struct {
	mu  sync.Mutex
	out bytes.Buffer
}

func (c *CapturedLogs) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.out.Write(p)
}

// String returns everything logged so far.
func (c *CapturedLogs) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.out.String()
}

// Entries decodes the captured output, one map per log record.
func (c *CapturedLogs) Entries(t *testing.T) []map[string]any {
	t.Helper()

	dec := json.NewDecoder(bytes.NewBufferString(c.String()))
	var entries []map[string]any
	for {
		var entry map[string]any
		err := dec.Decode(&entry)
		if errors.Is(err, io.EOF) {
			return entries
		}
		if err != nil {
			t.Fatalf("captured log output is not JSON: %v", err)
		}
		entries = append(entries, entry)
	}
}

// CaptureDefault routes the slog default logger into a CapturedLogs at debug
// level until the test ends.
func CaptureDefault(t *testing.T) *CapturedLogs {
	t.Helper()

	logs := &CapturedLogs{}
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(previous) })

	return logs
}
