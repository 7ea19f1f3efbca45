package selflog_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/quillog/quill/selflog"
)

func TestSelfLog(t *testing.T) {
	selflog.Disable()
	defer selflog.Disable()

	t.Run("disabled by default", func(t *testing.T) {
		var buf bytes.Buffer
		selflog.Printf("[test] should not appear")
		if buf.Len() > 0 {
			t.Error("expected no output when disabled")
		}
	})

	t.Run("enable with writer", func(t *testing.T) {
		var buf bytes.Buffer
		selflog.Enable(&buf)
		defer selflog.Disable()

		selflog.Printf("[test] error: %s", "test error")

		output := buf.String()
		if !strings.Contains(output, "[test] error: test error") {
			t.Errorf("expected error message, got: %s", output)
		}
		if !strings.Contains(output, time.Now().UTC().Format("2006-01-02")) {
			t.Error("expected timestamp in output")
		}
	})

	t.Run("enable with func", func(t *testing.T) {
		var messages []string
		selflog.EnableFunc(func(msg string) {
			messages = append(messages, msg)
		})
		defer selflog.Disable()

		selflog.Printf("[file] write failed: %v", "disk full")

		if len(messages) != 1 {
			t.Fatalf("expected 1 message, got %d", len(messages))
		}
		if !strings.Contains(messages[0], "[file] write failed: disk full") {
			t.Errorf("unexpected message: %s", messages[0])
		}
	})

	t.Run("disable stops output", func(t *testing.T) {
		var buf bytes.Buffer
		selflog.Enable(&buf)
		selflog.Printf("[test] first")
		selflog.Disable()
		selflog.Printf("[test] second")

		output := buf.String()
		if strings.Contains(output, "second") {
			t.Error("expected no output after disable")
		}
	})

	t.Run("nil writer ignored", func(t *testing.T) {
		selflog.Enable(nil)
		selflog.Printf("[test] should not crash")
	})

	t.Run("nil func ignored", func(t *testing.T) {
		selflog.EnableFunc(nil)
		selflog.Printf("[test] should not crash")
	})
}

func TestSyncWriter(t *testing.T) {
	var unsafeBuf bytes.Buffer
	safeBuf := selflog.Sync(&unsafeBuf)

	selflog.Enable(safeBuf)
	defer selflog.Disable()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			selflog.Printf("[goroutine-%d] test message", n)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(unsafeBuf.String()), "\n")
	if len(lines) != 100 {
		t.Errorf("expected 100 lines, got %d", len(lines))
	}
}

func TestIsEnabled(t *testing.T) {
	selflog.Disable()
	if selflog.IsEnabled() {
		t.Error("expected disabled")
	}

	selflog.Enable(&bytes.Buffer{})
	defer selflog.Disable()
	if !selflog.IsEnabled() {
		t.Error("expected enabled")
	}
}
