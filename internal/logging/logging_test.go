package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "drilldown.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(false)
	Trace("noop", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file, stat err=%v", err)
	}
}

func TestTraceWritesSequencedEntries(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(true)
	Trace("first", map[string]interface{}{"n": 1})
	Trace("second", nil)

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()
	var entries []traceEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry traceEntry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("decode %q: %v", scanner.Text(), err)
		}
		entries = append(entries, entry)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Event != "first" || entries[1].Event != "second" {
		t.Fatalf("unexpected events %#v", entries)
	}
	if entries[1].Seq <= entries[0].Seq {
		t.Fatalf("expected increasing sequence, got %d then %d", entries[0].Seq, entries[1].Seq)
	}
}

func TestErrorAppendsToLog(t *testing.T) {
	path := useTempLog(t)
	Error(nil)
	Error(errors.New("boom"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "boom") {
		t.Fatalf("expected error in log, got %q", string(data))
	}
}

func TestConfigureEmptyFallsBackToDefault(t *testing.T) {
	useTempLog(t)
	Configure("   ")
	if got := Path(); got != defaultLogFile {
		t.Fatalf("expected default path, got %q", got)
	}
}
