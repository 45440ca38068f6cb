package eventlog

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"

	"evoworld/internal/domain/ecology"
)

func TestWriterRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	events := []ecology.DomainEvent{
		{Type: ecology.EventClusterSpawned, Tick: 1, Payload: map[string]any{"size": float64(4)}},
		{Type: ecology.EventHarvestSettled, Tick: 2},
	}
	if err := w.Write(events); err != nil {
		t.Fatalf("write error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close error: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "events-*.jsonl.zst"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one log file, got %v (err=%v)", matches, err)
	}

	f, err := os.Open(matches[0])
	if err != nil {
		t.Fatalf("open error: %v", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		t.Fatalf("zstd reader error: %v", err)
	}
	defer dec.Close()

	var got []ecology.DomainEvent
	scanner := bufio.NewScanner(dec)
	for scanner.Scan() {
		var e ecology.DomainEvent
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("decode line %q: %v", scanner.Text(), err)
		}
		got = append(got, e)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("decoded %d events, want 2", len(got))
	}
	if got[0].Type != ecology.EventClusterSpawned || got[0].Payload["size"] != float64(4) {
		t.Fatalf("first event mismatch: %+v", got[0])
	}
	if got[1].Tick != 2 {
		t.Fatalf("second event mismatch: %+v", got[1])
	}
}

func TestWriterSkipsEmptyBatches(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	if err := w.Write(nil); err != nil {
		t.Fatalf("empty write error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close error: %v", err)
	}

	matches, _ := filepath.Glob(filepath.Join(dir, "*"))
	if len(matches) != 0 {
		t.Fatalf("empty batch created files: %v", matches)
	}
}
