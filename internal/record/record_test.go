// internal/record/record_test.go
package record

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRecord_LineFormat(t *testing.T) {
	r := Record{
		At:         time.Date(2024, 3, 7, 14, 5, 9, 123456000, time.UTC),
		Millivolts: 2268.75,
	}

	want := "07 03 2024 14:05:09.123456 2268.750000\n"
	if got := r.Line(); got != want {
		t.Fatalf("line mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestFileSink_AppendsWholeLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.txt")

	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile err=%v", err)
	}

	at := time.Date(2024, 3, 7, 14, 5, 9, 0, time.UTC)
	if err := s.Write(Record{At: at, Millivolts: 100}); err != nil {
		t.Fatalf("Write err=%v", err)
	}
	if err := s.Write(Record{At: at, Millivolts: 200.5}); err != nil {
		t.Fatalf("Write err=%v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close err=%v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile err=%v", err)
	}
	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), string(b))
	}
	if !strings.HasSuffix(lines[0], " 100.000000") {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], " 200.500000") {
		t.Fatalf("unexpected second line: %q", lines[1])
	}
}

func TestFileSink_ReopenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.txt")
	at := time.Now()

	for i := 0; i < 2; i++ {
		s, err := OpenFile(path)
		if err != nil {
			t.Fatalf("OpenFile err=%v", err)
		}
		if err := s.Write(Record{At: at, Millivolts: float64(i)}); err != nil {
			t.Fatalf("Write err=%v", err)
		}
		if err := s.Close(); err != nil {
			t.Fatalf("Close err=%v", err)
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile err=%v", err)
	}
	if got := strings.Count(string(b), "\n"); got != 2 {
		t.Fatalf("expected 2 lines after reopen, got %d", got)
	}
}

// ---- multi sink ----

type fakeSink struct {
	writes []Record
	err    error
	closed bool
}

func (f *fakeSink) Write(r Record) error {
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, r)
	return nil
}

func (f *fakeSink) Close() error {
	f.closed = true
	return nil
}

func TestMulti_FansOut(t *testing.T) {
	a := &fakeSink{}
	b := &fakeSink{}
	m := Multi(a, b)

	if err := m.Write(Record{Millivolts: 1}); err != nil {
		t.Fatalf("Write err=%v", err)
	}
	if len(a.writes) != 1 || len(b.writes) != 1 {
		t.Fatalf("expected both sinks written, got %d and %d", len(a.writes), len(b.writes))
	}
}

func TestMulti_OneFailureDoesNotStopOthers(t *testing.T) {
	a := &fakeSink{err: errors.New("disk full")}
	b := &fakeSink{}
	m := Multi(a, b)

	err := m.Write(Record{Millivolts: 1})
	if err == nil {
		t.Fatalf("expected aggregated error")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected failure detail in error, got %v", err)
	}
	if len(b.writes) != 1 {
		t.Fatalf("healthy sink skipped after sibling failure")
	}
}

func TestMulti_CloseClosesAll(t *testing.T) {
	a := &fakeSink{}
	b := &fakeSink{}
	m := Multi(a, b)

	if err := m.Close(); err != nil {
		t.Fatalf("Close err=%v", err)
	}
	if !a.closed || !b.closed {
		t.Fatalf("expected both sinks closed")
	}
}

func TestMulti_SingleSinkPassthrough(t *testing.T) {
	a := &fakeSink{}
	if Multi(a) != Sink(a) {
		t.Fatalf("single sink should be returned as-is")
	}
}
