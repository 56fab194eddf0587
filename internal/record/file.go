// internal/record/file.go
package record

import (
	"fmt"
	"os"
)

// FileSink appends records to a file, one line per record. The file is
// opened once and held for the sink's lifetime.
type FileSink struct {
	f *os.File
}

// OpenFile opens (creating if absent) the record file in append mode.
func OpenFile(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("record: open %s: %w", path, err)
	}
	return &FileSink{f: f}, nil
}

// Write appends one record. The line goes out in a single write so that,
// with O_APPEND, it lands whole.
func (s *FileSink) Write(r Record) error {
	_, err := s.f.WriteString(r.Line())
	return err
}

// Close closes the record file.
func (s *FileSink) Close() error {
	return s.f.Close()
}
