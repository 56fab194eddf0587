// internal/record/multi.go
package record

import (
	"errors"
	"strings"
)

// multiSink fans a record out to every sink. One failing sink does not stop
// delivery to the others.
type multiSink struct {
	sinks []Sink
}

// Multi combines sinks into one. A single sink is returned as-is.
func Multi(sinks ...Sink) Sink {
	if len(sinks) == 1 {
		return sinks[0]
	}
	return &multiSink{sinks: sinks}
}

func (m *multiSink) Write(r Record) error {
	var errs []string
	for _, s := range m.sinks {
		if err := s.Write(r); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return errors.New("record: " + strings.Join(errs, " | "))
	}
	return nil
}

func (m *multiSink) Close() error {
	var last error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil {
			last = err
		}
	}
	return last
}
