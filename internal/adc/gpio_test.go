// internal/adc/gpio_test.go
package adc

import (
	"errors"
	"testing"
)

type fakeLine struct {
	sets   []int
	value  int
	closed bool
	setErr error
}

func (f *fakeLine) SetValue(v int) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.sets = append(f.sets, v)
	return nil
}

func (f *fakeLine) Value() (int, error) { return f.value, nil }

func (f *fakeLine) Close() error {
	f.closed = true
	return nil
}

func lastSet(f *fakeLine) int {
	if len(f.sets) == 0 {
		return -1
	}
	return f.sets[len(f.sets)-1]
}

func TestGPIOLines_PulseTogglesThenSamples(t *testing.T) {
	clock := &fakeLine{}
	data := &fakeLine{value: 1}
	g := &GPIOLines{clock: clock, data: data, hold: &fakeLine{}}

	b, err := g.Pulse()
	if err != nil {
		t.Fatalf("Pulse err=%v", err)
	}
	if b != 1 {
		t.Fatalf("expected data level 1, got %d", b)
	}
	if len(clock.sets) != 2 || clock.sets[0] != 0 || clock.sets[1] != 1 {
		t.Fatalf("expected clock low then high, got %v", clock.sets)
	}
}

func TestGPIOLines_IdleHighAfterEveryOp(t *testing.T) {
	clock := &fakeLine{}
	g := &GPIOLines{clock: clock, data: &fakeLine{}, hold: &fakeLine{}}

	if _, err := g.Pulse(); err != nil {
		t.Fatalf("Pulse err=%v", err)
	}
	if lastSet(clock) != 1 {
		t.Fatalf("clock not idle-high after Pulse: %v", clock.sets)
	}

	if err := g.Tick(); err != nil {
		t.Fatalf("Tick err=%v", err)
	}
	if lastSet(clock) != 1 {
		t.Fatalf("clock not idle-high after Tick: %v", clock.sets)
	}
}

func TestGPIOLines_PulsePropagatesLineError(t *testing.T) {
	boom := errors.New("line gone")
	g := &GPIOLines{clock: &fakeLine{setErr: boom}, data: &fakeLine{}, hold: &fakeLine{}}

	if _, err := g.Pulse(); !errors.Is(err, boom) {
		t.Fatalf("expected line error, got %v", err)
	}
}

func TestGPIOLines_CloseReleasesAll(t *testing.T) {
	clock := &fakeLine{}
	data := &fakeLine{}
	hold := &fakeLine{}
	g := &GPIOLines{clock: clock, data: data, hold: hold}

	if err := g.Close(); err != nil {
		t.Fatalf("Close err=%v", err)
	}
	for i, f := range []*fakeLine{clock, data, hold} {
		if !f.closed {
			t.Fatalf("line %d not closed", i)
		}
	}
}
