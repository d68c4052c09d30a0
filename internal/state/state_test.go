package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type traceState struct {
	name  string
	trace *[]string
}

func (s *traceState) Enter()             { *s.trace = append(*s.trace, "enter "+s.name) }
func (s *traceState) Update(float64)     { *s.trace = append(*s.trace, "update "+s.name) }
func (s *traceState) Draw(*ebiten.Image) {}
func (s *traceState) Exit()              { *s.trace = append(*s.trace, "exit "+s.name) }

func TestStateMachineTransitions(t *testing.T) {
	var trace []string
	sm := NewStateMachine()
	sm.Update(0.1) // no state yet

	a := &traceState{name: "a", trace: &trace}
	b := &traceState{name: "b", trace: &trace}
	sm.SetState(a)
	sm.Update(0.1)
	sm.SetState(b)
	sm.SetState(nil)

	want := []string{"enter a", "update a", "exit a", "enter b", "exit b"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("trace[%d] = %q, want %q", i, trace[i], want[i])
		}
	}
	if sm.Current() != nil {
		t.Errorf("current should be nil")
	}
}
