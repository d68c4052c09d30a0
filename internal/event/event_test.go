package event

import "testing"

type counter struct{ n int }

func (c *counter) OnEvent(Event) { c.n++ }

func TestDispatcherOrderAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(YarnKilled, ListenerFunc(func(Event) { order = append(order, "first") }))
	d.Subscribe(YarnKilled, ListenerFunc(func(Event) { order = append(order, "second") }))
	c := &counter{}
	d.Subscribe(YarnKilled, c)

	d.Dispatch(Event{Type: YarnKilled, Data: YarnData{ID: 1}})
	if len(order) != 2 || order[0] != "first" || order[1] != "second" || c.n != 1 {
		t.Fatalf("order = %v, counter = %d", order, c.n)
	}

	d.Unsubscribe(YarnKilled, c)
	d.Dispatch(Event{Type: YarnKilled})
	if c.n != 1 {
		t.Errorf("unsubscribed listener still called")
	}
	d.Dispatch(Event{Type: WaveEnded})
	if len(order) != 4 {
		t.Errorf("listeners of other events were called: %v", order)
	}
}

func TestDispatchNested(t *testing.T) {
	d := NewDispatcher()
	c := &counter{}
	d.Subscribe(PlayerDefeated, c)
	d.Subscribe(PlayerDamaged, ListenerFunc(func(Event) { d.Dispatch(Event{Type: PlayerDefeated}) }))

	d.Dispatch(Event{Type: PlayerDamaged})
	if c.n != 1 {
		t.Errorf("nested event delivered %d times", c.n)
	}
}
