package engine

import "testing"

func TestEventInvokeCallsAllListeners(t *testing.T) {
	var e Event
	calls := 0
	e.AddListener(func() { calls++ })
	e.AddListener(func() { calls++ })

	e.Invoke()

	if calls != 2 {
		t.Errorf("Expected 2 calls, got %d", calls)
	}
}

func TestEventNilListenerIgnored(t *testing.T) {
	var e Event
	if id := e.AddListener(nil); id != 0 {
		t.Errorf("Expected id 0 for nil listener, got %d", id)
	}
	if e.GetListenerCount() != 0 {
		t.Errorf("Expected 0 listeners, got %d", e.GetListenerCount())
	}
}

func TestEventRemoveListener(t *testing.T) {
	var e EventWithArg[int]
	var got []int
	first := e.AddListener(func(v int) { got = append(got, v) })
	e.AddListener(func(v int) { got = append(got, v*10) })

	if !e.RemoveListener(first) {
		t.Fatal("Expected first listener to be removed")
	}
	if e.RemoveListener(first) {
		t.Error("Removing twice should report false")
	}

	e.Invoke(2)

	if len(got) != 1 || got[0] != 20 {
		t.Errorf("Expected [20], got %v", got)
	}
}

func TestEventRemoveDuringInvoke(t *testing.T) {
	var e Event
	calls := 0
	var id ListenerID
	id = e.AddListener(func() {
		calls++
		e.RemoveListener(id)
	})
	e.AddListener(func() { calls++ })

	e.Invoke()
	e.Invoke()

	if calls != 3 {
		t.Errorf("Expected 3 calls, got %d", calls)
	}
}

func TestEventRemoveAllListeners(t *testing.T) {
	var e EventWithArg[string]
	e.AddListener(func(string) {})
	e.RemoveAllListeners()

	if e.GetListenerCount() != 0 {
		t.Errorf("Expected 0 listeners, got %d", e.GetListenerCount())
	}
}
