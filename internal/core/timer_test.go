package core

import "testing"

func TestPassTimerOrderAndImplicitStop(t *testing.T) {
	timer := NewPassTimer()
	timer.Start("first")
	timer.Start("second") // implicitly stops "first"
	timer.Stop()

	got := timer.Timings()
	if len(got) != 2 {
		t.Fatalf("recorded %d passes, want 2", len(got))
	}
	if got[0].Name != "first" || got[1].Name != "second" {
		t.Fatalf("pass order = %q, %q", got[0].Name, got[1].Name)
	}
	if timer.Total() < got[0].Duration {
		t.Fatal("total smaller than a single pass")
	}
}

func TestPassTimerStopWithoutStart(t *testing.T) {
	timer := NewPassTimer()
	timer.Stop()
	if len(timer.Timings()) != 0 {
		t.Fatal("stop without start recorded a pass")
	}
}

func TestPassTimerNilSafe(t *testing.T) {
	var timer *PassTimer
	timer.Start("x")
	timer.Stop()
	if timer.Timings() != nil || timer.Total() != 0 {
		t.Fatal("nil timer must be inert")
	}
}
