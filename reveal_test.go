package scrubline

import "testing"

func TestRevealTwoLetters(t *testing.T) {
	offsets := []float64{0, 40}
	const left = 100

	got := Reveal(130, left, offsets, nil)
	if got[0] != Visible || got[1] != Hidden {
		t.Errorf("sweep 130: got %v, want [visible hidden]", got)
	}

	got = Reveal(145, left, offsets, got)
	if got[0] != Visible || got[1] != Visible {
		t.Errorf("sweep 145: got %v, want both visible", got)
	}

	got = Reveal(99, left, offsets, got)
	if CountVisible(got) != 0 {
		t.Errorf("sweep 99: got %v, want none visible", got)
	}
}

func TestRevealThresholdRoundTrip(t *testing.T) {
	offsets := []float64{25}
	const left = 100
	threshold := left + offsets[0]

	states := Reveal(threshold, left, offsets, nil)
	if states[0] != Visible {
		t.Fatal("letter should be visible exactly at its threshold")
	}
	states = Reveal(threshold-1, left, offsets, states)
	if states[0] != Hidden {
		t.Fatal("letter should hide again below its threshold")
	}
	states = Reveal(threshold, left, offsets, states)
	if states[0] != Visible {
		t.Fatal("letter should be visible again")
	}
}

func TestRevealMonotoneInSweep(t *testing.T) {
	offsets := LetterOffsets(MonoFont{Advance: 40, Height: 60}, "WELCOME ITZFIZZ", 4.8)
	var states []RevealState
	prev := 0
	for sweep := 0.0; sweep <= 1200; sweep += 3 {
		states = Reveal(sweep, 60, offsets, states)
		n := CountVisible(states)
		if n < prev {
			t.Fatalf("visible count dropped from %d to %d at sweep %v", prev, n, sweep)
		}
		prev = n
	}
	if prev != len(offsets) {
		t.Errorf("final visible = %d, want %d", prev, len(offsets))
	}
}

func TestRevealNoAllocs(t *testing.T) {
	offsets := make([]float64, 32)
	for i := range offsets {
		offsets[i] = float64(i) * 30
	}
	dst := make([]RevealState, len(offsets))
	allocs := testing.AllocsPerRun(100, func() {
		dst = Reveal(500, 10, offsets, dst)
	})
	if allocs != 0 {
		t.Errorf("Reveal allocated %v times per run", allocs)
	}
}

func TestRevealEmpty(t *testing.T) {
	if got := Reveal(100, 0, nil, nil); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
