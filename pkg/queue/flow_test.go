package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlowGate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		apply      func(g *flowGate)
		wantPaused bool
	}{
		{
			name:       "open by default",
			apply:      func(*flowGate) {},
			wantPaused: false,
		},
		{
			name:       "flow off pauses",
			apply:      func(g *flowGate) { g.setFlow(false) },
			wantPaused: true,
		},
		{
			name:       "flow resumed",
			apply: func(g *flowGate) {
				g.setFlow(false)
				g.setFlow(true)
			},
			wantPaused: false,
		},
		{
			name:       "blocked connection pauses",
			apply:      func(g *flowGate) { g.setBlocked(true) },
			wantPaused: true,
		},
		{
			name:       "still blocked after flow resumes",
			apply: func(g *flowGate) {
				g.setFlow(false)
				g.setBlocked(true)
				g.setFlow(true)
			},
			wantPaused: true,
		},
		{
			name:       "release wins over pause",
			apply: func(g *flowGate) {
				g.setFlow(false)
				g.release()
				g.setBlocked(true)
			},
			wantPaused: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g := newFlowGate()
			tc.apply(g)

			assert.Equal(t, tc.wantPaused, g.paused())
		})
	}
}

func TestFlowGate_WaitReleasedOnResume(t *testing.T) {
	t.Parallel()

	g := newFlowGate()
	g.setFlow(false)

	wait := g.wait()

	select {
	case <-wait:
		t.Fatal("wait returned while paused")
	default:
	}

	g.setFlow(true)

	select {
	case <-wait:
	default:
		t.Fatal("wait not released after resume")
	}
}
