package queue

import "sync"

// flowGate tracks whether the broker asked a channel to stop sending, either through
// channel.flow or a connection.blocked notification. Waiters are released on resume
// or when the channel is invalidated.
type flowGate struct {
	mu       sync.Mutex
	flowOff  bool
	blocked  bool
	released bool
	resume   chan struct{}
}

func newFlowGate() *flowGate {
	resume := make(chan struct{})
	close(resume)

	return &flowGate{resume: resume}
}

func (g *flowGate) setFlow(active bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.flowOff = !active
	g.update()
}

func (g *flowGate) setBlocked(blocked bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.blocked = blocked
	g.update()
}

func (g *flowGate) release() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.released = true
	g.update()
}

// update must be called with mu held.
func (g *flowGate) update() {
	paused := (g.flowOff || g.blocked) && !g.released

	select {
	case <-g.resume:
		if paused {
			g.resume = make(chan struct{})
		}
	default:
		if !paused {
			close(g.resume)
		}
	}
}

func (g *flowGate) paused() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	select {
	case <-g.resume:
		return false
	default:
		return true
	}
}

// wait returns a channel that is closed once sending may continue.
func (g *flowGate) wait() <-chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.resume
}
