package editor

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/lorewright/lorewright/internal/graph"
)

// DefaultSaveDelay is the debounce window between the last observed edit and
// the outbound save.
const DefaultSaveDelay = 2500 * time.Millisecond

// Saver persists a scene graph; the backend scene API implements it.
type Saver interface {
	SaveSceneGraph(ctx context.Context, sceneID string, g graph.SceneGraph) error
}

// Scheduler turns bursts of graph mutation into a single outbound save. The
// debounce timer restarts on every Touch; at most one save is in flight at a
// time, and edits observed during a save re-arm the timer so the next save
// subsumes them. Failed saves are logged, not retried; the next save carries
// all accumulated changes.
type Scheduler struct {
	store *Store
	saver Saver
	delay time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	timer    *time.Timer
	version  uint64
	inflight bool
	pending  bool
	closed   bool
}

func NewScheduler(store *Store, saver Saver, delay time.Duration) *Scheduler {
	if delay <= 0 {
		delay = DefaultSaveDelay
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{store: store, saver: saver, delay: delay, ctx: ctx, cancel: cancel}
}

// Touch records a mutation and restarts the debounce window.
func (p *Scheduler) Touch() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.version++
	if p.inflight {
		p.pending = true
		return
	}
	p.arm()
}

// arm (re)starts the debounce timer. Caller holds p.mu.
func (p *Scheduler) arm() {
	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(p.delay, p.fire)
}

func (p *Scheduler) fire() {
	p.mu.Lock()
	if p.closed || p.inflight {
		p.pending = p.pending || p.inflight
		p.mu.Unlock()
		return
	}
	p.timer = nil
	p.inflight = true
	saved := p.version
	p.mu.Unlock()

	sceneID := p.store.SceneID()
	snapshot := p.store.Graph()
	err := p.saver.SaveSceneGraph(p.ctx, sceneID, snapshot)
	if err != nil {
		log.Printf("failed to save scene %s: %v", sceneID, err)
	}

	p.mu.Lock()
	p.inflight = false
	// Edits that arrived while the save was in flight are not yet on the
	// server; re-arm so the next save picks them up.
	if !p.closed && (p.pending || p.version != saved) {
		p.pending = false
		p.arm()
	}
	p.mu.Unlock()
}

// Saving reports whether a save is pending or in flight, for the UI
// indicator.
func (p *Scheduler) Saving() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inflight || p.timer != nil
}

// Flush saves immediately, bypassing the debounce window.
func (p *Scheduler) Flush(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.mu.Unlock()
	return p.saver.SaveSceneGraph(ctx, p.store.SceneID(), p.store.Graph())
}

// Close cancels any pending save. A stale timer can never fire after the
// editing context has closed.
func (p *Scheduler) Close() {
	p.mu.Lock()
	p.closed = true
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.mu.Unlock()
	p.cancel()
}
