package planewar

import (
	"math/rand"
	"sync"
	"time"

	"github.com/faiface/pixel"
)

// command mutates the world. Background tasks never touch the world directly,
// they post commands that the frame loop applies at the start of a frame.
type command func(w *world)

type commandQueue struct {
	mu      sync.Mutex
	pending []command
	closed  bool
}

// post queues c, reporting false once the queue was closed.
func (q *commandQueue) post(c command) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.pending = append(q.pending, c)
	return true
}

func (q *commandQueue) drain() []command {
	q.mu.Lock()
	defer q.mu.Unlock()
	cmds := q.pending
	q.pending = nil
	return cmds
}

func (q *commandQueue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.pending = nil
}

type world struct {
	screen   pixel.Rect
	rng      *rand.Rand
	art      Art
	nextID   uint64
	entities []*Entity

	commands *commandQueue
	launch   func(func())
	sleep    func(time.Duration)
}

func newWorld(screen pixel.Rect, rng *rand.Rand, art Art) *world {
	return &world{
		screen:   screen,
		rng:      rng,
		art:      art,
		entities: make([]*Entity, 0, 256),
		commands: &commandQueue{},
		launch:   func(f func()) { go f() },
		sleep:    time.Sleep,
	}
}

func (w *world) add(e *Entity) *Entity {
	w.nextID++
	e.id = w.nextID
	w.entities = append(w.entities, e)
	return e
}

// kill removes e from every set. Killing is idempotent and cascades to what e owns.
func (w *world) kill(e *Entity) {
	if e == nil || !e.alive {
		return
	}
	switch e.kind {
	case KindPlayer:
		w.kill(e.afterburner)
	case KindEnemy:
		for _, b := range e.bullets {
			w.kill(b)
		}
		e.bullets = nil
	}
	e.alive = false
	e.layers = 0
	e.update = 0
	e.sets = 0
}

// group returns the live members of a collision set, in spawn order.
func (w *world) group(set collider) []*Entity {
	var out []*Entity
	for _, e := range w.entities {
		if e.alive && e.sets&set != 0 {
			out = append(out, e)
		}
	}
	return out
}

func (w *world) count(set collider) int {
	n := 0
	for _, e := range w.entities {
		if e.alive && e.sets&set != 0 {
			n++
		}
	}
	return n
}

// drawn returns the live entities that belong to the draw layer.
func (w *world) drawn(layer Layer) []*Entity {
	var out []*Entity
	for _, e := range w.entities {
		if e.alive && e.layers&layer != 0 {
			out = append(out, e)
		}
	}
	return out
}

// advance updates every entity whose update set is layer. Entities spawned
// during the pass wait for the next frame.
func (w *world) advance(layer Layer, ctx frameContext) {
	n := len(w.entities)
	for i := 0; i < n; i++ {
		e := w.entities[i]
		if !e.alive || e.update != layer {
			continue
		}
		e.animate(ctx.dt)
		if u := updaters[e.kind]; u != nil {
			u(w, e, ctx)
		}
	}
}

// applyCommands runs everything background tasks posted since the last frame.
func (w *world) applyCommands() {
	for _, c := range w.commands.drain() {
		c(w)
	}
}

// sweep drops dead entities from the store.
func (w *world) sweep() {
	live := w.entities[:0]
	for _, e := range w.entities {
		if e.alive {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = live
}

func (w *world) shutdown() {
	w.commands.close()
}
