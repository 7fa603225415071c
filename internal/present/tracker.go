// Package present is the renderer-facing side of the event bus: it keeps the
// set of visible objects in step with the core's add/remove events and owns
// their disposal.
package present

import (
	"sort"

	"github.com/fallcatch/fallcatch/internal/catch"
	"github.com/fallcatch/fallcatch/internal/core/event"
	"go.uber.org/zap"
)

// DisposeFunc releases whatever a renderer allocated for an object.
type DisposeFunc func(id catch.ObjectID)

// Tracker mirrors the core's active object set. Removals are queued and
// released at end of frame by FlushDisposals, so a renderer never frees a
// visual while the frame that removed it is still being delivered.
type Tracker struct {
	visible      map[catch.ObjectID]catch.FallingObject
	disposeQueue []catch.ObjectID
	dispose      DisposeFunc
	disposed     int
	log          *zap.Logger
}

// NewTracker subscribes a tracker to b. dispose may be nil.
func NewTracker(b *event.Bus, dispose DisposeFunc, log *zap.Logger) *Tracker {
	t := &Tracker{
		visible: make(map[catch.ObjectID]catch.FallingObject, 32),
		dispose: dispose,
		log:     log,
	}
	event.Subscribe(b, t.onSpawned)
	event.Subscribe(b, t.onCaught)
	event.Subscribe(b, t.onMissed)
	event.Subscribe(b, t.onCleared)
	return t
}

func (t *Tracker) onSpawned(e catch.ObjectSpawned) {
	t.visible[e.ID] = catch.FallingObject{ID: e.ID, X: e.X, Y: e.Y}
	t.log.Debug("object spawned", zap.Uint64("id", uint64(e.ID)), zap.Float64("x", e.X))
}

func (t *Tracker) onCaught(e catch.ObjectCaught) {
	t.log.Debug("object caught", zap.Uint64("id", uint64(e.ID)))
	t.markForDisposal(e.ID)
}

func (t *Tracker) onMissed(e catch.ObjectMissed) {
	t.log.Debug("object missed", zap.Uint64("id", uint64(e.ID)), zap.Float64("x", e.X))
	t.markForDisposal(e.ID)
}

func (t *Tracker) onCleared(e catch.ObjectCleared) {
	t.markForDisposal(e.ID)
}

func (t *Tracker) markForDisposal(id catch.ObjectID) {
	t.disposeQueue = append(t.disposeQueue, id)
}

// FlushDisposals releases every queued object and clears the queue.
// Unknown or already released IDs are skipped.
func (t *Tracker) FlushDisposals() {
	for _, id := range t.disposeQueue {
		if _, ok := t.visible[id]; !ok {
			continue
		}
		delete(t.visible, id)
		if t.dispose != nil {
			t.dispose(id)
		}
		t.disposed++
	}
	t.disposeQueue = t.disposeQueue[:0]
}

// Sync updates positions of visible objects from a frame view.
func (t *Tracker) Sync(v catch.View) {
	for _, o := range v.Objects {
		if _, ok := t.visible[o.ID]; ok {
			t.visible[o.ID] = o
		}
	}
}

func (t *Tracker) Visible() int { return len(t.visible) }

func (t *Tracker) Disposed() int { return t.disposed }

func (t *Tracker) Has(id catch.ObjectID) bool {
	_, ok := t.visible[id]
	return ok
}

// IDs returns the visible object IDs in ascending order.
func (t *Tracker) IDs() []catch.ObjectID {
	ids := make([]catch.ObjectID, 0, len(t.visible))
	for id := range t.visible {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
