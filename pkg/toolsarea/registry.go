package toolsarea

import (
	"slices"

	"github.com/go-drift/toolsarea/pkg/animation"
	"github.com/go-drift/toolsarea/pkg/geometry"
)

// handle is a generation-checked index into the element arena. A handle
// whose generation no longer matches its slot refers to a freed element.
type handle struct {
	index uint32
	gen   uint32
}

type elementRecord struct {
	id       NodeID
	kind     ElementKind
	hint     NodeID
	window   NodeID
	geometry geometry.Rect
	visible  bool
	member   bool
	reason   Reason
	// graceShow is armed by a show event and consumed by the next pass.
	graceShow bool
	// destroyed is the liveness flag cleared by the host's destruction
	// callback. Destroyed records are purged before the next read.
	destroyed bool
}

type slot struct {
	gen  uint32
	used bool
	rec  elementRecord
}

type windowRecord struct {
	id       NodeID
	elements map[handle]struct{}
	members  map[handle]struct{}
	area     Area

	active      bool
	enabled     bool
	noSeparator bool

	timer    *animation.Timer
	teardown bool
	anim     *animState
	passes   uint64
}

func newWindowRecord(id NodeID) *windowRecord {
	return &windowRecord{
		id:       id,
		elements: make(map[handle]struct{}),
		members:  make(map[handle]struct{}),
		enabled:  true,
		active:   true,
	}
}

// registry owns the element arena and the window table.
type registry struct {
	slots   []slot
	free    []uint32
	byNode  map[NodeID]handle
	windows map[NodeID]*windowRecord
	dead    []handle
}

func newRegistry() *registry {
	return &registry{
		byNode:  make(map[NodeID]handle),
		windows: make(map[NodeID]*windowRecord),
	}
}

// get returns the record for h, or nil when h is stale.
func (r *registry) get(h handle) *elementRecord {
	if int(h.index) >= len(r.slots) {
		return nil
	}
	s := &r.slots[h.index]
	if !s.used || s.gen != h.gen {
		return nil
	}
	return &s.rec
}

// lookup resolves a host identity to a live record.
func (r *registry) lookup(id NodeID) (handle, *elementRecord) {
	h, ok := r.byNode[id]
	if !ok {
		return handle{}, nil
	}
	rec := r.get(h)
	if rec == nil || rec.destroyed {
		return handle{}, nil
	}
	return h, rec
}

// insert allocates a slot for rec and indexes it.
func (r *registry) insert(rec elementRecord) handle {
	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		idx = uint32(len(r.slots))
		r.slots = append(r.slots, slot{})
	}
	s := &r.slots[idx]
	s.used = true
	s.rec = rec
	h := handle{index: idx, gen: s.gen}
	r.byNode[rec.id] = h
	return h
}

// remove frees the slot behind h and drops it from its window. It returns
// the window the element belonged to.
func (r *registry) remove(h handle) NodeID {
	rec := r.get(h)
	if rec == nil {
		return NoNode
	}
	win := rec.window
	if w := r.windows[win]; w != nil {
		delete(w.elements, h)
		delete(w.members, h)
	}
	if cur, ok := r.byNode[rec.id]; ok && cur == h {
		delete(r.byNode, rec.id)
	}
	s := &r.slots[h.index]
	s.used = false
	s.gen++
	s.rec = elementRecord{}
	r.free = append(r.free, h.index)
	return win
}

// markDestroyed clears the liveness flag of id and queues it for purging.
func (r *registry) markDestroyed(id NodeID) (NodeID, bool) {
	h, rec := r.lookup(id)
	if rec == nil {
		return NoNode, false
	}
	rec.destroyed = true
	r.dead = append(r.dead, h)
	return rec.window, true
}

// purgeDestroyed frees every destroyed record and returns the windows that
// lost elements.
func (r *registry) purgeDestroyed() []NodeID {
	if len(r.dead) == 0 {
		return nil
	}
	var touched []NodeID
	for _, h := range r.dead {
		if win := r.remove(h); win != NoNode && !slices.Contains(touched, win) {
			touched = append(touched, win)
		}
	}
	r.dead = r.dead[:0]
	return touched
}

// attach places h into window w, detaching it from any previous window.
func (r *registry) attach(h handle, w *windowRecord) {
	rec := r.get(h)
	if rec == nil {
		return
	}
	if prev := r.windows[rec.window]; prev != nil && prev != w {
		delete(prev.elements, h)
		delete(prev.members, h)
	}
	rec.window = w.id
	w.elements[h] = struct{}{}
}

// memberIDs returns the sorted host identities of w's members.
func (r *registry) memberIDs(w *windowRecord) []NodeID {
	ids := make([]NodeID, 0, len(w.members))
	for h := range w.members {
		if rec := r.get(h); rec != nil {
			ids = append(ids, rec.id)
		}
	}
	slices.Sort(ids)
	return ids
}

// elementCount returns the number of live registered elements.
func (r *registry) elementCount() int {
	return len(r.byNode)
}
