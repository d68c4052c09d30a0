// internal/physics/world.go
package physics

import (
	"sort"

	"go-yarn-defense/internal/types"

	"github.com/jakecoffman/cp"
)

// Kind separates the bodies a query can look for.
type Kind int

const (
	KindYarn Kind = iota + 1
	KindProjectile
)

// Hit is one result of a radius query.
type Hit struct {
	ID       types.EntityID
	Distance float64 // from the query point to the shape's edge, negative inside
}

type entry struct {
	id     types.EntityID
	kind   Kind
	body   *cp.Body
	shape  *cp.Shape
	radius float64
}

// World owns the Chipmunk space used for overlap and range queries. Nothing is
// simulated: bodies are kinematic and moved by the game systems each frame.
type World struct {
	space         *cp.Space
	entries       map[types.EntityID]*entry
	shapeToEntity map[*cp.Shape]types.EntityID
	contacts      map[types.EntityID]map[types.EntityID]struct{}
}

func NewWorld() *World {
	return &World{
		space:         cp.NewSpace(),
		entries:       make(map[types.EntityID]*entry),
		shapeToEntity: make(map[*cp.Shape]types.EntityID),
		contacts:      make(map[types.EntityID]map[types.EntityID]struct{}),
	}
}

// AddCircle registers a circle for id. An existing circle for id is replaced.
func (w *World) AddCircle(id types.EntityID, kind Kind, x, y, radius float64) {
	w.Remove(id)
	body := w.space.AddBody(cp.NewKinematicBody())
	body.SetPosition(cp.Vector{X: x, Y: y})
	shape := w.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.UserData = id
	w.entries[id] = &entry{id: id, kind: kind, body: body, shape: shape, radius: radius}
	w.shapeToEntity[shape] = id
}

// Move places id's circle at (x, y).
func (w *World) Move(id types.EntityID, x, y float64) {
	e, ok := w.entries[id]
	if !ok {
		return
	}
	e.body.SetPosition(cp.Vector{X: x, Y: y})
	w.reindex(e)
}

// reindex refreshes the bounding box the space keeps for e's shape. The space
// never steps, so kinematic bodies are only reindexed when they are re-added.
func (w *World) reindex(e *entry) {
	w.space.RemoveShape(e.shape)
	w.space.AddShape(e.shape)
}

// SetRadius swaps the circle of id for one with the new radius.
func (w *World) SetRadius(id types.EntityID, radius float64) {
	e, ok := w.entries[id]
	if !ok || e.radius == radius {
		return
	}
	delete(w.shapeToEntity, e.shape)
	w.space.RemoveShape(e.shape)
	e.shape = w.space.AddShape(cp.NewCircle(e.body, radius, cp.Vector{}))
	e.shape.UserData = id
	e.radius = radius
	w.shapeToEntity[e.shape] = id
}

// Remove drops id from the world. Unknown ids are ignored.
func (w *World) Remove(id types.EntityID) {
	e, ok := w.entries[id]
	if !ok {
		return
	}
	delete(w.shapeToEntity, e.shape)
	w.space.RemoveShape(e.shape)
	w.space.RemoveBody(e.body)
	delete(w.entries, id)
	delete(w.contacts, id)
	for _, set := range w.contacts {
		delete(set, id)
	}
}

func (w *World) Contains(id types.EntityID) bool {
	_, ok := w.entries[id]
	return ok
}

func (w *World) Len() int {
	return len(w.entries)
}

// QueryRadius returns every circle of the given kind that touches the circle
// of radius r around (x, y), nearest first. Ties are broken by id so the
// order does not depend on the spatial index.
func (w *World) QueryRadius(x, y, r float64, kind Kind) []Hit {
	p := cp.Vector{X: x, Y: y}
	var hits []Hit
	w.space.BBQuery(cp.NewBBForCircle(p, r), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, data interface{}) {
		id, ok := w.shapeToEntity[shape]
		if !ok || w.entries[id].kind != kind {
			return
		}
		info := shape.PointQuery(p)
		if info.Distance > r {
			return
		}
		hits = append(hits, Hit{ID: id, Distance: info.Distance})
	}, nil)
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Distance != hits[j].Distance {
			return hits[i].Distance < hits[j].Distance
		}
		return hits[i].ID < hits[j].ID
	})
	return hits
}

// Overlaps returns the circles of the given kind that overlap id's circle.
func (w *World) Overlaps(id types.EntityID, kind Kind) []Hit {
	e, ok := w.entries[id]
	if !ok {
		return nil
	}
	pos := e.body.Position()
	hits := w.QueryRadius(pos.X, pos.Y, e.radius, kind)
	out := hits[:0]
	for _, h := range hits {
		if h.ID != id {
			out = append(out, h)
		}
	}
	return out
}

// NewContacts returns the circles of the given kind that started overlapping
// id since the previous call, nearest first. Circles that stay in contact are
// reported once.
func (w *World) NewContacts(id types.EntityID, kind Kind) []types.EntityID {
	if _, ok := w.entries[id]; !ok {
		return nil
	}
	prev := w.contacts[id]
	current := make(map[types.EntityID]struct{})
	var entered []types.EntityID
	for _, h := range w.Overlaps(id, kind) {
		current[h.ID] = struct{}{}
		if _, seen := prev[h.ID]; !seen {
			entered = append(entered, h.ID)
		}
	}
	w.contacts[id] = current
	return entered
}
