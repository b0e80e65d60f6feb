package scene

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ScaleTween grows a mesh's uniform scale toward a target. Call Update(dt)
// every frame; the value is written to the mesh on each call.
type ScaleTween struct {
	tween  *gween.Tween
	target *Mesh
	Done   bool
}

// NewScaleTween animates from the mesh's current X scale to `to`.
func NewScaleTween(m *Mesh, to float64, duration time.Duration, fn ease.TweenFunc) *ScaleTween {
	if fn == nil {
		fn = ease.OutElastic
	}
	return &ScaleTween{
		tween:  gween.New(float32(m.Scale.X), float32(to), float32(duration.Seconds()), fn),
		target: m,
	}
}

// PlacementTween is the elastic scale-in of a freshly placed piece.
func PlacementTween(m *Mesh, duration time.Duration) *ScaleTween {
	m.SetUniformScale(StartScale)
	return NewScaleTween(m, 1, duration, ease.OutElastic)
}

func (t *ScaleTween) Update(dt time.Duration) {
	if t.Done {
		return
	}

	val, finished := t.tween.Update(float32(dt.Seconds()))
	t.target.SetUniformScale(float64(val))
	t.Done = finished
}

// Tweens is the set of running tweens of a view.
type Tweens struct {
	active []*ScaleTween
}

func (ts *Tweens) Add(t *ScaleTween) {
	ts.active = append(ts.active, t)
}

// Update advances every tween and drops the finished ones.
func (ts *Tweens) Update(dt time.Duration) {
	kept := ts.active[:0]
	for _, t := range ts.active {
		t.Update(dt)
		if !t.Done {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(ts.active); i++ {
		ts.active[i] = nil
	}
	ts.active = kept
}

func (ts *Tweens) Clear() {
	ts.active = nil
}

func (ts *Tweens) Len() int {
	return len(ts.active)
}
