package systems

import (
	"github.com/openarena/tankarena/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

const zoomInDuration = 0.6 // seconds

// StartZoomIn arms the round-start zoom animation.
func StartZoomIn(proj *components.ProjectionData) {
	proj.Zoom = 0
	proj.ZoomIn = gween.New(0, 1, zoomInDuration, ease.OutQuad)
}

// UpdateProjection advances the zoom tween. The view matrix itself is
// rebuilt during draw, where the real frame size is known.
func UpdateProjection(e *ecs.ECS) {
	entry, ok := components.Projection.First(e.World)
	if !ok {
		return
	}
	proj := components.Projection.Get(entry)

	if proj.ZoomIn == nil {
		proj.Zoom = 1
		return
	}
	zoom, done := proj.ZoomIn.Update(1.0 / 60.0)
	proj.Zoom = zoom
	if done {
		proj.ZoomIn = nil
	}
}
