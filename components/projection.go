package components

import (
	"github.com/openarena/tankarena/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ProjectionData carries the shared view transform for the frame. ViewProj
// is rebuilt every frame from the window size and arena dimensions; ZoomIn
// animates the arena scaling in at round start.
type ProjectionData struct {
	ViewProj gamemath.Mat4
	Zoom     float32
	ZoomIn   *gween.Tween
}

var Projection = donburi.NewComponentType[ProjectionData]()
