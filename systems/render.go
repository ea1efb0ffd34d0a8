package systems

import (
	"image"
	"image/color"
	"time"

	"github.com/openarena/tankarena/assets"
	"github.com/openarena/tankarena/components"
	cfg "github.com/openarena/tankarena/config"
	"github.com/openarena/tankarena/gamemath"
	"github.com/openarena/tankarena/maze"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Reusable buffers so the render path stays allocation-free per frame.
var (
	wallVerts      []ebiten.Vertex
	wallIndices    []uint16
	wallIndicesFor *maze.Mesh
	tankVerts      []ebiten.Vertex
)

// tankQuads are the hull and barrel in tank-local coordinates. Forward is
// +y before rotation; the instance transform places them in the arena.
var tankQuads = [][4][2]float32{
	hullQuad(),
	barrelQuad(),
}

var tankQuadIndices = []uint16{
	0, 1, 2, 0, 2, 3, // hull
	4, 5, 6, 4, 6, 7, // barrel
}

func hullQuad() [4][2]float32 {
	hw := float32(cfg.Tank.HalfWidth)
	hh := float32(cfg.Tank.HalfHeight)
	return [4][2]float32{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
}

func barrelQuad() [4][2]float32 {
	hh := float32(cfg.Tank.HalfHeight)
	const bw, bl = 0.05, 0.18
	return [4][2]float32{{-bw, hh}, {bw, hh}, {bw, hh + bl}, {-bw, hh + bl}}
}

// clipToScreen maps a clip-space position to pixel coordinates. Clip y
// points up, screen y points down.
func clipToScreen(clip [4]float32, w, h float32) (float32, float32) {
	x := (clip[0]/clip[3] + 1) * 0.5 * w
	y := (1 - clip[1]/clip[3]) * 0.5 * h
	return x, y
}

// DrawArena rebuilds the shared view matrix for this frame and renders the
// wall mesh through it. Runs before DrawTanks in the renderer order.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(entry)
	proj := components.Projection.Get(entry)

	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	viewProj := gamemath.Projection(w, h, arena.Mesh.Width, arena.Mesh.Height)
	if proj.Zoom != 1 {
		viewProj = viewProj.AppendScaling(proj.Zoom)
	}
	proj.ViewProj = viewProj

	mesh := &arena.Mesh
	wallVerts = wallVerts[:0]
	wallColor := cfg.WallGray
	cr := float32(wallColor.R) / 255
	cg := float32(wallColor.G) / 255
	cb := float32(wallColor.B) / 255
	for _, v := range mesh.Vertices {
		clip := gamemath.TransformStaticVertex(viewProj, v)
		sx, sy := clipToScreen(clip, w, h)
		wallVerts = append(wallVerts, ebiten.Vertex{
			DstX: sx, DstY: sy,
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1,
		})
	}

	if wallIndicesFor != mesh {
		wallIndices = make([]uint16, len(mesh.Indices))
		for i, idx := range mesh.Indices {
			wallIndices[i] = uint16(idx)
		}
		wallIndicesFor = mesh
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(wallVerts, wallIndices, whiteSubImage, op)
}

// DrawTanks renders every tank instance, extrapolated forward from the
// last committed snapshot so motion stays smooth between simulation ticks.
func DrawTanks(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	roster := components.Roster.Get(entry)
	proj := components.Projection.Get(entry)
	if len(roster.Instances) == 0 {
		return
	}

	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())

	elapsed := time.Since(roster.LastUpdate).Seconds()
	forecast := gamemath.Forecast(float32(elapsed), float32(roster.TickDt))

	for i, inst := range roster.Instances {
		tint := cfg.PlayerColors[i%len(cfg.PlayerColors)]

		tankVerts = tankVerts[:0]
		for _, quad := range tankQuads {
			for _, v := range quad {
				clip := gamemath.TransformInstanceVertex(proj.ViewProj, inst, v, forecast)
				sx, sy := clipToScreen(clip, w, h)
				tankVerts = append(tankVerts, ebiten.Vertex{
					DstX: sx, DstY: sy,
					SrcX: 1, SrcY: 1,
					ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
				})
			}
		}

		op := &ebiten.DrawTrianglesShaderOptions{
			Uniforms: map[string]any{
				"Tint": []float32{
					float32(tint.R) / 255,
					float32(tint.G) / 255,
					float32(tint.B) / 255,
					1,
				},
			},
			AntiAlias: true,
		}
		screen.DrawTrianglesShader(tankVerts, tankQuadIndices, assets.TintShader, op)
	}
}
