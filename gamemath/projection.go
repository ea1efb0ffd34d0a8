package gamemath

// Viewport constants inherited from the classic 692x480 movie: 10px of
// padding on every side and an 80px band at the bottom reserved for the HUD.
const (
	MovieWidth     = 692.0
	MovieHeight    = 480.0
	HeightToBottom = 80.0
	MoviePadding   = 10.0

	viewWidth  = MovieWidth - MoviePadding
	viewHeight = MovieHeight - MoviePadding - HeightToBottom

	// Wall meshes overhang the lattice by 1/16 on each side.
	mazeMargin = 0.125
)

// Projection builds the shared view transform for a frame: the maze of
// mazeW x mazeH cells is centered in the movie viewport at whatever scale
// fits, then the movie is scaled to the actual window, preserving aspect.
// Output is clip space with y up. Refreshed once per frame by the renderer
// and broadcast to every draw in that frame.
func Projection(frameW, frameH float32, mazeW, mazeH int) Mat4 {
	mw := float32(mazeW) + mazeMargin
	mh := float32(mazeH) + mazeMargin

	basicScale := min32(viewWidth/mw, viewHeight/mh)
	windowScale := min32(frameW/MovieWidth, frameH/MovieHeight) * 2

	return Identity().
		AppendTranslation(-float32(mazeW)/2, -float32(mazeH)/2, 0).
		AppendScaling(basicScale).
		AppendTranslation(0, HeightToBottom/2, 0).
		AppendNonuniformScaling(windowScale/frameW, windowScale/frameH, 1)
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
