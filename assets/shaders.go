package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// TintShader colorizes tank hulls per player
	TintShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	if TintShader != nil {
		return nil
	}

	tintSrc, err := shaderFS.ReadFile("shaders/tint.kage")
	if err != nil {
		return err
	}
	TintShader, err = ebiten.NewShader(tintSrc)
	if err != nil {
		return err
	}

	return nil
}
