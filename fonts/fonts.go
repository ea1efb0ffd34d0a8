package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Body  FontName = "body"
	Title FontName = "title"
	Small FontName = "small"
	HUD   FontName = "hud"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadFonts registers every face the game uses. Call once at startup.
func LoadFonts() {
	LoadFontWithSize(Body, goregular.TTF, 16)
	LoadFontWithSize(Title, goregular.TTF, 42)
	LoadFontWithSize(Small, goregular.TTF, 12)
	LoadFontWithSize(HUD, goregular.TTF, 20)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, _ := truetype.Parse(ttf)
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
