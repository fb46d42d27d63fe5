package dashboard

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// pixelTexture is a GPU texture backed by a CPU pixel buffer, for layers
// that render on the CPU and composite on the GPU. The zero value is inert
// until created.
type pixelTexture struct {
	tex   rl.Texture2D
	w, h  int
	ready bool
}

// newPixelTexture allocates a blank texture. Bilinear filtering keeps the
// raster smooth when DrawTo scales it up.
func newPixelTexture(w, h int) pixelTexture {
	img := rl.GenImageColor(w, h, rl.Blank)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	return pixelTexture{tex: tex, w: w, h: h, ready: true}
}

// Upload copies the pixel buffer to the GPU. The buffer must hold at
// least w*h pixels in row-major order.
func (p *pixelTexture) Upload(pix []color.RGBA) {
	if !p.ready || len(pix) < p.w*p.h {
		return
	}
	rl.UpdateTexture(p.tex, pix)
}

// DrawTo draws the texture scaled into an arbitrary screen rectangle.
func (p *pixelTexture) DrawTo(dst rl.Rectangle) {
	if !p.ready {
		return
	}
	rl.DrawTexturePro(
		p.tex,
		rl.Rectangle{X: 0, Y: 0, Width: float32(p.w), Height: float32(p.h)},
		dst,
		rl.Vector2{X: 0, Y: 0},
		0,
		rl.White,
	)
}

// Resize replaces the texture with a blank one at the new size.
func (p *pixelTexture) Resize(w, h int) {
	p.Unload()
	*p = newPixelTexture(w, h)
}

// Unload releases the texture. Safe to call on the zero value.
func (p *pixelTexture) Unload() {
	if !p.ready {
		return
	}
	rl.UnloadTexture(p.tex)
	p.ready = false
}
