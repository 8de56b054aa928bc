package component

import "github.com/yorkpirates/seacore/internal/data"

// RenderLayer orders draw passes. Lower layers draw first.
type RenderLayer uint8

const (
	LayerBackground RenderLayer = iota
	LayerTransparent
	LayerForeground
	LayerUI
)

// Renderable holds what the renderer needs to draw an entity. The sprite is
// a handle only; pixels live with the external asset runtime.
type Renderable struct {
	Layer   RenderLayer
	Sprite  data.Sprite
	Visible bool
}

func NewRenderable(layer RenderLayer, sprite data.Sprite) *Renderable {
	return &Renderable{Layer: layer, Sprite: sprite, Visible: true}
}

// SetSprite swaps the active sprite. A zero sprite is ignored so the last
// good frame stays on screen.
func (r *Renderable) SetSprite(s data.Sprite) {
	if s.IsZero() {
		return
	}
	r.Sprite = s
}

// Key returns the active sprite key.
func (r *Renderable) Key() string { return r.Sprite.Key }
