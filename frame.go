package pixelzero

// Frame records the draw calls for one rendered frame. Commands are
// replayed in order by Renderer.Render; nothing is rasterized until then.
type Frame struct {
	commands   []drawCommand
	clearColor RGBA
}

// NewFrame creates an empty frame with a black clear color.
func NewFrame() *Frame {
	return &Frame{clearColor: Black}
}

// SetClearColor sets the color the virtual frame is cleared to before the
// frame's commands run.
func (f *Frame) SetClearColor(c RGBA) {
	f.clearColor = c
}

// DrawSprite draws a texture at its natural size with its top-left corner
// at position.
func (f *Frame) DrawSprite(tex *Texture, position Vec2) {
	f.commands = append(f.commands, spriteCommand{
		tex:       tex,
		placement: SpritePlacement{Position: position, Size: tex.Size()},
		tint:      NoTint,
	})
}

// DrawSpriteEx draws a texture with an explicit placement and tint.
func (f *Frame) DrawSpriteEx(tex *Texture, placement SpritePlacement, tint Tint) {
	f.commands = append(f.commands, spriteCommand{
		tex:       tex,
		placement: placement,
		tint:      tint,
	})
}

// DrawLine strokes the segment from a to b with the given thickness and
// color. Zero-length segments draw nothing.
func (f *Frame) DrawLine(a, b Vec2, thickness float64, color RGBA) {
	f.commands = append(f.commands, lineCommand{
		placement: LinePlacementFromPoints(a, b),
		thickness: thickness,
		color:     color,
	})
}

// DrawText draws a string with the built-in bitmap font, with the baseline
// start at position.
func (f *Frame) DrawText(text string, position Vec2, color RGBA) {
	f.commands = append(f.commands, textCommand{
		text:     text,
		position: position,
		color:    color,
	})
}

// Reset clears the recorded commands so the frame can be reused.
func (f *Frame) Reset() {
	f.commands = f.commands[:0]
}

type drawCommand interface {
	execute(r *Renderer)
}

type spriteCommand struct {
	tex       *Texture
	placement SpritePlacement
	tint      Tint
}

func (c spriteCommand) execute(r *Renderer) {
	r.drawSprite(c.tex, c.placement, c.tint)
}

type lineCommand struct {
	placement LinePlacement
	thickness float64
	color     RGBA
}

func (c lineCommand) execute(r *Renderer) {
	r.drawLine(c.placement, c.thickness, c.color)
}

type textCommand struct {
	text     string
	position Vec2
	color    RGBA
}

func (c textCommand) execute(r *Renderer) {
	r.drawText(c.text, c.position, c.color)
}
