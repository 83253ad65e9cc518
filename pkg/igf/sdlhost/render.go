package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/ririf4/IGF/pkg/igf"
	"github.com/ririf4/IGF/pkg/igf/constants"
)

// TooltipKey is the metadata key the renderer reads for hover text.
// Items without it fall back to their label.
const TooltipKey igf.MetadataKey = "sdlhost.tooltip"

const (
	titleBandHeight = 64
	labelBandHeight = 40
	iconInset       = 12
)

// windowSize computes the fixed window dimensions for the largest
// supported grid.
func (h *Host) windowSize(maxSlots int) (int32, int32) {
	slot := h.opts.slotSize()
	gap := h.opts.slotGap()
	m := h.opts.Margins
	rows := int32(maxSlots / constants.RowWidth)

	width := m.Left + m.Right + constants.RowWidth*slot + (constants.RowWidth-1)*gap
	height := m.Top + m.Bottom + titleBandHeight + labelBandHeight + rows*slot + (rows-1)*gap
	return width, height
}

// slotRect returns the pixel rectangle of a slot index.
func (h *Host) slotRect(index int) sdl.Rect {
	slot := h.opts.slotSize()
	gap := h.opts.slotGap()
	m := h.opts.Margins
	col := int32(index % constants.RowWidth)
	row := int32(index / constants.RowWidth)

	return sdl.Rect{
		X: m.Left + col*(slot+gap),
		Y: m.Top + titleBandHeight + row*(slot+gap),
		W: slot,
		H: slot,
	}
}

// slotAt maps window coordinates to a slot index of the active surface,
// or -1 when the point is outside the grid or in a gap.
func (h *Host) slotAt(x, y int32) int {
	if h.active == nil {
		return -1
	}
	slot := h.opts.slotSize()
	gap := h.opts.slotGap()
	m := h.opts.Margins

	gx := x - m.Left
	gy := y - m.Top - titleBandHeight
	if gx < 0 || gy < 0 {
		return -1
	}
	col := gx / (slot + gap)
	row := gy / (slot + gap)
	if col >= constants.RowWidth {
		return -1
	}
	// Points in the gap to the right of or below a slot hit nothing.
	if gx%(slot+gap) >= slot || gy%(slot+gap) >= slot {
		return -1
	}
	index := int(row)*constants.RowWidth + int(col)
	if index >= h.active.Size() {
		return -1
	}
	return index
}

func (h *Host) renderFrame() {
	bg := parseColor(h.theme.Background, sdl.Color{R: 26, G: 26, B: 29, A: 255})
	h.renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	h.renderer.Clear()

	if h.active == nil {
		return
	}

	titleColor := parseColor(h.theme.TitleColor, sdl.Color{R: 255, G: 255, B: 255, A: 255})
	h.drawText(h.titleFontOrDefault(), h.active.Title(), h.opts.Margins.Left, h.opts.Margins.Top, titleColor)

	slotColor := parseColor(h.theme.SlotColor, sdl.Color{R: 43, G: 43, B: 48, A: 255})
	borderColor := parseColor(h.theme.SlotBorder, sdl.Color{R: 68, G: 68, B: 76, A: 255})

	for i := 0; i < h.active.Size(); i++ {
		rect := h.slotRect(i)
		item := h.active.itemAt(i)

		fill := slotColor
		var style KindStyle
		if item != nil {
			if s, ok := h.theme.kindStyle(item.Kind()); ok {
				style = s
				fill = parseColor(s.Color, slotColor)
			}
		}

		h.renderer.SetDrawColor(fill.R, fill.G, fill.B, fill.A)
		h.renderer.FillRect(&rect)
		h.renderer.SetDrawColor(borderColor.R, borderColor.G, borderColor.B, borderColor.A)
		h.renderer.DrawRect(&rect)

		if style.Icon != "" {
			h.drawIcon(style.Icon, rect)
		}
	}

	h.drawHoverLabel()
}

func (h *Host) drawIcon(path string, rect sdl.Rect) {
	texture := h.icons.get(path)
	if texture == nil {
		rendered, err := renderSVGTexture(h.renderer, path, rect.W-2*iconInset)
		if err != nil {
			h.log.Debug("icon unavailable", "path", path, "error", err)
			return
		}
		h.icons.set(path, rendered)
		texture = rendered
	}
	dst := sdl.Rect{
		X: rect.X + iconInset,
		Y: rect.Y + iconInset,
		W: rect.W - 2*iconInset,
		H: rect.H - 2*iconInset,
	}
	h.renderer.Copy(texture, nil, &dst)
}

// drawHoverLabel writes the hovered item's tooltip or label into the
// band below the grid.
func (h *Host) drawHoverLabel() {
	if h.hoverSlot < 0 || h.active == nil {
		return
	}
	item := h.active.itemAt(h.hoverSlot)
	if item == nil {
		return
	}
	text := item.Label()
	if v, ok := item.Metadata(TooltipKey); ok {
		if s, ok := v.(string); ok {
			text = s
		}
	}
	if text == "" {
		return
	}

	rows := int32(h.active.Size() / constants.RowWidth)
	slot := h.opts.slotSize()
	gap := h.opts.slotGap()
	y := h.opts.Margins.Top + titleBandHeight + rows*slot + (rows-1)*gap + gap
	labelColor := parseColor(h.theme.LabelColor, sdl.Color{R: 208, G: 208, B: 216, A: 255})
	h.drawText(h.font, text, h.opts.Margins.Left, y, labelColor)
}

func (h *Host) titleFontOrDefault() *ttf.Font {
	if h.titleFont != nil {
		return h.titleFont
	}
	return h.font
}

func (h *Host) drawText(font *ttf.Font, text string, x, y int32, color sdl.Color) {
	if font == nil || text == "" {
		return
	}
	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return
	}
	defer surface.Free()
	texture, err := h.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return
	}
	defer texture.Destroy()
	h.renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})
}
