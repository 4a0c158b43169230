package ppu

// Render composites a full 256x240 frame from the PPU's current VRAM,
// palette, OAM and scroll/control state. It mutates nothing -- two
// calls against unchanged state produce identical output -- and is
// grounded on original_source's render.rs/render_util.rs, re-expressed
// without that implementation's mid-frame scanline clipping, since this
// core renders one full frame per VBlank rather than dot-by-dot.
func (p *PPU) Render() Framebuffer {
	var fb Framebuffer
	p.renderBackground(&fb)
	p.renderSprites(&fb)
	return fb
}

// physicalTable maps a logical nametable index (0-3, selected by
// PPUCTRL's nametable bits) onto one of the two physical 1 KiB tables,
// by the same mirroring rule nametableIndex uses for CPU-side access.
func (p *PPU) physicalTable(logical int) int {
	m := p.mirroring
	if m == FourScreen {
		m = Vertical
	}
	if m == Horizontal {
		return logical / 2
	}
	return logical % 2
}

func (p *PPU) renderBackground(fb *Framebuffer) {
	mainPhys := p.physicalTable(int(p.ctrl & ctrlNametableMask))
	secondPhys := 1 - mainPhys

	var bgBank uint16
	if p.ctrl&ctrlBGPattern != 0 {
		bgBank = 0x1000
	}

	main := p.vram[mainPhys*0x400 : mainPhys*0x400+0x400]
	second := p.vram[secondPhys*0x400 : secondPhys*0x400+0x400]

	scrollX := int(p.scroll.x)
	scrollY := int(p.scroll.y)

	p.renderNametable(fb, main, bgBank, -scrollX, -scrollY)

	switch {
	case scrollX > 0:
		p.renderNametable(fb, second, bgBank, 256-scrollX, 0)
	case scrollY > 0:
		p.renderNametable(fb, second, bgBank, 0, 240-scrollY)
	}
}

// renderNametable draws the 960 background tiles of a single logical
// nametable into fb, offset by (shiftX, shiftY); pixels landing outside
// the framebuffer are discarded by Framebuffer.set.
func (p *PPU) renderNametable(fb *Framebuffer, table []uint8, bank uint16, shiftX, shiftY int) {
	attrs := table[0x3C0:0x400]

	for i := 0; i < 0x3C0; i++ {
		tileCol := i % 32
		tileRow := i / 32
		tileIdx := uint16(table[i])
		pal := bgPalette(p, attrs, tileCol, tileRow)

		base := bank + tileIdx*16
		for y := 0; y < 8; y++ {
			upper := p.chr.Read(base + uint16(y))
			lower := p.chr.Read(base + uint16(y) + 8)

			for x := 0; x < 8; x++ {
				bit := uint(7 - x)
				value := (lower>>bit)&1<<1 | (upper>>bit)&1

				var rgb RGB
				switch value {
				case 0:
					rgb = systemPalette[p.palette[0]]
				default:
					rgb = systemPalette[pal[value]]
				}

				fb.set(shiftX+tileCol*8+x, shiftY+tileRow*8+y, rgb)
			}
		}
	}
}

// bgPalette picks the 4-color background palette for one tile from the
// attribute table: the byte at tileRow/4*8+tileCol/4 packs four
// 2-bit palette indices, one per 4x4-tile quadrant.
func bgPalette(p *PPU, attrs []uint8, tileCol, tileRow int) [4]uint8 {
	attrByte := attrs[tileRow/4*8+tileCol/4]

	var shift uint
	switch {
	case tileCol%4/2 == 0 && tileRow%4/2 == 0:
		shift = 0
	case tileCol%4/2 == 1 && tileRow%4/2 == 0:
		shift = 2
	case tileCol%4/2 == 0 && tileRow%4/2 == 1:
		shift = 4
	default:
		shift = 6
	}
	paletteIdx := (attrByte >> shift) & 0x03
	start := 1 + int(paletteIdx)*4

	return [4]uint8{p.palette[0], p.palette[start], p.palette[start+1], p.palette[start+2]}
}

// spritePalette picks the 4-color sprite palette named by a sprite's
// 2-bit palette attribute; index 0 is never read since color value 0
// is always transparent for sprites.
func spritePalette(p *PPU, idx uint8) [4]uint8 {
	start := 0x11 + int(idx)*4
	return [4]uint8{0, p.palette[start], p.palette[start+1], p.palette[start+2]}
}

func (p *PPU) renderSprites(fb *Framebuffer) {
	var spriteBank uint16
	if p.ctrl&ctrlSpritePattern != 0 {
		spriteBank = 0x1000
	}

	for i := 63; i >= 0; i-- {
		s := decodeSprite(&p.oam, i)
		if s.y == 0 && s.x == 0 {
			continue
		}
		pal := spritePalette(p, s.palette)
		base := spriteBank + uint16(s.tileID)*16

		for y := 0; y < 8; y++ {
			upper := p.chr.Read(base + uint16(y))
			lower := p.chr.Read(base + uint16(y) + 8)

			for x := 0; x < 8; x++ {
				bit := uint(7 - x)
				value := (lower>>bit)&1<<1 | (upper>>bit)&1
				if value == 0 {
					continue
				}

				px, py := x, y
				if s.flipH {
					px = 7 - x
				}
				if s.flipV {
					py = 7 - y
				}

				// OAM Y is one less than screen Y.
				fb.set(int(s.x)+px, int(s.y)+py+1, systemPalette[pal[value]])
			}
		}
	}
}
