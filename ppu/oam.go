package ppu

// OAM is the PPU's 256-byte sprite memory: 64 entries of 4 bytes each
// (Y, tile, attributes, X). Unlike the teacher's oam.go, which decoded
// every write into a struct, this stores the raw bytes (OAMDATA/OAM-DMA
// just index into it) and decodes lazily in decodeSprite, which the
// renderer calls once per sprite per frame.
type OAM [OAMSize]uint8

type priority uint8

const (
	front priority = iota
	back
)

// sprite is one decoded OAM entry, grounded on the teacher's oam.go
// bit layout for the attribute byte.
type sprite struct {
	y, tileID, x uint8
	palette      uint8
	renderP      priority
	flipH, flipV bool
}

func decodeSprite(o *OAM, index int) sprite {
	base := index * 4
	attr := o[base+2]
	return sprite{
		y:       o[base],
		tileID:  o[base+1],
		palette: attr & 0x03,
		renderP: priority((attr & 0x20) >> 5),
		flipH:   attr&0x40 != 0,
		flipV:   attr&0x80 != 0,
		x:       o[base+3],
	}
}
