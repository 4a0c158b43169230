// Package mappers implements the cartridge address-decoding logic that
// sits between the bus/PPU and a loaded ROM image. Only mapper 0
// (NROM) is implemented; spec.md's Non-goals exclude bank-switching
// mappers.
package mappers

import (
	"github.com/pkg/errors"

	"github.com/fenwicklabs/gintendo/ines"
	"github.com/fenwicklabs/gintendo/ppu"
)

// Mapper serves PRG reads to the bus and, via the embedded ppu.CHR,
// pattern-table reads/writes to the PPU. Grounded on the teacher's
// mappers.Mapper interface, trimmed to what mapper 0 and this core's
// bus/PPU actually call -- the teacher's base-RAM passthrough and
// multi-mapper registry are dropped since WRAM lives on the bus, not
// the cartridge, and only one mapper ID is ever constructed.
type Mapper interface {
	ppu.CHR
	PrgRead(addr uint16) uint8
	Mirroring() ppu.Mirroring
	HasSRAM() bool
}

// New returns the Mapper for rom. rom.Mapper has already been checked
// by ines.Load, but New re-validates so a Mapper is never constructed
// for an unsupported ID even if callers bypass the loader.
func New(rom *ines.ROM) (Mapper, error) {
	switch rom.Mapper {
	case 0:
		return &mapper0{rom: rom}, nil
	default:
		return nil, errors.Errorf("mappers: unsupported mapper %d", rom.Mapper)
	}
}

// mapper0 implements NROM: PRG is a fixed 16 or 32 KiB bank mirrored to
// fill 0x8000-0xFFFF, CHR is a fixed 8 KiB bank (ROM or RAM per the
// header), and there is no bank switching. Grounded on the teacher's
// mapper0.go, fixing its MemRead (which discarded the PrgRead return
// value) and its PrgWrite (silently ignoring writes instead of letting
// the bus treat a PRG write as a programming error per spec.md §7).
type mapper0 struct {
	rom *ines.ROM
}

func (m *mapper0) PrgRead(addr uint16) uint8 {
	return m.rom.PRG[int(addr)%len(m.rom.PRG)]
}

func (m *mapper0) Read(addr uint16) uint8 {
	return m.rom.CHR[int(addr)%len(m.rom.CHR)]
}

func (m *mapper0) Write(addr uint16, v uint8) {
	if m.rom.ChrIsRAM {
		m.rom.CHR[int(addr)%len(m.rom.CHR)] = v
	}
}

func (m *mapper0) Writable() bool {
	return m.rom.ChrIsRAM
}

func (m *mapper0) Mirroring() ppu.Mirroring {
	return m.rom.Mirroring
}

func (m *mapper0) HasSRAM() bool {
	return m.rom.HasSRAM
}
