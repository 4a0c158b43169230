package mappers

import (
	"testing"

	"github.com/fenwicklabs/gintendo/ines"
	"github.com/fenwicklabs/gintendo/ppu"
)

func TestNewRejectsUnsupportedMapper(t *testing.T) {
	rom := &ines.ROM{PRG: make([]byte, 0x4000), CHR: make([]byte, 0x2000), Mapper: 1}
	if _, err := New(rom); err == nil {
		t.Errorf("expected an error for mapper 1")
	}
}

func TestMapper0PrgMirrorsA16KiBBank(t *testing.T) {
	prg := make([]byte, 0x4000) // 16 KiB: should mirror across 0x8000-0xFFFF
	prg[0] = 0xAA
	rom := &ines.ROM{PRG: prg, CHR: make([]byte, 0x2000), Mapper: 0}

	m, err := New(rom)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if got := m.PrgRead(0x0000); got != 0xAA {
		t.Errorf("PrgRead(0x0000) = %02x, want 0xaa", got)
	}
	if got := m.PrgRead(0x4000); got != 0xAA {
		t.Errorf("PrgRead(0x4000) = %02x, want 0xaa (16 KiB bank should mirror)", got)
	}
}

func TestMapper0ChrRAMIsWritable(t *testing.T) {
	rom := &ines.ROM{PRG: make([]byte, 0x4000), CHR: make([]byte, 0x2000), ChrIsRAM: true, Mapper: 0}
	m, _ := New(rom)

	if !m.Writable() {
		t.Errorf("expected CHR RAM to report writable")
	}
	m.Write(0x10, 0x42)
	if got := m.Read(0x10); got != 0x42 {
		t.Errorf("Read(0x10) = %02x, want 0x42", got)
	}
}

func TestMapper0ChrROMIsNotWritable(t *testing.T) {
	chr := make([]byte, 0x2000)
	chr[0x10] = 0x99
	rom := &ines.ROM{PRG: make([]byte, 0x4000), CHR: chr, ChrIsRAM: false, Mapper: 0}
	m, _ := New(rom)

	if m.Writable() {
		t.Errorf("expected CHR ROM to report not writable")
	}
	m.Write(0x10, 0x42) // should be a silent no-op
	if got := m.Read(0x10); got != 0x99 {
		t.Errorf("Read(0x10) = %02x, want 0x99 (write should have been ignored)", got)
	}
}

func TestMapper0MirroringPassthrough(t *testing.T) {
	rom := &ines.ROM{PRG: make([]byte, 0x4000), CHR: make([]byte, 0x2000), Mapper: 0, Mirroring: ppu.Vertical}
	m, _ := New(rom)

	if got := m.Mirroring(); got != ppu.Vertical {
		t.Errorf("Mirroring() = %v, want Vertical", got)
	}
}
