package ines

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fenwicklabs/gintendo/ppu"
)

// buildROM assembles a minimal iNES image for tests: header, optional
// trainer, prgBlocks*16KiB of PRG, chrBlocks*8KiB of CHR (omitted
// entirely when chrBlocks is 0, signaling CHR RAM).
func buildROM(t *testing.T, flags6, flags7 uint8, prgBlocks, chrBlocks int, trainer bool) string {
	t.Helper()

	h := []byte{'N', 'E', 'S', 0x1A, byte(prgBlocks), byte(chrBlocks), flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
	var buf []byte
	buf = append(buf, h...)
	if trainer {
		buf = append(buf, make([]byte, trainerSize)...)
	}
	buf = append(buf, make([]byte, prgBlockSize*prgBlocks)...)
	buf = append(buf, make([]byte, chrBlockSize*chrBlocks)...)

	path := filepath.Join(t.TempDir(), "test.nes")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("writing test ROM: %v", err)
	}
	return path
}

func TestLoadValidMapper0ROM(t *testing.T) {
	path := buildROM(t, 0x01, 0x00, 2, 1, false) // vertical mirroring, mapper 0

	rom, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if len(rom.PRG) != 2*prgBlockSize {
		t.Errorf("PRG size = %d, want %d", len(rom.PRG), 2*prgBlockSize)
	}
	if len(rom.CHR) != chrBlockSize {
		t.Errorf("CHR size = %d, want %d", len(rom.CHR), chrBlockSize)
	}
	if rom.ChrIsRAM {
		t.Errorf("expected CHR ROM, not RAM, when chrSize > 0")
	}
	if rom.Mirroring != ppu.Vertical {
		t.Errorf("Mirroring = %v, want Vertical", rom.Mirroring)
	}
	if rom.Mapper != 0 {
		t.Errorf("Mapper = %d, want 0", rom.Mapper)
	}
}

func TestLoadCHRRAMWhenChrSizeZero(t *testing.T) {
	path := buildROM(t, 0x00, 0x00, 1, 0, false)

	rom, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !rom.ChrIsRAM {
		t.Errorf("expected CHR RAM when header chrSize is 0")
	}
	if len(rom.CHR) != chrBlockSize {
		t.Errorf("CHR RAM size = %d, want %d", len(rom.CHR), chrBlockSize)
	}
}

func TestLoadSkipsTrainer(t *testing.T) {
	path := buildROM(t, flagTrainer, 0x00, 1, 1, true)

	rom, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(rom.PRG) != prgBlockSize {
		t.Errorf("PRG size = %d, want %d (trainer bytes should not leak into PRG)", len(rom.PRG), prgBlockSize)
	}
}

func TestLoadRejectsBadSignature(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.nes")
	buf := append([]byte("BADX"), make([]byte, 12)...)
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("writing bad ROM: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Errorf("expected an error for a bad signature")
	}
}

func TestLoadRejectsUnsupportedMapper(t *testing.T) {
	path := buildROM(t, 0x10, 0x00, 1, 1, false) // mapper nibble 1 -> mapper 1

	if _, err := Load(path); err == nil {
		t.Errorf("expected an error for mapper 1")
	}
}

func TestLoadRejectsTruncatedPayload(t *testing.T) {
	h := []byte{'N', 'E', 'S', 0x1A, 2, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	path := filepath.Join(t.TempDir(), "truncated.nes")
	// Only write the header, no PRG/CHR payload at all.
	if err := os.WriteFile(path, h, 0o644); err != nil {
		t.Fatalf("writing truncated ROM: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Errorf("expected an error for a truncated payload")
	}
}
