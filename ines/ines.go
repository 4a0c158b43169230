package ines

import (
	"os"

	"github.com/pkg/errors"

	"github.com/fenwicklabs/gintendo/ppu"
)

const (
	trainerSize  = 512
	prgBlockSize = 16384
	chrBlockSize = 8192
)

// Sentinel errors callers can match with errors.Is; Load wraps these
// with path/offset context via errors.Wrapf so the CLI can both log the
// detail and make the exit-code decision spec.md §7 calls for.
var (
	ErrBadSignature      = errors.New("ines: bad signature")
	ErrUnsupportedMapper = errors.New("ines: unsupported mapper")
	ErrTruncatedPayload  = errors.New("ines: truncated ROM payload")
)

// ROM is a loaded cartridge image: PRG/CHR data plus the metadata a
// mapper needs to serve them. Grounded on the teacher's nesrom.ROM,
// trimmed to mapper-0 scope (no trainer/PlayChoice passthrough beyond
// skipping the trainer bytes on disk).
type ROM struct {
	PRG       []byte
	CHR       []byte
	ChrIsRAM  bool
	Mapper    uint8
	Mirroring ppu.Mirroring
	HasSRAM   bool
}

// Load reads path as an iNES ROM image. Only mapper 0 is supported;
// any other mapper number is a loader error, per spec.md §1/§6's
// mapper-0-only scope.
func Load(path string) (*ROM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "ines: opening %s", path)
	}
	defer f.Close()

	hb := make([]byte, headerSize)
	if _, err := readFull(f, hb); err != nil {
		return nil, errors.Wrapf(err, "ines: reading header of %s", path)
	}

	h := parseHeader(hb)
	if !h.isINesFormat() {
		return nil, errors.Wrapf(ErrBadSignature, "%s: %q", path, h.constant)
	}

	if h.hasTrainer() {
		trainer := make([]byte, trainerSize)
		if _, err := readFull(f, trainer); err != nil {
			return nil, errors.Wrapf(ErrTruncatedPayload, "%s: reading trainer: %v", path, err)
		}
	}

	prg := make([]byte, prgBlockSize*int(h.prgSize))
	if _, err := readFull(f, prg); err != nil {
		return nil, errors.Wrapf(ErrTruncatedPayload, "%s: reading PRG (%d bytes): %v", path, len(prg), err)
	}

	var chr []byte
	chrIsRAM := h.chrSize == 0
	if chrIsRAM {
		chr = make([]byte, chrBlockSize)
	} else {
		chr = make([]byte, chrBlockSize*int(h.chrSize))
		if _, err := readFull(f, chr); err != nil {
			return nil, errors.Wrapf(ErrTruncatedPayload, "%s: reading CHR (%d bytes): %v", path, len(chr), err)
		}
	}

	mapper := h.mapperNum()
	if mapper != 0 {
		return nil, errors.Wrapf(ErrUnsupportedMapper, "%s: mapper %d", path, mapper)
	}

	return &ROM{
		PRG:       prg,
		CHR:       chr,
		ChrIsRAM:  chrIsRAM,
		Mapper:    mapper,
		Mirroring: mirroringToPPU(h.mirroringMode()),
		HasSRAM:   h.hasPrgRAM(),
	}, nil
}

func mirroringToPPU(m uint8) ppu.Mirroring {
	switch m {
	case mirrorVertical:
		return ppu.Vertical
	case mirrorFourScreen:
		return ppu.FourScreen
	default:
		return ppu.Horizontal
	}
}

// readFull reads exactly len(buf) bytes or reports why it couldn't.
func readFull(f *os.File, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := f.Read(buf[n:])
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
