// Package bus implements the NES's memory-mapped I/O fabric: the
// address-decoding glue that routes the CPU's 16-bit address space to
// work RAM, the PPU's register ports, the joypads, and the cartridge
// mapper. Grounded on the teacher's console/bus.go routing table, with
// two deliberate departures: the teacher's Bus also imported ebiten
// directly (window setup in New, and Layout/Draw/Update satisfying
// ebiten.Game) -- that presentation coupling is dropped here and moved
// to cmd/gintendo, so this package stays headlessly testable. And the
// teacher's push-based TriggerNMI (the bus calling into the CPU) is
// replaced by the pull-based PollNMI the CPU calls on itself, per
// spec.md §9's cyclic-reference strategy: the bus owns the PPU and
// controllers, the CPU owns the bus, and NMI flows from PPU to CPU only
// by the CPU asking.
package bus

import (
	"fmt"

	"github.com/fenwicklabs/gintendo/controller"
	"github.com/fenwicklabs/gintendo/mappers"
	"github.com/fenwicklabs/gintendo/ppu"
)

const (
	wramSize     = 0x0800
	oamDMACycles = 513
)

// ProgrammingError marks a bug in the loaded ROM or in the core itself:
// a write to the read-only PRG window. spec.md §7 treats this as
// fatal and never recovered; cpu.CPU.Run wraps it with the program
// counter before handing it back to the host. Reads and writes to the
// open-bus ranges (APU registers, the unmapped 0x4018-0x7FFF gap) are
// deliberately NOT routed through ProgrammingError -- see the routing
// table below and DESIGN.md for why that reading of spec.md §4.1 was
// chosen over §7's stricter wording.
type ProgrammingError struct {
	Addr uint16
	Op   string
}

func (e *ProgrammingError) Error() string {
	return fmt.Sprintf("bus: %s to read-only PRG at %#04x", e.Op, e.Addr)
}

// FrameCallback is invoked exactly once per frame, at the instant the
// PPU's VBlank/NMI edge fires, carrying a read-only view of the PPU (for
// callers that want register state alongside the framebuffer), a
// mutable view of controller 1 for input polling, and the rendered
// frame. The bus treats it as non-reentrant: emulation does not resume
// until it returns, and it must not call back into the CPU or bus.
type FrameCallback func(view *ppu.PPU, pad1 *controller.Controller, fb ppu.Framebuffer)

// Bus is the addressable-memory fabric connecting the CPU to work RAM,
// the PPU, the joypads, and the cartridge mapper. It implements
// cpu.Bus.
type Bus struct {
	ppu    *ppu.PPU
	mapper mappers.Mapper
	pad1   *controller.Controller
	pad2   *controller.Controller
	ram    [wramSize]uint8

	onFrame  FrameCallback
	dmaStall int
}

// New returns a Bus driving the given mapper's PRG/CHR. The PPU is
// constructed here, wired to the mapper's CHR view and mirroring mode,
// so the bus is the sole owner of both -- callers never see the PPU
// except through the frame callback.
func New(m mappers.Mapper) *Bus {
	return &Bus{
		mapper: m,
		ppu:    ppu.New(m, m.Mirroring()),
		pad1:   controller.New(),
		pad2:   controller.New(),
	}
}

// OnFrame installs the frame-ready callback, replacing any previous one.
func (b *Bus) OnFrame(cb FrameCallback) {
	b.onFrame = cb
}

// Controller1 and Controller2 expose the joypads so the host can set
// button state between frames, typically from inside the frame
// callback.
func (b *Bus) Controller1() *controller.Controller { return b.pad1 }
func (b *Bus) Controller2() *controller.Controller { return b.pad2 }

// Read implements cpu.Bus. Routing table (spec.md §4.1):
//
//	0x0000-0x1FFF  WRAM, mirrored every 0x0800
//	0x2000-0x3FFF  PPU ports, mirrored every 8 bytes
//	0x4014         open bus on read (OAM-DMA is write-only)
//	0x4016         controller 1
//	0x4017         controller 2
//	0x4000-0x4017  (remaining) APU registers, open bus
//	0x4018-0x7FFF  unmapped, open bus
//	0x8000-0xFFFF  cartridge PRG, mirrored if 16 KiB
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= 0x1FFF:
		return b.ram[addr&0x07FF]
	case addr <= 0x3FFF:
		return b.readPPU(0x2000 + addr&0x0007)
	case addr == 0x4016:
		return b.pad1.Read()
	case addr == 0x4017:
		return b.pad2.Read()
	case addr <= 0x7FFF:
		return 0
	default:
		return b.mapper.PrgRead(addr)
	}
}

// Write implements cpu.Bus. Writes to 0x8000-0xFFFF are rejected: PRG
// is read-only in this core, and a write there panics with a
// *ProgrammingError rather than being silently dropped, so the host can
// abort with the offending address instead of running on into garbage
// state.
func (b *Bus) Write(addr uint16, v uint8) {
	switch {
	case addr <= 0x1FFF:
		b.ram[addr&0x07FF] = v
	case addr <= 0x3FFF:
		b.writePPU(0x2000+addr&0x0007, v)
	case addr == 0x4014:
		b.oamDMA(v)
	case addr == 0x4016:
		b.pad1.Write(v)
		b.pad2.Write(v)
	case addr <= 0x7FFF:
		// remaining APU range and the unmapped 0x4018-0x7FFF gap: dropped
	default:
		// panics as a plain *ProgrammingError (not wrapped) so callers
		// that recover it -- cpu.Run, and this package's own tests --
		// can type-assert on it directly; cpu.Run is the one that adds
		// stack-trace and PC context via errors.Wrapf.
		panic(&ProgrammingError{Addr: addr, Op: "write"})
	}
}

func (b *Bus) readPPU(addr uint16) uint8 {
	switch addr {
	case ppu.PPUSTATUS:
		return b.ppu.ReadStatus()
	case ppu.OAMDATA:
		return b.ppu.ReadOAMData()
	case ppu.PPUDATA:
		return b.ppu.ReadData()
	default:
		return 0 // write-only ports read back as open bus
	}
}

func (b *Bus) writePPU(addr uint16, v uint8) {
	switch addr {
	case ppu.PPUCTRL:
		b.ppu.WriteControl(v)
	case ppu.PPUMASK:
		b.ppu.WriteMask(v)
	case ppu.OAMADDR:
		b.ppu.WriteOAMAddr(v)
	case ppu.OAMDATA:
		b.ppu.WriteOAMData(v)
	case ppu.PPUSCROLL:
		b.ppu.WriteScroll(v)
	case ppu.PPUADDR:
		b.ppu.WriteVRAMAddr(v)
	case ppu.PPUDATA:
		b.ppu.WriteData(v)
	}
	// a write to PPUSTATUS (0x2002) is ignored
}

// oamDMA copies 256 bytes starting at page<<8 into OAM, through
// WriteOAMData so the destination wraps at the PPU's current OAM
// address exactly as spec.md's invariant requires -- the OAM-address
// register is an unwrapped uint8 internally, so the wraparound falls
// out of the existing port method rather than needing to be
// reimplemented here. Charges 513 cycles, folded into the next Tick
// rather than applied immediately, since the bus has no way to push
// cycles back onto the CPU mid-instruction.
func (b *Bus) oamDMA(page uint8) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		b.ppu.WriteOAMData(b.Read(base + uint16(i)))
	}
	b.dmaStall += oamDMACycles
}

// Tick implements cpu.Bus: it advances the PPU by 3 dots per CPU cycle
// (plus any OAM-DMA stall accrued since the last call), and delivers
// the frame-ready callback at the instant Tick observes the NMI edge:
// once per PPU frame while NMI generation is enabled, and not at all
// while it is disabled.
func (b *Bus) Tick(cpuCycles uint8) {
	total := int(cpuCycles) + b.dmaStall
	b.dmaStall = 0

	if nmiEdge := b.ppu.Tick(total * 3); nmiEdge && b.onFrame != nil {
		b.onFrame(b.ppu, b.pad1, b.ppu.Render())
	}
}

// PollNMI implements cpu.Bus, delegating to the PPU's one-shot pending
// flag. The CPU calls this once between instructions; nothing else in
// this package observes NMI state.
func (b *Bus) PollNMI() bool {
	return b.ppu.TakeNMI()
}
