package main

import (
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/fenwicklabs/gintendo/bus"
	"github.com/fenwicklabs/gintendo/controller"
	"github.com/fenwicklabs/gintendo/ppu"
)

// keyMap mirrors the teacher's console/controller.go key layout
// (A, B, Select, Start, Up, Down, Left, Right), relocated here since
// ebiten key polling is a presentation concern the controller package
// no longer owns -- it now takes button state from SetButtons instead
// of reaching into ebiten itself.
var keyMap = []struct {
	key    ebiten.Key
	button controller.Button
}{
	{ebiten.KeyA, controller.A},
	{ebiten.KeyB, controller.B},
	{ebiten.KeySpace, controller.Select},
	{ebiten.KeyEnter, controller.Start},
	{ebiten.KeyUp, controller.Up},
	{ebiten.KeyDown, controller.Down},
	{ebiten.KeyLeft, controller.Left},
	{ebiten.KeyRight, controller.Right},
}

// Game adapts the headless core to ebiten.Game. The core itself is
// single-threaded by contract (spec.md §5), but running it under
// ebiten means its driving goroutine and ebiten's own update/draw
// goroutine both touch shared state, so Game owns the two crossings:
// the live key snapshot (an atomic, written by Update, read inside the
// frame callback) and the latest rendered frame (guarded by a mutex,
// written by the frame callback, read by Draw). Neither the bus nor
// the controller package does any locking of its own.
type Game struct {
	b    *bus.Bus
	keys atomic.Uint32

	mu    sync.Mutex
	frame ppu.Framebuffer
}

// NewGame wires b's frame-ready callback to latch the live key
// snapshot into controller 1 and capture the rendered frame for Draw.
func NewGame(b *bus.Bus) *Game {
	g := &Game{b: b}
	b.OnFrame(func(view *ppu.PPU, pad1 *controller.Controller, fb ppu.Framebuffer) {
		pad1.SetButtons(uint8(g.keys.Load()))

		g.mu.Lock()
		g.frame = fb
		g.mu.Unlock()
	})
	return g
}

// Update polls ebiten's input state and stores it for the next frame
// callback to pick up. It is the only place in this program that calls
// ebiten.IsKeyPressed, matching ebiten's contract that input queries
// belong in Update.
func (g *Game) Update() error {
	var pressed uint8
	for _, m := range keyMap {
		if ebiten.IsKeyPressed(m.key) {
			pressed |= uint8(m.button)
		}
	}
	g.keys.Store(uint32(pressed))
	return nil
}

// Draw blits the most recently captured frame to screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	fb := g.frame
	g.mu.Unlock()

	for y := 0; y < ppu.Height; y++ {
		for x := 0; x < ppu.Width; x++ {
			i := (y*ppu.Width + x) * 3
			screen.Set(x, y, color.RGBA{R: fb[i], G: fb[i+1], B: fb[i+2], A: 0xFF})
		}
	}
}

// Layout pins the window to the NES's native resolution, same
// reasoning as the teacher's Bus.Layout: let ebiten scale the window
// rather than re-rendering at an arbitrary size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.Width, ppu.Height
}
