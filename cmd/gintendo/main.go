// Command gintendo runs a mapper-0 NES ROM. It is the only package in
// this module that imports ebiten: everything under it (bus, cpu, ppu,
// controller, ines, mappers) is presenter-agnostic and can run headless.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fenwicklabs/gintendo/bus"
	"github.com/fenwicklabs/gintendo/config"
	"github.com/fenwicklabs/gintendo/cpu"
	"github.com/fenwicklabs/gintendo/ines"
	"github.com/fenwicklabs/gintendo/mappers"
	"github.com/fenwicklabs/gintendo/ppu"
)

func main() {
	var (
		cfg      config.Config
		logLevel string
	)

	root := &cobra.Command{
		Use:           "gintendo [rom]",
		Short:         "A mapper-0 NES emulator core.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.ROMPath = args[0]
			cfg.LogLevel = config.ParseLogLevel(logLevel)
			return run(cfg)
		},
	}
	root.Flags().BoolVar(&cfg.Headless, "headless", false, "run without opening a window, for scripted or CI runs")
	root.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.Flags().BoolVar(&cfg.TraceOnPanic, "trace-on-panic", false, "log a stack trace when a programming error halts emulation")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	log := zerolog.New(zerolog.NewConsoleWriter()).Level(cfg.LogLevel).With().Timestamp().Logger()

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return err
	}

	rom, err := ines.Load(cfg.ROMPath)
	if err != nil {
		log.Error().Err(err).Str("rom", cfg.ROMPath).Msg("failed to load ROM")
		return err
	}

	m, err := mappers.New(rom)
	if err != nil {
		log.Error().Err(err).Msg("unsupported cartridge")
		return err
	}

	b := bus.New(m)
	c := cpu.New(b)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- c.Run(ctx)
	}()

	if cfg.Headless {
		if err := <-errCh; err != nil {
			logHalt(log, cfg, err)
			return err
		}
		return nil
	}

	game := NewGame(b)
	ebiten.SetWindowSize(ppu.Width*2, ppu.Height*2)
	ebiten.SetWindowTitle("gintendo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(game)
	cancel()

	if cerr := <-errCh; cerr != nil {
		logHalt(log, cfg, cerr)
		return cerr
	}
	return runErr
}

// logHalt reports a fatal emulation error, with the PC and a stack
// trace cpu.Run attaches via errors.Wrapf. --trace-on-panic gates the
// stack trace specifically; it's opt-in since most halts are ROM bugs
// a user doesn't need a Go stack for, just the PC cpu.Run already adds.
func logHalt(log zerolog.Logger, cfg config.Config, err error) {
	ev := log.Error().Err(err)
	if cfg.TraceOnPanic {
		if st, ok := err.(stackTracer); ok {
			ev = ev.Str("stack", formatStack(st))
		}
	}
	ev.Msg("emulation halted")
}
