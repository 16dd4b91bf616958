// Command goboy runs a cartridge headlessly, echoing whatever it sends
// over the serial port to stdout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/thelolagemann/gomeboy-core/internal/gameboy"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

func main() {
	configFile := flag.String("config", "", "A YAML config file to read before applying flags")
	romFile := flag.String("rom", "", "The rom file to load")
	bootROM := flag.String("boot", "", "The boot rom file to load")
	frames := flag.Int("frames", 0, "The number of frames to run, 0 runs until interrupted")
	speed := flag.Float64("speed", 1, "The speed to run the emulator at, 0 runs unpaced")
	logLevel := flag.String("log-level", "info", "The level to log at")
	serialOut := flag.Bool("serial", true, "Echo serial output to stdout")
	flag.Parse()

	cfg := defaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = loadConfig(*configFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	// flags given explicitly override the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rom":
			cfg.ROM = *romFile
		case "boot":
			cfg.Boot = *bootROM
		case "frames":
			cfg.Frames = *frames
		case "speed":
			cfg.Speed = *speed
		case "log-level":
			cfg.LogLevel = *logLevel
		case "serial":
			cfg.Serial = *serialOut
		}
	})
	if err := cfg.validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run loads the cartridge described by cfg and runs it until the
// configured number of frames has passed or ctx is cancelled.
func run(ctx context.Context, cfg config, out io.Writer) error {
	logger, err := log.NewWithLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	rom, err := utils.LoadFile(cfg.ROM)
	if err != nil {
		return err
	}
	var boot []byte
	if cfg.Boot != "" {
		if boot, err = utils.LoadFile(cfg.Boot); err != nil {
			return err
		}
	}

	opts := []gameboy.Opt{
		gameboy.WithLogger(logger),
		gameboy.WithSpeed(cfg.Speed),
	}
	if cfg.Serial {
		opts = append(opts, gameboy.WithSerialWriter(out))
	}

	gb := gameboy.New(opts...)
	if err := gb.Load(boot, rom); err != nil {
		return err
	}

	if cfg.Frames == 0 {
		return gb.Run(ctx)
	}
	for i := 0; i < cfg.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := gb.Frame(); err != nil {
			return err
		}
	}
	logger.Infof("ran %d frames, stopped at 0x%04X", cfg.Frames, gb.CPU.PC)
	return nil
}
