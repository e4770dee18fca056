package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/duel/audio"
	"github.com/lixenwraith/duel/config"
	"github.com/lixenwraith/duel/core"
	"github.com/lixenwraith/duel/game"
	"github.com/lixenwraith/duel/terminal"
)

var (
	configFlag = flag.String("config", "", "Config file (.toml, .yaml); default ~/.config/duel/config.toml")
	envFlag    = flag.String("env", "", "Optional .env file with DUEL_* overrides")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/duel.log")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
	printFlag  = flag.Bool("print-config", false, "Print the effective config as TOML and exit")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "duel: %v\n", err)
		os.Exit(2)
	}

	if *printFlag {
		if err := cfg.Encode(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "duel: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "duel: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers file, env and flags over the defaults
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return cfg, err
	}
	if err := cfg.LoadEnv(*envFlag); err != nil {
		return cfg, err
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	cfg.Normalize()
	return cfg, cfg.Validate()
}

func run(cfg config.Config) error {
	var opts []game.Option

	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("audio init failed: %v (continuing without audio)", err)
		} else {
			sm.SetVolume(cfg.Audio.Volume)
			defer sm.Cleanup()
			opts = append(opts, game.WithSound(sm))
		}
	}

	session, err := game.New(cfg, opts...)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()

	// Panics on the main goroutine restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := terminal.NewApp(screen, session, terminal.WithFrameInterval(cfg.FrameInterval()))
	log.Printf("session %s started", session.ID())
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
