// Command duel-web runs the duel in an ebiten window, or in the browser when built for js/wasm
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/duel/audio"
	"github.com/lixenwraith/duel/canvas"
	"github.com/lixenwraith/duel/canvas/geom"
	"github.com/lixenwraith/duel/config"
	"github.com/lixenwraith/duel/game"
)

var (
	configFlag = flag.String("config", "", "Config file (.toml, .yaml)")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
	scaleFlag  = flag.Int("scale", 1, "Window scale factor")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.LoadEnv(""); err != nil {
		log.Fatalf("config: %v", err)
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

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
		log.Fatalf("session: %v", err)
	}
	defer session.Close()

	scale := max(*scaleFlag, 1)
	ebiten.SetWindowSize(geom.LogicalW*scale, geom.LogicalH*scale)
	ebiten.SetWindowTitle("duel")
	ebiten.SetTPS(max(1000/cfg.FrameMs, 1))

	if err := ebiten.RunGame(canvas.New(session)); err != nil {
		log.Printf("run: %v", err)
	}
}
