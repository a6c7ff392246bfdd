package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/tokenlistooor-pattern/internal/config"
	"github.com/iburimskiy/tokenlistooor-pattern/internal/game"
	"github.com/iburimskiy/tokenlistooor-pattern/internal/pattern"
)

func main() {
	log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)

	configPath := flag.String("config", config.DefaultPath, "path to the JSON settings file")
	seed := flag.Int64("seed", 0, "layout seed, 0 for a new layout each run")
	static := flag.Bool("static", false, "show the pre-rendered pattern instead of the animation")
	export := flag.String("export", "", "write the static pattern to `file` (.svg, .png or .uri) and exit")
	debug := flag.Bool("debug", false, "show frame stats")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "static":
			cfg.Animate = !*static
		case "debug":
			cfg.Debug = *debug
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// One static pattern per process, shared by the fallback and every export.
	memo := pattern.NewMemo(func() *pattern.Static {
		return pattern.Generate(cfg.StaticOptions(), pattern.NewSource(cfg.Seed))
	})

	if *export != "" {
		if err := pattern.WriteFile(memo.Get(), *export); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *export)
		return
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.NewGame(game.NewHost(cfg.Animate), cfg.AnimatedOptions(), memo.Get, cfg.Debug)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
