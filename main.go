package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/nathanKramer/planewar/display"
	"github.com/nathanKramer/planewar/planewar"
	"github.com/nathanKramer/planewar/resource"
	"github.com/nathanKramer/planewar/sound"
	"github.com/rs/zerolog"
)

var configPath = flag.String("config", "./config.yml", "path to the yaml config")
var debug = flag.Bool("debug", false, "log at debug level")

// To read about how to use these profiles,
// https://blog.golang.org/pprof
var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var memprofile = flag.String("memprofile", "", "write memory profile to this file")

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func PrintMemUsage() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	logger.Debug().
		Uint64("alloc_mb", bToMb(m.Alloc)).
		Uint64("sys_mb", bToMb(m.Sys)).
		Uint32("num_gc", m.NumGC).
		Msg("memory")
}

func bToMb(b uint64) uint64 {
	return b / 1024 / 1024
}

func run() {
	cfg, err := planewar.LoadConfig(*configPath, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *configPath).Msg("bad config")
	}
	local, err := planewar.ReadLocalData(cfg.DataFile)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.DataFile).Msg("could not read scores, starting fresh")
		local = planewar.LocalData{}
	}

	start := time.Now()
	assets, err := resource.NewLoader(cfg.AssetDir, logger).Preload(context.Background(), resource.DefaultManifest)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.AssetDir).Msg("could not load assets")
	}
	defer assets.Close()
	logger.Info().Dur("took", time.Since(start)).Msg("assets loaded")

	win, err := pixelgl.NewWindow(pixelgl.WindowConfig{
		Title:  planewar.GameTitle,
		Bounds: cfg.Screen(),
		VSync:  true,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("could not open window")
	}

	draw := display.NewDrawContext(cfg.Screen(), assets.Background, assets.Fonts)
	controls := display.NewControls(win, cfg.Screen(), cfg.Keys, logger)
	audio := sound.New(assets.Sounds, assets.Music, logger)
	game := planewar.NewGame(cfg, assets.Art, local, planewar.Deps{Log: logger, Audio: audio})

	session := game.Session()
	fullscreen := false
	lastMemCheck := time.Now()
	PrintMemUsage()

	for !game.Quit() {
		if time.Since(lastMemCheck).Seconds() > 5.0 {
			PrintMemUsage()
			lastMemCheck = time.Now()
		}

		draw.Hitboxes = game.Session().Debug()
		game.Frame(controls.Poll(), draw)
		if s := game.Session(); s != session {
			draw.Forget()
			session = s
		}
		if fs := session.Fullscreen(); fs != fullscreen {
			fullscreen = fs
			if fs {
				win.SetMonitor(pixelgl.PrimaryMonitor())
			} else {
				win.SetMonitor(nil)
			}
		}

		draw.Present(win)
		win.Update()
		game.Pace()
	}
	game.Session().Close()
	win.Destroy()
}

func main() {
	flag.Parse()
	if *debug {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not create cpu profile")
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	pixelgl.Run(run)

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not create memory profile")
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
