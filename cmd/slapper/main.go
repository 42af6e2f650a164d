package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/slapper/audio"
	"github.com/lixenwraith/slapper/catalog"
	"github.com/lixenwraith/slapper/config"
	"github.com/lixenwraith/slapper/constants"
	"github.com/lixenwraith/slapper/core"
	"github.com/lixenwraith/slapper/countdown"
	"github.com/lixenwraith/slapper/engine"
	"github.com/lixenwraith/slapper/game"
	"github.com/lixenwraith/slapper/storage"
	"github.com/lixenwraith/slapper/ui"
)

var (
	debugFlag     = flag.Bool("debug", false, "Write debug logs to logs/slapper.log")
	envFileFlag   = flag.String("env", ".env", "Optional .env file with SLAPPER_ variables")
	storeFlag     = flag.String("store", "", "Counter store: sqlite, file, memory")
	dataDirFlag   = flag.String("data", "", "Directory for the file and sqlite stores")
	muteFlag      = flag.Bool("mute", false, "Start with sound muted")
	colorModeFlag = flag.String("color", "", "Color mode: auto, mono")
	countdownFlag = flag.String("countdown", "", "Countdown target, RFC3339")
	modeFlag      = flag.String("mode", "", "Starting mode: Slap, Bite, Splat")
	characterFlag = flag.Int("character", 0, "Starting character id")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := loadConfig(*envFileFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	timer, err := countdown.Parse(cfg.CountdownTarget)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashScreen(screen)
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	// No os.Exit past this point
	kv := openStore(cfg)
	defer kv.Close()

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = cfg.AudioEnabled
	audioCfg.MasterVolume = cfg.MasterVolume
	player := audio.NewPlayer(audioCfg)
	// Non-fatal, the game runs without sound
	if err := player.Initialize(); err != nil {
		slog.Warn("audio initialization failed, continuing without audio", "error", err)
	}
	defer player.Cleanup()

	sched := engine.NewLoopScheduler(constants.LoopQueueSize)
	defer sched.Stop()

	session := game.NewSession(game.Deps{
		Store:     storage.NewCounter(kv, constants.CounterKey),
		Sound:     player,
		Scheduler: sched,
		Logger:    slog.Default(),
	})
	defer session.Close()

	if m, ok := catalog.ModeByName(cfg.Mode); ok {
		session.SelectMode(m.ID)
	} else {
		slog.Warn("unknown mode, using default", "mode", cfg.Mode)
	}
	session.SelectCharacter(cfg.CharacterID)

	run(screen, session, timer, player, sched, cfg.ColorMode == config.ColorMono)
}

// loadConfig reads the environment, then applies only the flags given on the command line
func loadConfig(envFile string) (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "store":
			cfg.StoreBackend = *storeFlag
		case "data":
			cfg.DataDir = *dataDirFlag
		case "mute":
			cfg.AudioEnabled = !*muteFlag
		case "color":
			cfg.ColorMode = *colorModeFlag
		case "countdown":
			cfg.CountdownTarget = *countdownFlag
		case "mode":
			cfg.Mode = *modeFlag
		case "character":
			cfg.CharacterID = *characterFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run is the host loop. Input, timer callbacks, countdown ticks and frames are all serialized here.
func run(screen tcell.Screen, session *game.Session, timer *countdown.Timer, player *audio.Player, sched *engine.LoopScheduler, mono bool) {
	renderer := ui.NewRenderer(screen, mono)
	input := ui.NewInputHandler(session, player, renderer)
	input.OnResize = screen.Sync

	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	countdownTicker := time.NewTicker(constants.CountdownTickInterval)
	defer countdownTicker.Stop()
	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	// Catch a stale target up before the first frame instead of showing zeros for a few ticks
	for {
		if _, rolled := timer.Tick(time.Now()); !rolled {
			break
		}
	}
	noAudio := !player.IsInitialized()
	draw := func() {
		renderer.Draw(ui.View{
			Session:   session.Snapshot(),
			Countdown: timer.Display(),
			Muted:     player.IsMuted(),
			NoAudio:   noAudio,
		})
	}
	draw()

	for {
		select {
		case ev := <-eventChan:
			if !input.HandleEvent(ev) {
				return
			}
			draw()

		case fn := <-sched.C():
			fn()

		case now := <-countdownTicker.C:
			if _, rolled := timer.Tick(now); rolled {
				slog.Info("countdown target rolled forward", "target", timer.Target().Format(time.RFC3339))
			}

		case <-frameTicker.C:
			renderer.Advance()
			draw()
		}
	}
}
