package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake3d/audio"
	"snake3d/game"
	"snake3d/game/types"
	"snake3d/ui"
	"snake3d/ui/term"
)

const (
	logDir      = "logs"
	logFileName = "snake3d.log"
)

type frontend interface {
	ShouldClose() bool
	PollKeys() []types.Key
	Draw(g *game.Game)
	Close()
}

func main() {
	fps := flag.Int("fps", 60, "Frames per second")
	speed := flag.Int("speed", 1, "Frames per snake step (higher = slower)")
	width := flag.Int("width", 1280, "Window width")
	height := flag.Int("height", 800, "Window height")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = clock)")
	bonus := flag.Int("bonus", game.DefaultConfig().BonusSegments, "Extra segments grown per food")
	useTerm := flag.Bool("term", false, "Play in the terminal instead of a window")
	mute := flag.Bool("mute", false, "Disable sound")
	statsFile := flag.String("stats", "", "Write session statistics as JSON to this file on exit")
	debug := flag.Bool("debug", false, "Write a debug log to "+filepath.Join(logDir, logFileName))
	flag.Parse()

	if logFile := setupLogging(*debug); logFile != nil {
		defer logFile.Close()
	}
	logger := log.Default()

	cfg := game.DefaultConfig()
	cfg.Seed = *seed
	cfg.BonusSegments = *bonus
	g, err := game.NewGame(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	var fe frontend
	if *useTerm {
		screen, err := tcell.NewScreen()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open terminal: %v\n", err)
			os.Exit(1)
		}
		if fe, err = term.NewFrontend(screen); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open terminal: %v\n", err)
			os.Exit(1)
		}
	} else {
		fe = ui.OpenWindow(int32(*width), int32(*height), int32(*fps), "Snake 3D")
	}

	player := &audio.Player{}
	if !*mute {
		if err := player.Init(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	stats := NewGameStats(g.SessionID())
	run(g, fe, player, stats, *useTerm, *fps, *speed)

	fe.Close()
	player.Close()

	if *statsFile != "" {
		if err := stats.SaveToFile(*statsFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving stats: %v\n", err)
		}
	}
	sum := stats.Summary()
	log.Printf("played %d games, best %d, average %.1f over %.1fs", sum.GamesCount, sum.MaxScore, sum.AverageScore, sum.AverageDuration)
}

func run(g *game.Game, fe frontend, player *audio.Player, stats *GameStats, paced bool, fps, speed int) {
	var ticker *time.Ticker
	if paced {
		ticker = time.NewTicker(time.Second / time.Duration(max(fps, 1)))
		defer ticker.Stop()
	}
	speed = max(speed, 1)

	for frame := 0; !fe.ShouldClose(); frame++ {
		for _, k := range fe.PollKeys() {
			g.HandleKey(k)
		}

		if frame%speed == 0 {
			g.Update()
			for _, ev := range g.Events() {
				handleEvent(ev, player, stats)
			}
		}

		fe.Draw(g)
		if ticker != nil {
			<-ticker.C
		}
	}
}

func handleEvent(ev game.Event, player *audio.Player, stats *GameStats) {
	var err error
	switch ev.Type {
	case game.EventEat:
		err = player.Play(audio.EatCue)
	case game.EventLose:
		stats.AddGame(ev.Score, ev.Cause.String(), ev.Start, ev.End)
		err = player.Play(audio.LoseCue)
	}
	if err != nil {
		log.Printf("audio: %v", err)
	}
}

// setupLogging sends the standard logger to a file when debug is set and
// discards it otherwise.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
