// Package main provides the adventure binary: load a world description
// file and run an interactive session against the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/mudstone/adventure/internal/config"
	"github.com/mudstone/adventure/internal/frontend/console"
	"github.com/mudstone/adventure/internal/game/command"
	"github.com/mudstone/adventure/internal/game/session"
	"github.com/mudstone/adventure/internal/game/world"
	"github.com/mudstone/adventure/internal/observability"
	"github.com/mudstone/adventure/internal/scripting"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [-config path] <worldfile>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file; empty = defaults")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	worldPath := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	w, err := world.LoadFromFile(worldPath)
	if err != nil {
		logger.Fatal("loading world", zap.Error(err))
	}
	logger.Info("world loaded",
		zap.String("file", worldPath),
		zap.Int("rooms", w.RoomCount()),
		zap.Duration("elapsed", time.Since(start)),
	)

	sess, err := session.New(w, cfg.Game.LogCapacity, logger)
	if err != nil {
		logger.Fatal("starting session", zap.Error(err))
	}

	if cfg.Game.ScriptFile != "" {
		hooks, err := scripting.LoadHooks(cfg.Game.ScriptFile, cfg.Game.ScriptInstructionLimit, logger)
		if err != nil {
			logger.Fatal("loading world script", zap.Error(err))
		}
		defer hooks.Close()
		sess.SetEnterHook(hooks.OnEnter)
		logger.Info("world script loaded", zap.String("file", cfg.Game.ScriptFile))
	}

	dispatcher := command.NewDispatcher(command.DefaultRegistry(), logger)
	ui := console.New(os.Stdin, os.Stdout, cfg.UI)

	// Show the starting room before the first prompt.
	dispatcher.Dispatch(sess, "look")
	sess.AnnounceEntry()

	sess.Run(ui, dispatcher)
}
