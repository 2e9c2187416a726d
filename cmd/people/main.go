package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"peopleRegistry/internal/config"
	"peopleRegistry/internal/console"
	"peopleRegistry/internal/db"
	"peopleRegistry/internal/logger"
	"peopleRegistry/internal/viewmodel"
	"peopleRegistry/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := logger.Init(cfg.Log.Level); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	logger.Log.Infow("configuration loaded", "config", cfg.String())

	if err := run(cfg); err != nil {
		logger.Log.Errorw("exiting", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	d, err := db.Open(cfg.Database.Driver, cfg.Database.Path)
	if err != nil {
		return err
	}
	defer func() {
		if err := d.Close(); err != nil {
			logger.Log.Warnw("close db", "error", err)
		}
	}()

	users := repository.NewUserRepository(d).WithTimeout(cfg.Database.Timeout)
	vm := viewmodel.New(users)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	sh := console.New(vm, os.Stdin, os.Stdout, console.WithPrompt(interactive))
	if interactive {
		os.Stdout.WriteString("type help for commands\n")
	}
	if err := sh.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Log.Infow("bye")
	return nil
}
