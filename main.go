package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/CristiGvl/picoMemGraph/api"
	"github.com/CristiGvl/picoMemGraph/internal/config"
	"github.com/CristiGvl/picoMemGraph/internal/logging"
	"github.com/CristiGvl/picoMemGraph/internal/memory"
	"github.com/CristiGvl/picoMemGraph/internal/platform"
	"github.com/CristiGvl/picoMemGraph/internal/process"
	"github.com/CristiGvl/picoMemGraph/internal/report"
)

const (
	exitOK       = 0
	exitNotFound = 1
	exitUsage    = 2
	exitFailure  = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load("memgraph", args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		if errors.Is(err, config.ErrInvalid) {
			fmt.Fprintln(stderr, err)
		}
		return exitUsage
	}

	log, closer, err := logging.New(stderr, cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	defer closer.Close()

	// Validate platform support
	if err := platform.ValidateSupport(); err != nil {
		log.Errorf("Platform validation failed: %v", err)
		return exitFailure
	}

	assembler := report.New(
		memory.NewReader(cfg.ProcRoot),
		process.NewResolver(),
		process.NewRSSReader(cfg.ProcRoot, log),
		cfg.Units(),
		cfg.Length,
	)

	if cfg.Serve {
		return serve(assembler, cfg, log)
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.ReadTimeout)
	defer cancel()

	if cfg.Program == "" {
		err = assembler.WriteSystem(ctx, stdout)
	} else {
		err = assembler.WriteProgram(ctx, stdout, cfg.Program)
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, report.ErrProgramNotFound):
		return exitNotFound
	default:
		log.Error(err)
		return exitFailure
	}
}

func serve(assembler *report.Assembler, cfg *config.Config, log *logrus.Logger) int {
	// Create and start the API server
	server, err := api.NewServer(assembler, cfg, log)
	if err != nil {
		log.Errorf("Failed to create server: %v", err)
		return exitFailure
	}

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		if err := server.Shutdown(); err != nil {
			log.Warnf("Error during shutdown: %v", err)
		}
	}()

	if err := server.Start(cfg.Bind + ":" + cfg.Port); err != nil {
		log.Errorf("Server stopped: %v", err)
		return exitFailure
	}
	return exitOK
}
