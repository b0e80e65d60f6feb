package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe3d/internal"
	"github.com/rocketscienceinc/tictactoe3d/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	closeLog := func() {}
	defer func() {
		if code := finish(recover(), os.Stderr, closeLog); code != 0 {
			os.Exit(code)
		}
	}()

	configPath := flag.String("config", "", "path to config.yml (default ./config.yml)")
	flag.Parse()

	conf := initConfig(*configPath)

	var logger *slog.Logger
	logger, closeLog = initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// finish - closes the log and reports the exit code for a recovered panic.
func finish(recovered any, stderr io.Writer, closeLog func()) int {
	closeLog()

	if recovered == nil {
		return 0
	}

	fmt.Fprintf(stderr, "recovered from panic: %v\n", recovered)

	return 1
}

// initialize config. An explicit path must exist; the default one may be
// missing, then only the environment is read.
func initConfig(path string) *config.Config {
	if path != "" {
		return config.MustLoad(path, true)
	}

	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"), false)
}

// initialize logger. The terminal frontend owns stdout, so it logs to the
// configured file or nowhere.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var out io.Writer = os.Stdout
	closeLog := func() {}

	switch {
	case conf.LogFile != "":
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}
		out = file
		closeLog = func() { _ = file.Close() }
	case conf.Frontend == config.FrontendTerminal:
		out = io.Discard
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), closeLog
}
