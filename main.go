package main

import (
	"fmt"
	"log/slog"
	"os"

	"bmpview/convert"
	"bmpview/inspect"
	"bmpview/parallel"
	"bmpview/preview"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Workers   int    `help:"Number of files processed concurrently, 0 for one per CPU" default:"0"`
	LogLevel  string `help:"Minimum level of log messages" enum:"debug,info,warn,error" default:"info"`
	LogFormat string `help:"Log output format" enum:"text,json" default:"text"`

	Info    inspect.CLICmd `cmd:"" help:"Print bitmap headers and check that they add up"`
	Convert convert.CLICmd `cmd:"" help:"Decode bitmaps and save them in another format"`
	Show    preview.CLICmd `cmd:"" help:"Draw a bitmap in the terminal"`
}

func newLogger(level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("bmpview"),
		kong.Description("Strict reader for uncompressed 24 and 32-bit BMP files."),
		kong.UsageOnError(),
	)

	logger, err := newLogger(cli.LogLevel, cli.LogFormat)
	kctx.FatalIfErrorf(err)
	slog.SetDefault(logger)

	pool := parallel.Start(cli.Workers)
	slog.Debug("running", "command", kctx.Command(), "workers", pool.Workers())

	err = kctx.Run(parallel.WorkerFunc(pool.Do), parallel.WaitFunc(pool.Wait))
	pool.Wait()
	if err != nil {
		slog.Error("failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
