package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/symcrypt/internal/app"
	"github.com/specialistvlad/symcrypt/internal/cli"
)

// main is the entrypoint for the symcrypt application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		exitErr := cli.Classify(err)
		cli.Report(os.Stderr, exitErr)
		os.Exit(exitErr.Code)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	parsed, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	env, err := app.LoadEnv(".env")
	if err != nil {
		return err
	}
	appConfig, err := app.LoadConfig(parsed.Options, env)
	if err != nil {
		return err
	}

	symcryptApp := app.NewApp(outW, errW, appConfig)
	return symcryptApp.Run(ctx, parsed.Fields)
}
