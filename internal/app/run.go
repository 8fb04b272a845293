package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/symcrypt/internal/ctxlog"
	"github.com/specialistvlad/symcrypt/internal/fsutil"
	"github.com/specialistvlad/symcrypt/internal/request"
	"github.com/specialistvlad/symcrypt/internal/transform"
)

// Run validates fields and, when the request is valid, transforms the
// message and writes the result. Nothing is written on any failure.
func (a *App) Run(ctx context.Context, fields request.Fields) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	result := a.validator.Validate(fields)
	req, err := result.Unwrap()
	if err != nil {
		a.logger.Debug("Request rejected.", "kind", result.Kind, "error", err)
		return err
	}
	a.logger.Info("Request validated.",
		"mode", req.Mode,
		"cipher", req.Cipher,
		"source", req.SourcePath,
		"message_bytes", len(req.Message),
		"binary_output", req.BinaryOutput,
	)

	out, err := transform.Run(ctx, req)
	if err != nil {
		return fmt.Errorf("%s failed: %w", req.Mode, err)
	}

	path, err := fsutil.ResultPath(req.SourcePath, req.ResultPath, a.config.OutputDir, a.config.OutputPrefix)
	if err != nil {
		return fmt.Errorf("failed to resolve result path: %w", err)
	}
	if err := fsutil.WriteResult(path, out); err != nil {
		return err
	}
	a.logger.Debug("Result written.", "path", path, "bytes", len(out))

	fmt.Fprintf(a.outW, "The result was successfully saved to: \"%s\"\n", path)
	a.logger.Debug("App.Run method finished.")
	return nil
}
