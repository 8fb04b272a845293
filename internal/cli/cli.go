package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/symcrypt/internal/app"
	"github.com/specialistvlad/symcrypt/internal/request"
)

// requiredFlags must be present on every invocation, in reporting order.
var requiredFlags = []string{"s", "k", "c"}

// Arguments are the values bound from one argument vector.
type Arguments struct {
	Fields  request.Fields
	Options app.Options
}

// Parse processes command-line arguments. It returns the bound Arguments,
// a boolean indicating if the program should exit cleanly, or an ExitError
// wrapping a MalformedArgumentsError. Help output is written to output.
func Parse(args []string, output io.Writer) (*Arguments, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("symcrypt", flag.ContinueOnError)
	// Errors are reported by the caller together with the banner.
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() {}

	var parsed Arguments
	fields := &parsed.Fields
	flagSet.BoolVar(&fields.Binary, "b", false, "specify binary output")
	flagSet.BoolVar(&fields.Encrypt, "e", false, "encrypt message")
	flagSet.BoolVar(&fields.Decrypt, "d", false, "decrypt message")
	flagSet.StringVar(&fields.SourceFile, "s", "", "source file")
	flagSet.StringVar(&fields.ResultFile, "r", "", "result file")
	flagSet.StringVar(&fields.Key, "k", "", "secret key")
	flagSet.StringVar(&fields.Cipher, "c", "", "AES or DES")

	opts := &parsed.Options
	flagSet.StringVar(&opts.ConfigPath, "config", "", "HCL profile with log and output settings")
	flagSet.StringVar(&opts.LogLevel, "log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.StringVar(&opts.LogFormat, "log-format", "", "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			Usage(output)
			return nil, true, nil
		}
		return nil, false, malformed(err.Error())
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 0 {
		return nil, false, malformed(fmt.Sprintf("unexpected argument %q", flagSet.Arg(0)))
	}

	seen := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { seen[f.Name] = true })

	var missing []string
	for _, name := range requiredFlags {
		if !seen[name] {
			missing = append(missing, "-"+name)
		}
	}
	switch len(missing) {
	case 0:
	case 1:
		return nil, false, malformed(fmt.Sprintf("option %s is required", missing[0]))
	default:
		return nil, false, malformed(fmt.Sprintf("options %s are required", strings.Join(missing, ", ")))
	}

	// Neither -e nor -d is left to the request validator.
	if fields.Encrypt && fields.Decrypt {
		return nil, false, malformed("option -e cannot be used with the option(s) [-d]")
	}

	opts.LogLevel = strings.ToLower(opts.LogLevel)
	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, false, malformed("invalid -log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	opts.LogFormat = strings.ToLower(opts.LogFormat)
	if opts.LogFormat != "" && opts.LogFormat != "text" && opts.LogFormat != "json" {
		return nil, false, malformed("invalid -log-format: must be 'text' or 'json'")
	}
	slog.Debug("CLI parser finished successfully.", "mode_encrypt", fields.Encrypt, "mode_decrypt", fields.Decrypt, "cipher", fields.Cipher)

	return &parsed, false, nil
}

func malformed(reason string) *ExitError {
	err := &MalformedArgumentsError{Reason: reason}
	return &ExitError{Code: ExitUsage, Message: reason, ShowUsage: true, Err: err}
}
