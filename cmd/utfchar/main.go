// utfchar inspects single codepoints: it reads each argument as a
// character, a scalar value, UTF-8 bytes or UTF-16 units, validates it,
// and prints every encoding of it.
//
//	utfchar é 😀
//	utfchar --from scalar U+1F600 0x41
//	utfchar --from utf8 "f0 9f 98 80"
//	utfchar --from utf16 --format yaml "D83D DE00"
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// errRejected is returned when at least one input failed to decode. The
// individual failures have already been logged.
var errRejected = errors.New("some inputs were rejected")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var (
		from    string
		format  string
		verbose bool
	)

	flagSet := pflag.NewFlagSet("utfchar", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&from, "from", "text", "input kind: text, scalar, utf8 or utf16")
	flagSet.StringVarP(&format, "format", "o", "text", "output format: text, json, yaml or cbor")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log every decoded input")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}

	parse, err := inputParser(from)
	if err != nil {
		return err
	}
	render, err := renderer(format)
	if err != nil {
		return err
	}
	if flagSet.NArg() == 0 {
		printHelp(stderr, flagSet)
		return errors.New("no input given")
	}

	logger := newLogger(stderr, verbose)
	defer func() { _ = logger.Sync() }()

	reports := make([]report, 0, flagSet.NArg())
	rejected := 0
	for _, arg := range flagSet.Args() {
		c, err := parse(arg)
		if err != nil {
			rejected++
			logger.Error("rejected input", zap.String("input", arg), zap.String("from", from), kindField(err), zap.Error(err))
			continue
		}
		logger.Debug("decoded input", zap.String("input", arg), zap.String("scalar", fmt.Sprintf("%U", c.Rune())))
		reports = append(reports, newReport(c))
	}

	if err := render(stdout, reports); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if rejected > 0 {
		return errRejected
	}
	return nil
}

// newLogger writes to w. Verbose mode uses zap's development encoder at
// debug level; otherwise only errors are logged, as JSON.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	sink := zapcore.Lock(zapcore.AddSync(w))
	if verbose {
		cfg := zap.NewDevelopmentEncoderConfig()
		return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), sink, zapcore.DebugLevel))
	}
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zap.New(zapcore.NewCore(zapcore.NewJSONEncoder(cfg), sink, zapcore.ErrorLevel))
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `utfchar: inspect the UTF-8 and UTF-16 encodings of single codepoints.

Each argument must hold exactly one codepoint. Invalid input is reported
with the reason it was rejected and the command exits with status 1.

Usage:
  utfchar [flags] <input>...

Flags:
%s`, flagSet.FlagUsages())
}
