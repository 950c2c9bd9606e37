package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/KazanExpress/boxdiff/internal/boxid"

	// include dot env loader
	_ "github.com/joho/godotenv/autoload"
)

const (
	exitOK         = 0
	exitNotFound   = 1
	exitValidation = 2
	exitIO         = 3
	exitUsage      = 4
)

const defaultLogLevel = zapcore.WarnLevel

type config struct {
	logLevel string
}

func getConfigs() config {
	return config{
		logLevel: os.Getenv("BOXDIFF_LOG_LEVEL"),
	}
}

func newLogger(conf config, w io.Writer) *zap.Logger {
	level, err := zapcore.ParseLevel(conf.logLevel)
	if conf.logLevel == "" || err != nil {
		level = defaultLogLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	l := zap.New(core)
	if err != nil && conf.logLevel != "" {
		l.Warn("unknown log level, using default",
			zap.String("level", conf.logLevel),
			zap.Stringer("default", defaultLogLevel))
	}
	return l
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	color.NoColor = color.NoColor || !isTerminal(os.Stderr)

	os.Exit(run(getConfigs(), os.Stdin, isTerminal(os.Stdin), os.Stdout, os.Stderr))
}

// run reads identifiers from stdin, prints the common part of the matching
// pair to stdout and returns the process exit code. A terminal on stdin gets
// the usage message instead.
func run(conf config, stdin io.Reader, stdinIsTerminal bool, stdout, stderr io.Writer) int {
	if stdinIsTerminal {
		fmt.Fprintln(stderr, "The command is intended to work with pipes.")
		fmt.Fprintln(stderr, "Usage: cat ids.txt | boxdiff")
		return exitUsage
	}

	l := newLogger(conf, stderr)
	defer l.Sync()

	ids, err := readIdentifiers(stdin)
	if err != nil {
		return fail(stderr, err, exitIO)
	}
	l.Debug("read identifiers", zap.Int("count", len(ids)))

	res, err := boxid.NewFinder(l).Find(ids)
	switch {
	case errors.Is(err, boxid.ErrNotFound):
		return fail(stderr, err, exitNotFound)
	case err != nil:
		return fail(stderr, err, exitValidation)
	}

	if _, err := fmt.Fprintln(stdout, res); err != nil {
		return fail(stderr, fmt.Errorf("write result: %w", err), exitIO)
	}
	return exitOK
}

// readIdentifiers returns the trimmed, non-empty lines of r in input order.
func readIdentifiers(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	ids := []string{}

	for scanner.Scan() {
		id := strings.TrimSpace(scanner.Text())
		if id != "" {
			ids = append(ids, id)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read identifiers: %w", err)
	}

	return ids, nil
}

func fail(stderr io.Writer, err error, code int) int {
	color.New(color.FgRed).Fprintf(stderr, "boxdiff: %s\n", err)
	return code
}
