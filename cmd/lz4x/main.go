// Command lz4x compresses a single file (or stdin) to LZ4 frame format
// using optimal parsing.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/lz4x/lz4x"
)

const usageText = `lz4x [options] [input] [output]

  input/output default to "-" (stdin/stdout).

Options:
  -0 .. -9   compression level, 0 = store only, 9 = full optimal parse (default 9)
  -D FILE    prime the match finder with up to the last 64 KiB of FILE
  -f         overwrite output if it already exists
  -v         verbose logging
  -h         show this help
`

var errHelpRequested = errors.New("help requested")

type config struct {
	level    int
	force    bool
	verbose  bool
	dictPath string
	input    string
	output   string
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, errHelpRequested) {
			fmt.Print(usageText)
			return
		}
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := parseArgs(args)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.verbose)
	defer func() { _ = logger.Sync() }()

	var dictionary []byte
	if cfg.dictPath != "" {
		dictionary, err = os.ReadFile(cfg.dictPath)
		if err != nil {
			return errors.Wrap(lz4x.ErrBadDictionary, err.Error())
		}
		logger.Debug("loaded dictionary", zap.String("path", cfg.dictPath), zap.Int("bytes", len(dictionary)))
	}

	if cfg.output != "-" && !cfg.force {
		if _, statErr := os.Stat(cfg.output); statErr == nil {
			return errors.Wrapf(lz4x.ErrOutputExists, "%s (use -f to overwrite)", cfg.output)
		}
	}

	input, err := readInput(cfg.input)
	if err != nil {
		return errors.Wrap(err, "read input")
	}

	opts := lz4x.LevelOptions(cfg.level)
	opts.Dictionary = dictionary
	opts.Progress = func(block, rawLen, compressedLen int) {
		logger.Info("block",
			zap.Int("index", block),
			zap.Int("raw_bytes", rawLen),
			zap.Int("compressed_bytes", compressedLen),
		)
	}

	output := lz4x.Compress(input, opts)

	if err := writeOutput(cfg.output, output); err != nil {
		return errors.Wrap(err, "write output")
	}

	logger.Info("done", zap.Int("input_bytes", len(input)), zap.Int("output_bytes", len(output)))
	return nil
}

// parseArgs hand-rolls argument parsing rather than using package flag:
// the -0..-9 level flags are single-dash bare digits, a shape the standard
// flag package (and every flag library in this codebase's dependency
// tree) cannot express without contortions.
func parseArgs(args []string) (config, error) {
	cfg := config{level: 9}
	var positional []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			return cfg, errHelpRequested
		case arg == "-f":
			cfg.force = true
		case arg == "-v":
			cfg.verbose = true
		case arg == "-D":
			i++
			if i >= len(args) {
				return cfg, errors.New("-D requires a dictionary file argument")
			}
			cfg.dictPath = args[i]
		case len(arg) == 2 && arg[0] == '-' && arg[1] >= '0' && arg[1] <= '9':
			cfg.level = int(arg[1] - '0')
		case len(arg) > 1 && arg[0] == '-' && arg != "-":
			return cfg, errors.Wrapf(lz4x.ErrUnknownFlag, "%q", arg)
		default:
			positional = append(positional, arg)
		}
	}

	cfg.input = "-"
	cfg.output = "-"
	if len(positional) > 0 {
		cfg.input = positional[0]
	}
	if len(positional) > 1 {
		cfg.output = positional[1]
	}
	if len(positional) > 2 {
		return cfg, errors.New("too many arguments")
	}
	return cfg, nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
