// Command oset applies ordered set operations to lists of strings read from
// JSON, YAML or plain text files.
//
//	oset [flags] <op> <file>...
//
// Results keep the order in which members were first seen, so
//
//	oset union a.json b.json
//
// prints the members of a.json followed by the members of b.json that
// a.json lacks. Predicates print true or false and exit with 0 or 1.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/rdeusser/orderedset/internal/logging"
)

const (
	exitTrue  = 0
	exitFalse = 1
	exitError = 2
)

var (
	errUsage     = errors.New("usage: oset [flags] <op> <file>...")
	errUnknownOp = errors.New("unknown operation")
)

type options struct {
	in      string
	out     string
	verbose bool
	noColor bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options

	flags := flag.NewFlagSet("oset", flag.ContinueOnError)
	flags.SetOutput(stderr)

	flags.StringVar(&opts.in, "in", "auto", "input format: auto, json, yaml or lines")
	flags.StringVar(&opts.out, "out", "json", "output format: json, yaml or lines")
	flags.BoolVar(&opts.verbose, "v", false, "log every step")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored log levels")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "%v\n\noperations: %s\n\nflags:\n", errUsage, strings.Join(opNames(), ", "))
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitTrue
		}
		return exitError
	}

	logger := logging.New(stderr, logging.Options{
		Name:    "oset",
		Verbose: opts.verbose,
		NoColor: opts.noColor,
	})
	defer logger.Sync()

	code, err := execute(logger, opts, flags.Args(), stdin, stdout)
	if err != nil {
		logger.Error("failed", zap.Error(err))
		return exitError
	}

	return code
}

func execute(logger *zap.Logger, opts options, args []string, stdin io.Reader, stdout io.Writer) (int, error) {
	if len(args) < 2 {
		return exitError, errUsage
	}

	name, paths := args[0], args[1:]

	op, ok := operations[name]
	if !ok {
		return exitError, fmt.Errorf("%w: %q", errUnknownOp, name)
	}

	if err := op.checkArgs(paths); err != nil {
		return exitError, fmt.Errorf("%s: %w", name, err)
	}

	// stdin can only be read once.
	if i := slices.Index(paths, "-"); i >= 0 && slices.Contains(paths[i+1:], "-") {
		return exitError, fmt.Errorf("%w: - given more than once", errUsage)
	}

	switch opts.out {
	case formatJSON, formatYAML, formatLines:
	default:
		return exitError, fmt.Errorf("%w: %q", errUnknownFormat, opts.out)
	}

	sets := make([]*stringSet, 0, len(paths))

	for _, path := range paths {
		s, err := readSet(path, opts.in, stdin)
		if err != nil {
			return exitError, err
		}

		logger.Debug("read set",
			zap.String("path", path),
			zap.Int("count", s.Len()),
			zap.Array("members", s),
		)

		sets = append(sets, s)
	}

	if op.predicate != nil {
		holds := op.predicate(sets[0], sets[1])
		logger.Debug("evaluated", zap.String("op", name), zap.Bool("holds", holds))

		fmt.Fprintln(stdout, holds)

		if !holds {
			return exitFalse, nil
		}
		return exitTrue, nil
	}

	result := sets[0]
	for _, s := range sets[1:] {
		op.fold(result, s)
	}

	logger.Debug("computed",
		zap.String("op", name),
		zap.Int("count", result.Len()),
		zap.Array("members", result),
	)

	if err := writeSet(stdout, result, opts.out); err != nil {
		return exitError, err
	}

	return exitTrue, nil
}

func opNames() []string {
	names := make([]string, 0, len(operations))

	for name := range operations {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
