// Command update-testdata regenerates golden files by running the golden
// tests with -update in every package that has a testdata directory.
package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/rdeusser/orderedset/internal/logging"
)

var errNoModule = errors.New("go.mod not found; run from the module root")

func ensureModPath(root string) error {
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		return errNoModule
	}
	return nil
}

// findTestData returns the directories, relative to root, that contain a
// testdata directory. Directories whose names start with "." or "_" are
// skipped, as the go tool does.
func findTestData(root string) ([]string, error) {
	var paths []string

	err := fs.WalkDir(os.DirFS(root), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		name := d.Name()
		if path != "." && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
			return fs.SkipDir
		}

		if name == "testdata" {
			paths = append(paths, filepath.Dir(path))
			return fs.SkipDir
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}

func updateTestData(root, pkg, run string) error {
	cmd := exec.Command("go", "test", "-timeout", "2m", "-run", run, ".", "-update")
	cmd.Dir = filepath.Join(root, pkg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func main() {
	var (
		root     string
		run      string
		verbose  bool
		hadError bool
	)

	flags := flag.NewFlagSet("update-testdata", flag.ContinueOnError)
	flags.StringVar(&root, "root", ".", "module root")
	flags.StringVar(&run, "run", "TestGolden", "tests to run with -update")
	flags.BoolVar(&verbose, "v", false, "verbose logging")

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	logger := logging.New(os.Stderr, logging.Options{Name: "update-testdata", Verbose: verbose})
	defer logger.Sync()

	if err := ensureModPath(root); err != nil {
		logger.Fatal("bad root", zap.String("root", root), zap.Error(err))
	}

	paths, err := findTestData(root)
	if err != nil {
		logger.Fatal("walking module", zap.Error(err))
	}

	logger.Debug("found testdata", zap.Strings("packages", paths))

	for _, path := range paths {
		logger.Info("updating testdata", zap.String("package", path))

		if err := updateTestData(root, path, run); err != nil {
			hadError = true
			logger.Error("update failed", zap.String("package", path), zap.Error(err))
		}
	}

	if hadError {
		logger.Warn("some error(s) occurred in some of the tests")
		os.Exit(1)
	}

	logger.Info("successfully updated testdata!")
}
