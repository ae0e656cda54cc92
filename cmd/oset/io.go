package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rdeusser/orderedset/orderedset"
)

const (
	formatAuto  = "auto"
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatLines = "lines"
)

var errUnknownFormat = errors.New("unknown format")

// detectFormat resolves formatAuto from the file extension, falling back to
// JSON.
func detectFormat(path, format string) string {
	if format != formatAuto {
		return format
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	case ".txt", ".lst":
		return formatLines
	default:
		return formatJSON
	}
}

func readSet(path, format string, stdin io.Reader) (*stringSet, error) {
	data, err := readInput(path, stdin)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	s, err := decodeSet(data, detectFormat(path, format))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return s, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

func decodeSet(data []byte, format string) (*stringSet, error) {
	s := orderedset.New[string]()

	switch format {
	case formatJSON:
		if err := json.Unmarshal(data, s); err != nil {
			return nil, err
		}
	case formatYAML:
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, err
		}
	case formatLines:
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				s.Insert(line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownFormat, format)
	}

	return s, nil
}

func writeSet(w io.Writer, s *stringSet, format string) error {
	switch format {
	case formatJSON:
		data, err := json.Marshal(s)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case formatYAML:
		data, err := yaml.Marshal(s)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case formatLines:
		for v := range s.Values() {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}
