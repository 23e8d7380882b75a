package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sstraus/toon_go/toon"
)

// Direction is the effective encode/decode direction chosen for a run.
type Direction int

const (
	// DirectionAuto lets Run inspect the input to choose a direction.
	DirectionAuto Direction = iota
	DirectionEncode
	DirectionDecode
)

func (d Direction) String() string {
	if d == DirectionEncode {
		return "encode"
	}
	return "decode"
}

// Run executes one encode/decode invocation: it reads input (path or "-"
// for stdin), determines direction, converts, and writes output (path or
// "-" for stdout). It returns a single error suitable for printing on one
// line; callers map a non-nil return to a nonzero exit code.
func Run(cfg *Config, inputPath string, stdin io.Reader, stdout, stderr io.Writer) error {
	data, err := readInput(inputPath, stdin)
	if err != nil {
		return err
	}

	dir := DirectionAuto
	if cfg.Encode {
		dir = DirectionEncode
	} else if cfg.Decode {
		dir = DirectionDecode
	}

	start := time.Now()
	out, effectiveDir, err := convert(cfg, data, dir)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := writeOutput(cfg.Output, out, stdout); err != nil {
		return err
	}

	if cfg.Stats {
		Stats{
			Direction:  effectiveDir.String(),
			InputSize:  len(data),
			OutputSize: len(out),
			Elapsed:    elapsed,
		}.Report(stderr)
	}
	return nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// convert performs the requested (or auto-detected) conversion.
// Empty or whitespace-only input yields an empty object for encode, or
// empty output for decode, per the format's contract for degenerate input.
func convert(cfg *Config, data []byte, dir Direction) ([]byte, Direction, error) {
	if dir == DirectionAuto {
		dir = detectDirection(data)
	}

	switch dir {
	case DirectionEncode:
		if len(bytes.TrimSpace(data)) == 0 {
			out, err := toonEncode(cfg, map[string]any{})
			return out, dir, err
		}
		// Decoding via toon.DecodeJSON preserves object key order at every
		// nesting level, unlike json.Unmarshal into a bare `any`.
		v, err := toon.DecodeJSON(data)
		if err != nil {
			return nil, dir, fmt.Errorf("input is not valid JSON: %w", err)
		}
		out, err := toonEncode(cfg, v)
		return out, dir, err
	default:
		if len(strings.TrimSpace(string(data))) == 0 {
			return nil, dir, nil
		}
		opts, err := cfg.DecodeOptions()
		if err != nil {
			return nil, dir, err
		}
		v, err := toon.UnmarshalFromString(string(data), opts...)
		if err != nil {
			return nil, dir, err
		}
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, dir, err
		}
		return append(out, '\n'), dir, nil
	}
}

func toonEncode(cfg *Config, v any) ([]byte, error) {
	opts, err := cfg.EncodeOptions()
	if err != nil {
		return nil, err
	}
	return toon.Marshal(v, opts...)
}

// detectDirection implements the CLI auto-detect rule: valid JSON is
// encoded to TOON, anything else is decoded from TOON to JSON.
func detectDirection(data []byte) Direction {
	if json.Valid(bytes.TrimSpace(data)) && len(bytes.TrimSpace(data)) > 0 {
		return DirectionEncode
	}
	return DirectionDecode
}
