package extract

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-uvspec/stick"
)

// Record layout of an excited-state line.
const (
	Marker        = " Excited State "
	EnergyField   = 4
	StrengthField = 8
	// StrengthPrefixLen is the length of the "f=" marker in front of the
	// oscillator strength.
	StrengthPrefixLen = 2
)

const maxLineSize = 1 << 20

// Parse extracts all sticks from r. source labels errors.
//
// Input without records yields an empty set and no error.
func Parse(r io.Reader, source string) (stick.Set, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var sticks []stick.Stick

	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := scanner.Text()
		if !strings.HasPrefix(line, Marker) {
			continue
		}

		s, err := ParseRecord(line)
		if err != nil {
			return stick.Set{}, &RecordError{
				Source: source,
				Line:   lineNo,
				Text:   strings.TrimRight(line, "\r"),
				Reason: err.Error(),
			}
		}
		sticks = append(sticks, s)
	}

	if err := scanner.Err(); err != nil {
		return stick.Set{}, fmt.Errorf("%w: %s: %w", ErrSourceNotFound, source, err)
	}

	return stick.NewSet(sticks...), nil
}

// ParseRecord parses a single excited-state line. The marker is not checked.
func ParseRecord(line string) (stick.Stick, error) {
	fields := strings.Fields(line)
	if len(fields) <= StrengthField {
		return stick.Stick{}, fmt.Errorf("want at least %d fields, got %d", StrengthField+1, len(fields))
	}

	energy, err := strconv.ParseFloat(fields[EnergyField], 64)
	if err != nil {
		return stick.Stick{}, fmt.Errorf("energy field %q: %w", fields[EnergyField], err)
	}

	if !(energy > 0) || math.IsInf(energy, 0) {
		return stick.Stick{}, fmt.Errorf("energy must be positive and finite: %v", energy)
	}

	raw := fields[StrengthField]
	if len(raw) <= StrengthPrefixLen {
		return stick.Stick{}, fmt.Errorf("strength field %q too short", raw)
	}

	strength, err := strconv.ParseFloat(raw[StrengthPrefixLen:], 64)
	if err != nil {
		return stick.Stick{}, fmt.Errorf("strength field %q: %w", raw, err)
	}

	if !(strength >= 0) || math.IsInf(strength, 0) {
		return stick.Stick{}, fmt.Errorf("strength must be non-negative and finite: %v", strength)
	}

	return stick.Stick{Energy: energy, Strength: strength}, nil
}

// ParseFile extracts all sticks from the named file.
func ParseFile(path string) (stick.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return stick.Set{}, fmt.Errorf("%w: %w", ErrSourceNotFound, err)
	}
	defer f.Close()

	return Parse(f, path)
}

// ParseFiles extracts each file in order and merges the results with
// [stick.Merge]. The first failing file aborts the call.
func ParseFiles(paths ...string) (stick.Set, error) {
	sets := make([]stick.Set, 0, len(paths))
	for _, p := range paths {
		set, err := ParseFile(p)
		if err != nil {
			return stick.Set{}, err
		}
		sets = append(sets, set)
	}

	return stick.Merge(sets...), nil
}
