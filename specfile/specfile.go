package specfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-uvspec/lineshape"
)

// Extension is appended to output file names.
const Extension = ".spec.txt"

// TimeLayout formats the creation timestamp.
const TimeLayout = "01-02-2006 @ 15:04"

// Mode selects the spectral column groups.
type Mode int

const (
	ModeBoth Mode = iota
	ModeCurve
	ModeSticks
)

// String returns the flag spelling of m.
func (m Mode) String() string {
	switch m {
	case ModeCurve:
		return "curve"
	case ModeSticks:
		return "sticks"
	default:
		return "both"
	}
}

// ParseMode parses "curve", "sticks" or "both" (case-insensitive). The empty
// string selects both.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both":
		return ModeBoth, nil
	case "curve":
		return ModeCurve, nil
	case "sticks":
		return ModeSticks, nil
	default:
		return ModeBoth, fmt.Errorf("%w: %q", errUnknownMode, s)
	}
}

// Options control the rendered columns.
type Options struct {
	Mode   Mode
	NoMeta bool   // omit the metadata block
	Source string // "Logfile:" value
	RunID  string // "Run ID:" value; omitted when empty
}

// OutputName derives the output file name from name: a trailing ".log" is
// replaced by [Extension], any other name gets [Extension] appended.
func OutputName(name string) string {
	return strings.TrimSuffix(name, ".log") + Extension
}

type metaEntry struct {
	tag   string
	value string
}

func metadata(c *lineshape.Curve, opts Options) []metaEntry {
	entries := []metaEntry{
		{"Logfile:", opts.Source},
		{"Sigma:", formatParam(c.Params.Sigma)},
		{"Grid:", formatParam(c.Params.GridSpacing)},
		{"Shift:", formatParam(c.Params.Shift)},
		{"Range:", formatParam(c.Params.Range)},
		{"Created:", c.Created.Format(TimeLayout)},
	}
	if opts.RunID != "" {
		entries = append(entries, metaEntry{"Run ID:", opts.RunID})
	}

	return entries
}

func formatParam(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Write renders c to w.
//
// Rows are as many as grid points when the curve is shown, otherwise as many
// as sticks or metadata entries, whichever is larger. Column groups are
// separated by one space.
func Write(w io.Writer, c *lineshape.Curve, opts Options) error {
	if c == nil {
		return errNilCurve
	}

	showCurve := opts.Mode != ModeSticks
	showSticks := opts.Mode != ModeCurve
	showMeta := !opts.NoMeta

	var meta []metaEntry
	if showMeta {
		meta = metadata(c, opts)
	}

	nSticks := c.Sticks.Len()

	var rows int
	switch {
	case showCurve:
		rows = c.Len()
	case showMeta:
		rows = max(nSticks, len(meta))
	default:
		rows = nSticks
	}

	bw := bufio.NewWriter(w)

	for i := 0; i < rows; i++ {
		var header, line []string

		if showCurve {
			if i == 0 {
				header = append(header, fmt.Sprintf("%15s %17s %19s",
					"Energy (eV)", "Wavelength (nm)", "Intensity (au)"))
			}
			line = append(line, fmt.Sprintf("%15.3f %17.3f %19.5f",
				c.Energy[i], c.Wavelength[i], c.Absorbance[i]))
		}

		if showSticks {
			if i == 0 {
				header = append(header, fmt.Sprintf("%8s %15s %17s %19s",
					"State", "Energy (eV)", "Wavelength (nm)", "Intensity (au)"))
			}

			switch {
			case i < nSticks:
				s := c.Sticks.At(i)
				line = append(line, fmt.Sprintf("%8d %15.3f %17.3f %19.5f",
					i+1, s.Energy, s.Wavelength(), s.Strength))
			case i < len(meta):
				line = append(line, strings.Repeat(" ", 62))
			default:
				line = append(line, "")
			}
		}

		if i < len(meta) {
			line = append(line, fmt.Sprintf("%15s %20s", meta[i].tag, meta[i].value))
		}

		if i == 0 {
			writeRow(bw, header)
		}
		writeRow(bw, line)
	}

	return bw.Flush()
}

// writeRow joins cells and the line terminator with single spaces.
func writeRow(w *bufio.Writer, cells []string) {
	_, _ = w.WriteString(strings.Join(append(cells, "\n"), " "))
}
