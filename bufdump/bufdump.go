// Package bufdump inspects the content of a cursorbuf.Buffer.
//
// A Report carries the length, an xxhash checksum, byte value statistics
// collected in an hdr histogram and a hex dump of the region split into
// rows of a fixed width.
//
// The cli in cmd/bufdump prints a report for a file, to try it out,
//
// ```
// go get github.com/performancecopilot/cursorbuf/bufdump/cmd/bufdump
// ```
package bufdump

import (
	"fmt"
	"io"
	"strings"

	"github.com/codahale/hdrhistogram"
	"github.com/performancecopilot/cursorbuf"
	"github.com/pkg/errors"
)

// DefaultWidth is the number of bytes in a dump row
const DefaultWidth = 16

// Row is a single line of a hex dump
type Row struct {
	Offset int    `json:"offset" yaml:"offset"`
	Hex    string `json:"hex" yaml:"hex"`
	Text   string `json:"text" yaml:"text"`
}

// Bar is a run of byte values with the number of times they occur
type Bar struct {
	From  int64 `json:"from" yaml:"from"`
	To    int64 `json:"to" yaml:"to"`
	Count int64 `json:"count" yaml:"count"`
}

// Stats summarizes the byte values of a region
type Stats struct {
	Min          int64   `json:"min" yaml:"min"`
	Max          int64   `json:"max" yaml:"max"`
	Mean         float64 `json:"mean" yaml:"mean"`
	StdDev       float64 `json:"stddev" yaml:"stddev"`
	P50          int64   `json:"p50" yaml:"p50"`
	P99          int64   `json:"p99" yaml:"p99"`
	Distribution []Bar   `json:"distribution" yaml:"distribution"`
}

// Report is the result of dumping a region
type Report struct {
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
	Length   int    `json:"length" yaml:"length"`
	Index    int    `json:"index" yaml:"index"`
	Checksum uint64 `json:"checksum" yaml:"checksum"`
	Stats    *Stats `json:"stats,omitempty" yaml:"stats,omitempty"`
	Rows     []Row  `json:"rows" yaml:"rows"`
}

// Dump creates a report from the passed data
func Dump(data []byte, width int) (*Report, error) {
	return DumpBuffer(cursorbuf.OfBytes(data), width)
}

// DumpBuffer creates a report from the region of b, the buffer is not
// modified
func DumpBuffer(b *cursorbuf.Buffer, width int) (*Report, error) {
	if width <= 0 {
		return nil, errors.Errorf("invalid row width %d", width)
	}

	r := &Report{
		Length:   b.Len(),
		Index:    b.Index(),
		Checksum: b.Checksum(),
		Rows:     rows(b, width),
	}

	if b.Len() > 0 {
		s, err := stats(b.Bytes())
		if err != nil {
			return nil, err
		}
		r.Stats = s
	}

	return r, nil
}

// DumpFile reads the file at path and creates a report from its content
func DumpFile(path string, width int) (*Report, error) {
	b := cursorbuf.New()
	if err := b.OpenFile(path, "r"); err != nil {
		return nil, err
	}
	defer b.CloseFile()

	if err := b.FromFileSync(); err != nil {
		return nil, err
	}

	r, err := DumpBuffer(b, width)
	if err != nil {
		return nil, err
	}

	r.Path = path
	return r, nil
}

func stats(data []byte) (*Stats, error) {
	h := hdrhistogram.New(0, 255, 3)
	for _, c := range data {
		if err := h.RecordValue(int64(c)); err != nil {
			return nil, errors.Wrapf(err, "recording byte value %d", c)
		}
	}

	s := &Stats{
		Min:    h.Min(),
		Max:    h.Max(),
		Mean:   h.Mean(),
		StdDev: h.StdDev(),
		P50:    h.ValueAtQuantile(50),
		P99:    h.ValueAtQuantile(99),
	}

	for _, bar := range h.Distribution() {
		if bar.Count == 0 {
			continue
		}
		s.Distribution = append(s.Distribution, Bar{From: bar.From, To: bar.To, Count: bar.Count})
	}

	return s, nil
}

func rows(b *cursorbuf.Buffer, width int) []Row {
	out := make([]Row, 0, (b.Len()+width-1)/width)

	for off := 0; off < b.Len(); off += width {
		p := b.Slice(off, off+width)
		out = append(out, Row{
			Offset: off,
			Hex:    cursorbuf.Hex.Decode(p),
			Text:   printable(p),
		})
	}

	return out
}

func printable(p []byte) string {
	var sb strings.Builder
	for _, c := range p {
		if c < 0x20 || c > 0x7e {
			c = '.'
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// WriteTo prints the report in a human readable form
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder

	if r.Path != "" {
		fmt.Fprintf(&sb, "File      = %v\n", r.Path)
	}
	fmt.Fprintf(&sb, "Length    = %v\n", r.Length)
	fmt.Fprintf(&sb, "Index     = %v\n", r.Index)
	fmt.Fprintf(&sb, "Checksum  = 0x%016x\n", r.Checksum)

	if s := r.Stats; s != nil {
		fmt.Fprintf(&sb, "\nByte values: min=%d max=%d mean=%.2f stddev=%.2f p50=%d p99=%d\n",
			s.Min, s.Max, s.Mean, s.StdDev, s.P50, s.P99)
	}

	if len(r.Rows) > 0 {
		sb.WriteString("\n")
	}

	for _, row := range r.Rows {
		fmt.Fprintf(&sb, "%08x  %s  |%s|\n", row.Offset, spaced(row.Hex), row.Text)
	}

	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// spaced separates every byte of a hex string with a space
func spaced(h string) string {
	parts := make([]string, 0, len(h)/2)
	for i := 0; i+2 <= len(h); i += 2 {
		parts = append(parts, h[i:i+2])
	}
	return strings.Join(parts, " ")
}
