// Package pbm reads and writes patterns as plain (ASCII) portable bitmaps.
//
//	P1
//	16 16
//	0 1 0 ... (16 rows of 16 pixels)
package pbm

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/drakos74/hopfield/internal/model"
)

const (
	// Ext is the file extension of pattern files.
	Ext = ".pbm"
	// Magic is the header of the plain bitmap format.
	Magic = "P1"
)

// Decode parses a plain bitmap of exactly model.Width x model.Height pixels.
// Surrounding whitespace and blank lines are ignored.
func Decode(r io.Reader) (model.Pattern, error) {
	lines := make([]string, 0, model.Height+2)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read bitmap: %w", err)
	}

	if len(lines) == 0 || lines[0] != Magic {
		return nil, fmt.Errorf("not an ascii bitmap, expected '%s' header: %w", Magic, model.FormatErr)
	}
	if len(lines) < 2 || !dimensions(lines[1]) {
		return nil, fmt.Errorf("bitmap does not have %dx%d dimensions: %w", model.Width, model.Height, model.FormatErr)
	}
	rows := lines[2:]
	if len(rows) != model.Height {
		return nil, fmt.Errorf("expected %d rows but found %d: %w", model.Height, len(rows), model.FormatErr)
	}

	pattern := make(model.Pattern, 0, model.Size)
	for r, row := range rows {
		pixels := strings.Fields(row)
		if len(pixels) != model.Width {
			return nil, fmt.Errorf("expected %d pixels in row %d but found %d: %w", model.Width, r, len(pixels), model.FormatErr)
		}
		for c, px := range pixels {
			switch px {
			case "0":
				pattern = append(pattern, 0)
			case "1":
				pattern = append(pattern, 1)
			default:
				return nil, fmt.Errorf("invalid pixel '%s' at [%d,%d]: %w", px, r, c, model.FormatErr)
			}
		}
	}
	return pattern, nil
}

func dimensions(line string) bool {
	dims := strings.Fields(line)
	return len(dims) == 2 &&
		dims[0] == strconv.Itoa(model.Width) &&
		dims[1] == strconv.Itoa(model.Height)
}

// Encode writes the state as a plain bitmap.
// Pixels are mapped with (v+1)/2, so both bipolar {-1,+1} and binary {0,1} states are accepted.
func Encode(w io.Writer, state []int) error {
	if len(state) != model.Size {
		return fmt.Errorf("state has %d pixels instead of %d: %w", len(state), model.Size, model.InvalidInputErr)
	}
	for i, v := range state {
		if v < -1 || v > 1 {
			return fmt.Errorf("pixel %d has invalid value %d: %w", i, v, model.InvalidInputErr)
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d %d\n", Magic, model.Width, model.Height)
	for r := 0; r < model.Height; r++ {
		for c := 0; c < model.Width; c++ {
			if c > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa((state[model.Index(r, c)] + 1) / 2))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Read decodes the pattern stored in the given file.
func Read(path string) (model.Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("pattern file '%s' does not exist: %w", path, model.NotFoundErr)
		}
		return nil, fmt.Errorf("could not open pattern file '%s': %w", path, err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode '%s': %w", path, err)
	}
	return p, nil
}

// Write encodes the state into the given file, replacing any previous content.
func Write(path string, state []int) (err error) {
	if !strings.HasSuffix(path, Ext) {
		return fmt.Errorf("invalid file path '%s', expected '%s' extension: %w", path, Ext, model.InvalidInputErr)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, state); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create file '%s': %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close file '%s': %w", path, cerr)
		}
	}()

	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("could not write pattern to file '%s': %w", path, err)
	}
	return nil
}
