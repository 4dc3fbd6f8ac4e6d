package json

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/drakos74/hopfield/internal/storage"
)

const logExt = ".log"

// Logger appends json lines to a log file per key.
type Logger struct {
	path string
}

// NewLogger creates a logger writing under the given directory.
func NewLogger(dir string) *Logger {
	return &Logger{path: dir}
}

func (l *Logger) file(k storage.Key) string {
	return filepath.Join(l.path, k.Path()+logExt)
}

// Append adds the value as a new line to the log of the key.
func (l *Logger) Append(k storage.Key, value interface{}) (err error) {
	if err := k.Validate(); err != nil {
		return err
	}
	if err := ensureDir(l.path); err != nil {
		return err
	}

	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not encode value '%+v': %w", value, err)
	}

	p := l.file(k)
	f, err := os.OpenFile(p, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return fmt.Errorf("could not open log file '%s': %w", p, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close log file '%s': %w", p, cerr)
		}
	}()

	if _, err := f.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("could not append to log file '%s': %w", p, err)
	}
	return nil
}

// GetAll decodes all lines of the key log into value, which must point to a slice.
func (l *Logger) GetAll(k storage.Key, value interface{}) error {
	if err := k.Validate(); err != nil {
		return err
	}
	p := l.file(k)
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("no log for '%s': %w", k.Label, storage.NotFoundErr)
		}
		return fmt.Errorf("could not read log file '%s': %w", p, err)
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	n := 0
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if n > 0 {
			buf.WriteByte(',')
		}
		buf.Write(line)
		n++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("could not scan log file '%s': %w", p, err)
	}
	buf.WriteByte(']')

	if err := json.Unmarshal(buf.Bytes(), value); err != nil {
		return fmt.Errorf("could not decode log '%s': %v: %w", p, err, storage.CouldNotLoadErr)
	}
	return nil
}
