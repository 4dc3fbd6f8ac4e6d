package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/drakos74/hopfield/internal/storage"
)

const ext = ".json"

// Save saves the given json struct into the given path with the provided filename.
func Save(filePath string, fileName string, value interface{}) (err error) {
	if err := ensureDir(filePath); err != nil {
		return err
	}

	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not encode '%s': %w", fileName, err)
	}

	// create the output file
	p := filepath.Join(filePath, fileName+ext)
	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("could not create file '%s': %w", p, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close file '%s': %w", p, cerr)
		}
	}()

	// write the file
	if _, err := f.Write(b); err != nil {
		return fmt.Errorf("could not write bytes to file '%s': %w", p, err)
	}
	return nil
}

// Load loads the payload from the given filePath and fileName.
func Load(filePath string, fileName string, value interface{}) error {
	p := filepath.Join(filePath, fileName+ext)

	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("could not find file '%s': %w", p, storage.NotFoundErr)
		}
		return fmt.Errorf("could not read file '%s': %v: %w", p, err, storage.CouldNotLoadErr)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return fmt.Errorf("could not decode '%s': %v: %w", p, err, storage.CouldNotLoadErr)
	}
	return nil
}

func ensureDir(filePath string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		if err := os.MkdirAll(filePath, os.ModePerm); err != nil {
			return fmt.Errorf("could not make dir: %s: %w", filePath, err)
		}
		return nil
	}
	if !info.IsDir() {
		return fmt.Errorf("path given is not a directory: %s", filePath)
	}
	return nil
}
