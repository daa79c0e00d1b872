package planewar

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalData is what survives between runs, kept as yaml next to the binary.
type LocalData struct {
	Scoreboard []ScoreEntry `yaml:"scoreboard"`
}

// ReadLocalData returns an empty table when path doesn't exist yet.
func ReadLocalData(path string) (LocalData, error) {
	persistent := LocalData{}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return persistent, nil
	}
	if err != nil {
		return persistent, fmt.Errorf("read local data: %w", err)
	}

	if err := yaml.Unmarshal(data, &persistent); err != nil {
		return LocalData{}, fmt.Errorf("parse local data %s: %w", path, err)
	}
	return persistent, nil
}

// WriteToFile replaces path through a temp file and a rename.
func (data *LocalData) WriteToFile(path string) error {
	yml, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode local data: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".gamedata-*")
	if err != nil {
		return fmt.Errorf("write local data: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(yml); err != nil {
		tmp.Close()
		return fmt.Errorf("write local data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write local data: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write local data: %w", err)
	}
	return nil
}
