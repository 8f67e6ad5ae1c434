package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/levelup/internal/logger"
)

// fileSlotStorage keeps every slot in <dir>/<slot>.json. Writes go to a
// temporary file that is renamed over the target, so a crash never leaves a
// half-written collection behind.
type fileSlotStorage struct {
	dir    string
	logger *logger.Logger
}

// NewFileSlotStorage creates dir if needed and returns a [SlotStorage] backed
// by files in it.
func NewFileSlotStorage(dir string, log *logger.Logger) (SlotStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Err(err).Str("dir", dir).Msg("error creating storage directory")
		return nil, fmt.Errorf("error creating storage directory: %w", err)
	}

	return &fileSlotStorage{dir: dir, logger: log}, nil
}

func (f *fileSlotStorage) path(slot string) (string, error) {
	if slot == "" || slot == "." || slot == ".." || filepath.Base(slot) != slot {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}

	return filepath.Join(f.dir, slot+".json"), nil
}

func (f *fileSlotStorage) Get(_ context.Context, slot string) ([]byte, error) {
	path, err := f.path(slot)
	if err != nil {
		return nil, err
	}

	payload, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading slot file: %w", err)
	}

	return payload, nil
}

func (f *fileSlotStorage) Set(_ context.Context, slot string, payload []byte) error {
	path, err := f.path(slot)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.dir, slot+".*.tmp")
	if err != nil {
		return classifyFileError(fmt.Errorf("error creating temp file: %w", err))
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return classifyFileError(fmt.Errorf("error writing slot file: %w", err))
	}
	if err = tmp.Close(); err != nil {
		return classifyFileError(fmt.Errorf("error closing slot file: %w", err))
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("error replacing slot file: %w", err)
	}

	return nil
}

func classifyFileError(err error) error {
	if errors.Is(err, syscall.ENOSPC) {
		return errors.Join(ErrQuotaExceeded, err)
	}
	return err
}
