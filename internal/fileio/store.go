// Package fileio reads and writes the plain text files behind editor tabs
// and classifies the ways that can fail.
package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"cnotepad/internal/logger"
)

var (
	ErrNoPath      = errors.New("document has no file path")
	ErrNotFound    = errors.New("file does not exist")
	ErrPermission  = errors.New("permission denied")
	ErrInvalidPath = errors.New("invalid file path")
)

// Store is the file access the editor needs.
type Store interface {
	Read(path string) (string, error)
	Write(path, content string) error
}

// OSStore reads and writes files on the local filesystem.
type OSStore struct {
	tracker *Tracker
	logger  logger.Logger
}

func NewOSStore(tracker *Tracker, log logger.Logger) *OSStore {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &OSStore{
		tracker: tracker,
		logger:  log,
	}
}

func (s *OSStore) Read(path string) (string, error) {
	if err := validatePath(path); err != nil {
		return "", err
	}

	ctx := s.tracker.StartTiming(OpRead)
	data, err := os.ReadFile(path)
	s.tracker.EndTiming(ctx)
	if err != nil {
		err = Classify(err)
		s.tracker.TrackFailure(path, OpRead, err)
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	s.tracker.TrackAccess(path, OpRead, len(data))
	s.logger.Debug("FileStore", "file read", map[string]interface{}{
		"path":  path,
		"bytes": len(data),
	})
	return string(data), nil
}

func (s *OSStore) Write(path, content string) error {
	if err := validatePath(path); err != nil {
		return err
	}

	ctx := s.tracker.StartTiming(OpWrite)
	err := os.WriteFile(path, []byte(content), 0o644)
	s.tracker.EndTiming(ctx)
	if err != nil {
		err = Classify(err)
		s.tracker.TrackFailure(path, OpWrite, err)
		return fmt.Errorf("write %s: %w", path, err)
	}

	s.tracker.TrackAccess(path, OpWrite, len(content))
	s.logger.Debug("FileStore", "file written", map[string]interface{}{
		"path":  path,
		"bytes": len(content),
	})
	return nil
}

func validatePath(path string) error {
	if path == "" {
		return ErrNoPath
	}
	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("%q: %w", path, ErrInvalidPath)
	}
	if strings.HasSuffix(path, string(filepath.Separator)) {
		return fmt.Errorf("%s: names a directory: %w", path, ErrInvalidPath)
	}
	return nil
}

// Classify maps an OS error onto the package's sentinel errors. Errors that
// fit none of them are returned unchanged.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNoPath), errors.Is(err, ErrNotFound),
		errors.Is(err, ErrPermission), errors.Is(err, ErrInvalidPath):
		return err
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %v", ErrPermission, err)
	case errors.Is(err, syscall.EISDIR), errors.Is(err, syscall.ENAMETOOLONG),
		errors.Is(err, syscall.ENOTDIR), errors.Is(err, syscall.EINVAL):
		return fmt.Errorf("%w: %v", ErrInvalidPath, err)
	default:
		return err
	}
}

// NeedsNewPath reports whether a save failure can be recovered by asking the
// user for a different destination.
func NeedsNewPath(err error) bool {
	return errors.Is(err, ErrNoPath) || errors.Is(err, ErrInvalidPath) || errors.Is(err, ErrNotFound)
}
