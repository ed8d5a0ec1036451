package fileio

import (
	"sort"
	"sync"
	"time"
)

type Op string

const (
	OpRead  Op = "read"
	OpWrite Op = "write"
)

// FileInfo is the access history of one path.
type FileInfo struct {
	Path         string
	Reads        int
	Writes       int
	Failures     int
	BytesRead    int64
	BytesWritten int64
	LastAccess   time.Time
	LastError    string
}

// Stats summarises all tracked paths.
type Stats struct {
	Files    int
	Reads    int
	Writes   int
	Failures int
}

// Tracker records file reads and writes. A nil *Tracker is valid and
// records nothing.
type Tracker struct {
	files   map[string]*FileInfo
	timings map[Op][]time.Duration
	mu      sync.RWMutex
	enabled bool
	now     func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		files:   make(map[string]*FileInfo),
		timings: make(map[Op][]time.Duration),
		enabled: true,
		now:     time.Now,
	}
}

func (ft *Tracker) TrackAccess(path string, op Op, size int) {
	if ft == nil {
		return
	}

	ft.mu.Lock()
	defer ft.mu.Unlock()
	if !ft.enabled {
		return
	}

	info := ft.entry(path)
	switch op {
	case OpRead:
		info.Reads++
		info.BytesRead += int64(size)
	case OpWrite:
		info.Writes++
		info.BytesWritten += int64(size)
	}
	info.LastAccess = ft.now()
}

func (ft *Tracker) TrackFailure(path string, op Op, err error) {
	if ft == nil {
		return
	}

	ft.mu.Lock()
	defer ft.mu.Unlock()
	if !ft.enabled {
		return
	}

	info := ft.entry(path)
	info.Failures++
	info.LastAccess = ft.now()
	if err != nil {
		info.LastError = string(op) + ": " + err.Error()
	}
}

func (ft *Tracker) entry(path string) *FileInfo {
	info, ok := ft.files[path]
	if !ok {
		info = &FileInfo{Path: path}
		ft.files[path] = info
	}
	return info
}

// Lookup returns a copy of path's history.
func (ft *Tracker) Lookup(path string) (FileInfo, bool) {
	if ft == nil {
		return FileInfo{}, false
	}

	ft.mu.RLock()
	defer ft.mu.RUnlock()

	info, ok := ft.files[path]
	if !ok {
		return FileInfo{}, false
	}
	return *info, true
}

// Files returns every tracked path's history, most recent first.
func (ft *Tracker) Files() []FileInfo {
	if ft == nil {
		return nil
	}

	ft.mu.RLock()
	result := make([]FileInfo, 0, len(ft.files))
	for _, v := range ft.files {
		result = append(result, *v)
	}
	ft.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].LastAccess.After(result[j].LastAccess)
	})
	return result
}

func (ft *Tracker) Stats() Stats {
	var s Stats
	for _, f := range ft.Files() {
		s.Files++
		s.Reads += f.Reads
		s.Writes += f.Writes
		s.Failures += f.Failures
	}
	return s
}

func (ft *Tracker) SetEnabled(enabled bool) {
	if ft == nil {
		return
	}
	ft.mu.Lock()
	defer ft.mu.Unlock()
	ft.enabled = enabled
}
