// Package file keeps monitored targets and scan checkpoints in a YAML
// document on local disk.
//
// The document looks like:
//
//	targets:
//	  - kind: wildfire
//	    descriptor: 501 Stanyan Street, San Francisco
//	  - kind: flight
//	    descriptor: UA1324
//	checkpoints:
//	  "flight:UA1324": 2025-05-01T10:00:00Z
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gabapcia/oraclewatch/internal/target"

	"gopkg.in/yaml.v3"
)

type document struct {
	Targets     []target.MonitoredTarget `yaml:"targets"`
	Checkpoints map[string]time.Time     `yaml:"checkpoints,omitempty"`
}

type store struct {
	mu   sync.Mutex
	path string
	doc  document
}

var (
	_ target.TargetStorage         = (*store)(nil)
	_ target.ScanCheckpointStorage = (*store)(nil)
)

// Open loads the document at path. A missing file is treated as an empty
// document and is created on the first write.
func Open(path string) (*store, error) {
	s := &store{path: path}

	raw, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if err := yaml.Unmarshal(raw, &s.doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if s.doc.Checkpoints == nil {
		s.doc.Checkpoints = make(map[string]time.Time)
	}

	return s, nil
}

func (s *store) indexOf(t target.MonitoredTarget) int {
	return slices.IndexFunc(s.doc.Targets, func(stored target.MonitoredTarget) bool {
		return stored.Kind == t.Kind && strings.TrimSpace(stored.Descriptor) == t.Descriptor
	})
}

func (s *store) SaveTarget(_ context.Context, t target.MonitoredTarget) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(t) >= 0 {
		return nil
	}

	s.doc.Targets = append(s.doc.Targets, target.MonitoredTarget{Kind: t.Kind, Descriptor: t.Descriptor})
	return s.flush()
}

func (s *store) DeleteTarget(_ context.Context, t target.MonitoredTarget) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(t)
	if i < 0 {
		return target.ErrTargetNotFound
	}

	s.doc.Targets = slices.Delete(s.doc.Targets, i, i+1)
	delete(s.doc.Checkpoints, target.MakeID(t.Kind, t.Descriptor))

	return s.flush()
}

// ListTargets returns the targets of kind in document order.
func (s *store) ListTargets(_ context.Context, kind target.Kind) ([]target.MonitoredTarget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []target.MonitoredTarget
	for _, t := range s.doc.Targets {
		if t.Kind == kind {
			out = append(out, t)
		}
	}

	return out, nil
}

func (s *store) SaveLastScan(_ context.Context, targetID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.Checkpoints[targetID] = at.UTC()
	return s.flush()
}

func (s *store) LoadLastScans(_ context.Context, targetIDs []string) (map[string]time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scans := make(map[string]time.Time, len(targetIDs))
	for _, id := range targetIDs {
		if at, ok := s.doc.Checkpoints[id]; ok {
			scans[id] = at
		}
	}

	return scans, nil
}

// flush replaces the document atomically via a temporary file. Callers
// hold mu.
func (s *store) flush() error {
	raw, err := yaml.Marshal(s.doc)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}
