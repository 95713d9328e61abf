// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dump writes timestamped JSON snapshots of upstream requests and
// responses for offline inspection. The sink is strictly best-effort: a nil
// sink, a missing directory, or a write failure never affects the call that
// produced the payload.
package dump

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// timestampFormat matches the per-file suffix used by every adapter.
const timestampFormat = "20060102_150405"

// now is stubbed in tests for stable filenames.
var now = time.Now

// Sink dumps payloads under Dir/<adapter>/<label>_<timestamp>.json.
type Sink struct {
	Dir string
	Log *zap.Logger
}

// New returns a sink rooted at dir, or nil when dir is empty (dumping
// disabled). A nil logger is replaced with a no-op logger.
func New(dir string, log *zap.Logger) *Sink {
	if dir == "" {
		return nil
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Sink{Dir: dir, Log: log}
}

// Write serializes payload as indented JSON into the adapter's directory.
// Safe on a nil receiver. All failures are logged and swallowed.
func (s *Sink) Write(adapter, label string, payload any) {
	if s == nil || s.Dir == "" {
		return
	}

	dir := filepath.Join(s.Dir, adapter)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.Log.Debug("dump: creating directory", zap.String("dir", dir), zap.Error(err))
		return
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		s.Log.Debug("dump: marshaling payload", zap.String("adapter", adapter), zap.Error(err))
		return
	}

	name := fmt.Sprintf("%s_%s.json", label, now().Format(timestampFormat))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.Log.Debug("dump: writing file", zap.String("path", path), zap.Error(err))
		return
	}

	s.Log.Debug("dump: wrote", zap.String("path", path))
}
