// Package identity keeps the widget's two persisted local values: the display
// name reused to prefill author fields, and the anonymous device identifier
// that keys likedBy membership. Neither is an account; both are plain local
// state with no expiry.
package identity

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const identityFile = "identity.json"

type persistedIdentity struct {
	DisplayName string `json:"displayName,omitempty"`
	DeviceId    string `json:"deviceId,omitempty"`
}

type Manager struct {
	mu   sync.Mutex
	path string
	data persistedIdentity
}

// NewManager loads any previously persisted identity from dataDir. A missing
// or unreadable file means a fresh identity; it is created lazily on first
// use, not here.
func NewManager(dataDir string) (*Manager, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}

	m := &Manager{path: filepath.Join(dataDir, identityFile)}
	if b, err := os.ReadFile(m.path); err == nil {
		_ = json.Unmarshal(b, &m.data)
	}
	return m, nil
}

// GetOrCreateDeviceID returns the persisted device identifier, generating and
// persisting one on first call. Idempotent afterwards.
func (m *Manager) GetOrCreateDeviceID() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data.DeviceId != "" {
		return m.data.DeviceId, nil
	}

	m.data.DeviceId = NewDeviceID()
	return m.data.DeviceId, m.save()
}

// GetOrCreateDisplayName resolves the author name for a submission: an
// explicit non-blank value wins and is persisted, else the previously
// persisted name, else a fresh pseudonym which is persisted on generation.
func (m *Manager) GetOrCreateDisplayName(explicit string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if name := strings.TrimSpace(explicit); name != "" {
		m.data.DisplayName = name
		return name, m.save()
	}

	if m.data.DisplayName != "" {
		return m.data.DisplayName, nil
	}

	m.data.DisplayName = GeneratePseudonym()
	return m.data.DisplayName, m.save()
}

func (m *Manager) save() error {
	b, err := json.MarshalIndent(m.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.path, b, 0o644)
}
