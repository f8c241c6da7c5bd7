package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
)

// Memory keeps uploads in memory. It backs tests and local runs without an
// object store.
type Memory struct {
	mu      sync.Mutex
	baseURL string
	objects map[string][]byte
}

func NewMemory(baseURL string) *Memory {
	return &Memory{baseURL: baseURL, objects: map[string][]byte{}}
}

func (m *Memory) Upload(_ context.Context, p Path, r io.Reader) (*Object, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", p, err)
	}

	m.mu.Lock()
	m.objects[p.String()] = buf.Bytes()
	m.mu.Unlock()

	return &Object{PublicID: p.String(), URL: m.baseURL + "/" + p.String()}, nil
}

// Get returns the content stored at id.
func (m *Memory) Get(id string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.objects[id]
	return b, ok
}
