package storage

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// StubImageStorage keeps objects in memory and fabricates public URLs.
// It backs development and tests, where no bucket is available.
type StubImageStorage struct {
	baseURL string

	mu      sync.RWMutex
	objects map[string][]byte
}

var _ ImageStorage = (*StubImageStorage)(nil)

func NewStubImageStorage(baseURL string) *StubImageStorage {
	if baseURL == "" {
		baseURL = "https://storage.local"
	}
	return &StubImageStorage{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		objects: make(map[string][]byte),
	}
}

func (s *StubImageStorage) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	if key == "" {
		return "", errors.New("storage: key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[key] = buf

	return s.baseURL + "/" + key, nil
}

func (s *StubImageStorage) Delete(_ context.Context, key string) error {
	if key == "" {
		return errors.New("storage: key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *StubImageStorage) Exists(_ context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("storage: key is required")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[key]
	return ok, nil
}
