package kv

import (
	"fmt"
	"maps"
	"slices"
)

// Memory is a Store that lives as long as the process.
type Memory struct {
	entries map[string][]byte
}

func NewMemory() *Memory { return &Memory{entries: make(map[string][]byte)} }

func (s *Memory) Get(key string) ([]byte, error) {
	v, ok := s.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return slices.Clone(v), nil
}

func (s *Memory) Set(key string, value []byte) error {
	s.entries[key] = slices.Clone(value)
	return nil
}

func (s *Memory) Delete(key string) error {
	delete(s.entries, key)
	return nil
}

// Keys returns the stored keys, sorted.
func (s *Memory) Keys() []string { return slices.Sorted(maps.Keys(s.entries)) }

func (s *Memory) Close() error { return nil }
