package cache

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/cognicore/newsprism/pkg/newsprism/article"
)

// Memory is an in-process Store. With capacity 0 it grows unbounded for
// the lifetime of the process; with a positive capacity it evicts
// least-recently-used entries.
type Memory struct {
	mu        sync.RWMutex
	unbounded map[article.Fingerprint]article.AnalysisResult
	bounded   *lru.Cache[article.Fingerprint, article.AnalysisResult]
}

// NewMemory creates a memory store. capacity <= 0 means unbounded.
func NewMemory(capacity int) (*Memory, error) {
	if capacity <= 0 {
		return &Memory{unbounded: make(map[article.Fingerprint]article.AnalysisResult)}, nil
	}
	c, err := lru.New[article.Fingerprint, article.AnalysisResult](capacity)
	if err != nil {
		return nil, err
	}
	return &Memory{bounded: c}, nil
}

// Get implements Store.
func (m *Memory) Get(ctx context.Context, fp article.Fingerprint) (article.AnalysisResult, bool, error) {
	if m.bounded != nil {
		if res, ok := m.bounded.Get(fp); ok {
			return copyResult(res), true, nil
		}
		return article.AnalysisResult{}, false, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if res, ok := m.unbounded[fp]; ok {
		return copyResult(res), true, nil
	}
	return article.AnalysisResult{}, false, nil
}

// Put implements Store.
func (m *Memory) Put(ctx context.Context, res article.AnalysisResult) error {
	stored := copyResult(res)
	if m.bounded != nil {
		m.bounded.Add(res.Fingerprint, stored)
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.unbounded[res.Fingerprint] = stored
	return nil
}

// Len implements Store.
func (m *Memory) Len() int {
	if m.bounded != nil {
		return m.bounded.Len()
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.unbounded)
}

// Close implements Store.
func (m *Memory) Close() error { return nil }
