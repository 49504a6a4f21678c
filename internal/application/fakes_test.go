package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quentel/tally/internal/ports"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock { return &fakeClock{now: now} }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func (c *fakeClock) Set(now time.Time) { c.now = now }

type memStore struct {
	values map[string]string
}

func newMemStore() *memStore { return &memStore{values: map[string]string{}} }

func (m *memStore) Get(_ context.Context, key string) (string, error) {
	value, ok := m.values[key]
	if !ok {
		return "", fmt.Errorf("mem key %q: %w", key, ports.ErrKeyNotFound)
	}
	return value, nil
}

func (m *memStore) Put(_ context.Context, key string, value string) error {
	m.values[key] = value
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

// failingStore simulates unavailable persistence: reads find nothing and
// writes fail.
type failingStore struct{}

var errStoreDown = errors.New("store unavailable")

func (failingStore) Get(context.Context, string) (string, error) { return "", errStoreDown }

func (failingStore) Put(context.Context, string, string) error { return errStoreDown }

func (failingStore) Delete(context.Context, string) error { return errStoreDown }

type seqIDs struct {
	next int
}

func (s *seqIDs) NewID() string {
	s.next++
	return fmt.Sprintf("rec-%d", s.next)
}
