// Package dedupe tracks archive keys so each record is pushed at most once.
package dedupe

import (
	"container/list"
	"context"
	"strconv"
	"sync"
	"sync/atomic"
)

const defaultMaxSize = 10000

// Deduper records archive keys.
type Deduper interface {
	// SeenAndRecord reports whether key was already recorded and records it
	// if it was not. The check and the insert are atomic.
	SeenAndRecord(ctx context.Context, key string) bool

	// Unrecord forgets key so the record can be pushed again. Callers use it
	// to roll back when a job could not be enqueued or its push failed.
	Unrecord(ctx context.Context, key string)

	Size() int64
}

// ProjectKey is the archive key of a project record.
func ProjectKey(projectID int) string {
	return "project:" + strconv.Itoa(projectID)
}

// TaskKey is the archive key of a task record.
func TaskKey(projectID int, taskID string) string {
	return "task:" + strconv.Itoa(projectID) + ":" + taskID
}

// seenSet keeps keys in insertion order. When bounded, the oldest key is
// evicted to make room for a new one.
type seenSet struct {
	mu      sync.Mutex
	order   *list.List
	keys    map[string]*list.Element
	maxSize int // <= 0 means unbounded
	size    atomic.Int64
}

// NewInMemoryDeduper creates a deduper with configuration options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &seenSet{maxSize: defaultMaxSize}
	for _, opt := range opts {
		opt(d)
	}
	d.order = list.New()
	d.keys = make(map[string]*list.Element)
	return d
}

func (d *seenSet) SeenAndRecord(_ context.Context, key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.keys[key]; ok {
		return true
	}
	if d.maxSize > 0 && d.order.Len() >= d.maxSize {
		d.evictOldest()
	}
	d.keys[key] = d.order.PushFront(key)
	d.size.Store(int64(d.order.Len()))
	return false
}

func (d *seenSet) Unrecord(_ context.Context, key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if el, ok := d.keys[key]; ok {
		d.order.Remove(el)
		delete(d.keys, key)
		d.size.Store(int64(d.order.Len()))
	}
}

// evictOldest must be called with d.mu held.
func (d *seenSet) evictOldest() {
	el := d.order.Back()
	if el == nil {
		return
	}
	d.order.Remove(el)
	delete(d.keys, el.Value.(string))
}

func (d *seenSet) Size() int64 {
	return d.size.Load()
}
