package api

import "sync"

// DatasetLocks is a keyed mutex: callers locking the same dataset reference run one at a
// time, different datasets proceed in parallel. It only coordinates within one process.
type DatasetLocks struct {
	mu    sync.Mutex
	locks map[string]*datasetLock
}

type datasetLock struct {
	sync.Mutex
	waiters int
}

// NewDatasetLocks creates an empty set of locks.
func NewDatasetLocks() *DatasetLocks {
	return &DatasetLocks{locks: map[string]*datasetLock{}}
}

// Lock blocks until key is free and returns the function releasing it.
func (l *DatasetLocks) Lock(key string) func() {
	l.mu.Lock()
	dl, ok := l.locks[key]
	if !ok {
		dl = &datasetLock{}
		l.locks[key] = dl
	}
	dl.waiters++
	l.mu.Unlock()

	dl.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			dl.Unlock()

			l.mu.Lock()
			dl.waiters--
			if dl.waiters == 0 {
				delete(l.locks, key)
			}
			l.mu.Unlock()
		})
	}
}

// Len returns the number of keys currently locked or waited on.
func (l *DatasetLocks) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
