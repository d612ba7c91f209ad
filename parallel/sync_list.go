package parallel

import (
	"sync"

	"sshmisc/util"
)

// SyncList guards a util.List with a mutex so several goroutines may append
// to and drain it. Iterators are not exposed: a cursor would outlive the lock.
type SyncList[T any] struct {
	mutex sync.Mutex
	list  util.List[T]
}

func NewSyncList[T any]() *SyncList[T] {
	return &SyncList[T]{}
}

func (syncList *SyncList[T]) Add(data T) {
	syncList.mutex.Lock()
	defer syncList.mutex.Unlock()
	syncList.list.Add(data)
}

func (syncList *SyncList[T]) PopHead() (T, bool) {
	syncList.mutex.Lock()
	defer syncList.mutex.Unlock()
	return syncList.list.PopHead()
}

func (syncList *SyncList[T]) Len() int {
	syncList.mutex.Lock()
	defer syncList.mutex.Unlock()
	return syncList.list.Len()
}

// Drain empties the list and returns its values in insertion order.
func (syncList *SyncList[T]) Drain() []T {
	syncList.mutex.Lock()
	defer syncList.mutex.Unlock()

	drained := make([]T, 0, syncList.list.Len())
	for {
		data, ok := syncList.list.PopHead()
		if !ok {
			return drained
		}
		drained = append(drained, data)
	}
}
