package parallel

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncListKeepsOrderForSingleWriter(t *testing.T) {
	list := NewSyncList[string]()
	list.Add("a")
	list.Add("b")
	list.Add("c")

	head, ok := list.PopHead()
	assert.True(t, ok)
	assert.Equal(t, "a", head)
	assert.Equal(t, 2, list.Len())
	assert.Equal(t, []string{"b", "c"}, list.Drain())
	assert.Equal(t, 0, list.Len())

	_, ok = list.PopHead()
	assert.False(t, ok)
	assert.Empty(t, list.Drain())
}

func TestSyncListConcurrentWriters(t *testing.T) {
	list := NewSyncList[int]()
	waitGroup := sync.WaitGroup{}
	for writer := 0; writer < 8; writer++ {
		waitGroup.Add(1)
		go func(writer int) {
			defer waitGroup.Done()
			for i := 0; i < 50; i++ {
				list.Add(writer*50 + i)
			}
		}(writer)
	}
	waitGroup.Wait()

	drained := list.Drain()
	assert.Len(t, drained, 400)
	sort.Ints(drained)
	for i, value := range drained {
		assert.Equal(t, i, value)
	}
}

func TestJobQueueCollectsIntoSyncList(t *testing.T) {
	queue := CreateJobQueue(8, 4, nil)
	defer queue.Close()

	results := NewSyncList[int]()
	for i := 0; i < 20; i++ {
		i := i
		assert.NoError(t, queue.Add(func() { results.Add(i * i) }))
	}
	assert.NoError(t, queue.Wait())
	assert.Equal(t, 20, results.Len())
}
