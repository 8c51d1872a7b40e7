package keylock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLock_SerializesSameKey(t *testing.T) {
	l := New()

	var (
		wg      sync.WaitGroup
		counter int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.Lock("room-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
	assert.Equal(t, 0, l.Len())
}

func TestLock_DifferentKeysIndependent(t *testing.T) {
	l := New()

	unlockA := l.Lock("a")
	unlockB := l.Lock("b")
	assert.Equal(t, 2, l.Len())

	unlockA()
	unlockB()
	assert.Equal(t, 0, l.Len())
}

func TestLock_UnlockIsIdempotent(t *testing.T) {
	l := New()

	unlock := l.Lock("a")
	unlock()
	unlock()

	assert.Equal(t, 0, l.Len())
	relock := l.Lock("a")
	relock()
}
