package keylock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyLock_SerializesSameKey(t *testing.T) {
	kl := New()

	const workers = 50
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = kl.Do("calendar-1", func() error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestKeyLock_DifferentKeysDoNotBlock(t *testing.T) {
	kl := New()

	unlockA := kl.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := kl.Lock("b")
		unlockB()
		close(done)
	}()

	<-done // не должен зависнуть, пока "a" удерживается
}

func TestKeyLock_DoReturnsFnError(t *testing.T) {
	kl := New()

	err := kl.Do("k", func() error {
		return assert.AnError
	})

	require.ErrorIs(t, err, assert.AnError)
}

func TestKeyLock_CleansUpEntries(t *testing.T) {
	kl := New()

	_ = kl.Do("k", func() error { return nil })

	kl.mu.Lock()
	defer kl.mu.Unlock()
	assert.Empty(t, kl.locks)
}
