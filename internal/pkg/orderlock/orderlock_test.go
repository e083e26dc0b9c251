package orderlock_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/orderlock"
)

func Test_KeyedMutex_SerializesSameKey(t *testing.T) {
	km := orderlock.NewKeyedMutex()
	orderID := kernel.NewUUID()

	const workers = 50
	counter := 0

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			unlock := km.Lock(orderID)
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func Test_KeyedMutex_IndependentKeys(t *testing.T) {
	km := orderlock.NewKeyedMutex()
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	unlockFirst := km.Lock(first)
	defer unlockFirst()

	done := make(chan struct{})
	go func() {
		unlock := km.Lock(second)
		unlock()
		close(done)
	}()

	// A held lock on one order must not block another order.
	<-done
}
