package debounce_test

import (
	"sync"
	"testing"
	"time"

	"github.com/greenmart/storefront/pkg/debounce"
	"github.com/stretchr/testify/assert"
)

func TestDebouncer(t *testing.T) {
	t.Run("BurstCollapsesToLastCall", func(t *testing.T) {
		b := debounce.New(30 * time.Millisecond)

		var mu sync.Mutex
		var got []string

		for _, v := range []string{"b", "ba", "bam", "bamboo"} {
			v := v
			b.Do(func() {
				mu.Lock()
				got = append(got, v)
				mu.Unlock()
			})
			time.Sleep(5 * time.Millisecond)
		}

		time.Sleep(100 * time.Millisecond)

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, []string{"bamboo"}, got)
	})

	t.Run("StopCancelsPending", func(t *testing.T) {
		b := debounce.New(20 * time.Millisecond)

		var mu sync.Mutex
		fired := false
		b.Do(func() {
			mu.Lock()
			fired = true
			mu.Unlock()
		})
		b.Stop()

		time.Sleep(60 * time.Millisecond)

		mu.Lock()
		defer mu.Unlock()
		assert.False(t, fired)
	})

	t.Run("StopWithoutPendingIsNoop", func(t *testing.T) {
		b := debounce.New(time.Millisecond)
		b.Stop()
	})
}
