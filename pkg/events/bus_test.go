package events

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBus_SubscribeAndEmit(t *testing.T) {
	t.Run("subscriber receives emitted event", func(t *testing.T) {
		bus := NewBus()
		done := make(chan interface{}, 1)

		bus.Subscribe(ConsoleUpdated, func(event interface{}) {
			done <- event
		})
		bus.Emit(ConsoleUpdated, "session-1")

		select {
		case got := <-done:
			assert.Equal(t, "session-1", got)
		case <-time.After(time.Second):
			t.Fatal("event was not received")
		}
	})

	t.Run("multiple subscribers receive the same event", func(t *testing.T) {
		bus := NewBus()
		var wg sync.WaitGroup
		var count int32

		wg.Add(2)
		for i := 0; i < 2; i++ {
			bus.Subscribe("multi", func(interface{}) {
				atomic.AddInt32(&count, 1)
				wg.Done()
			})
		}
		bus.Emit("multi", nil)
		wg.Wait()

		assert.Equal(t, int32(2), atomic.LoadInt32(&count))
	})

	t.Run("only subscribed event types are delivered", func(t *testing.T) {
		bus := NewBus()
		var count int32
		bus.Subscribe("a", func(interface{}) { atomic.AddInt32(&count, 1) })

		bus.Emit("b", nil)
		bus.WaitForPendingEvents()

		assert.Equal(t, int32(0), atomic.LoadInt32(&count))
	})
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()
	var count int32

	unsubscribe := bus.Subscribe("evt", func(interface{}) { atomic.AddInt32(&count, 1) })
	bus.Emit("evt", nil)
	bus.WaitForPendingEvents()

	unsubscribe()
	bus.Emit("evt", nil)
	bus.WaitForPendingEvents()

	assert.Equal(t, int32(1), atomic.LoadInt32(&count))
	assert.Equal(t, 0, bus.SubscriberCount("evt"))
}

func TestBus_SubscribeOnce(t *testing.T) {
	bus := NewBus()
	var count int32

	bus.SubscribeOnce("evt", func(interface{}) { atomic.AddInt32(&count, 1) })
	bus.Emit("evt", nil)
	bus.Emit("evt", nil)
	bus.WaitForPendingEvents()

	assert.Equal(t, int32(1), atomic.LoadInt32(&count))
}

func TestBus_Clear(t *testing.T) {
	bus := NewBus()
	bus.Subscribe("a", func(interface{}) {})
	bus.Subscribe("b", func(interface{}) {})
	bus.Clear()

	assert.Equal(t, 0, bus.SubscriberCount("a"))
	assert.Equal(t, 0, bus.SubscriberCount("b"))
}
