package tests

import (
	"testing"

	"qualigo/internal/events"

	"github.com/stretchr/testify/assert"
)

func TestBusDeliversSignal(t *testing.T) {
	bus := events.NewBus()
	ch, cancel := bus.Subscribe()
	defer cancel()

	bus.CartUpdated()

	select {
	case <-ch:
	default:
		t.Fatal("expected a pending signal")
	}
}

func TestBusCoalescesSignals(t *testing.T) {
	bus := events.NewBus()
	ch, cancel := bus.Subscribe()
	defer cancel()

	// The channel holds one pending signal; extra publishes never block.
	bus.CartUpdated()
	bus.CartUpdated()
	bus.CartUpdated()

	<-ch
	select {
	case <-ch:
		t.Fatal("signals should coalesce into one")
	default:
	}
}

func TestBusMultipleSubscribers(t *testing.T) {
	bus := events.NewBus()
	first, cancelFirst := bus.Subscribe()
	defer cancelFirst()
	second, cancelSecond := bus.Subscribe()
	defer cancelSecond()

	bus.CartUpdated()

	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
}

func TestBusUnsubscribeStopsDelivery(t *testing.T) {
	bus := events.NewBus()
	ch, cancel := bus.Subscribe()
	cancel()

	bus.CartUpdated()

	assert.Len(t, ch, 0)
}

func TestBusPublishWithoutSubscribers(t *testing.T) {
	bus := events.NewBus()

	// Must not panic or block.
	bus.CartUpdated()
}
