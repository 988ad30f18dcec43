package notifier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	name   string
	events []Event
	fail   bool
}

func (r *recordingObserver) Name() string { return r.name }

func (r *recordingObserver) Notify(event Event) error {
	r.events = append(r.events, event)
	if r.fail {
		return errors.New("delivery failed")
	}
	return nil
}

func TestPublishDeliversInRegistrationOrder(t *testing.T) {
	hub := NewHub()
	var order []string

	first := &orderedObserver{name: "first", order: &order}
	second := &orderedObserver{name: "second", order: &order}
	hub.Register(first)
	hub.Register(second)

	hub.Publish(Event{Type: EventBookingConfirmed})

	assert.Equal(t, []string{"first", "second"}, order)
}

type orderedObserver struct {
	name  string
	order *[]string
}

func (o *orderedObserver) Name() string { return o.name }

func (o *orderedObserver) Notify(Event) error {
	*o.order = append(*o.order, o.name)
	return nil
}

func TestFailingObserverDoesNotBlockOthers(t *testing.T) {
	hub := NewHub()

	failing := &recordingObserver{name: "failing", fail: true}
	healthy := &recordingObserver{name: "healthy"}
	hub.Register(failing)
	hub.Register(healthy)

	hub.Publish(Event{Type: EventBookingCancelled, BookingCode: "BKG-1"})

	require.Len(t, failing.events, 1)
	require.Len(t, healthy.events, 1)
	assert.Equal(t, "BKG-1", healthy.events[0].BookingCode)
}

func TestUnregisterStopsDelivery(t *testing.T) {
	hub := NewHub()

	obs := &recordingObserver{name: "sms"}
	hub.Register(obs)
	hub.Publish(Event{Type: EventBookingConfirmed})
	require.Len(t, obs.events, 1)

	hub.Unregister("sms")
	hub.Publish(Event{Type: EventBookingConfirmed})
	assert.Len(t, obs.events, 1)
	assert.Empty(t, hub.Observers())
}

func TestObserversListsNames(t *testing.T) {
	hub := NewHub()
	hub.Register(&recordingObserver{name: "email"})
	hub.Register(&recordingObserver{name: "admin-feed"})

	assert.Equal(t, []string{"email", "admin-feed"}, hub.Observers())
}
