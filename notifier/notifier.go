package notifier

import (
	"log"
	"sync"
)

// Event is one booking lifecycle notification delivered to every registered
// observer.
type Event struct {
	Type        string
	BookingCode string
	UserId      uint
	UserEmail   string
	UserPhone   string
	Title       string
	Message     string
	Payload     map[string]any
}

const (
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
	EventPaymentRefunded  = "payment.refunded"
)

// Observer receives events. Delivery errors are the observer's own problem;
// the hub logs them and keeps going.
type Observer interface {
	Name() string
	Notify(event Event) error
}

type Hub struct {
	mu        sync.Mutex
	observers []Observer
}

func NewHub() *Hub {
	return &Hub{}
}

func (h *Hub) Register(o Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.observers = append(h.observers, o)
}

func (h *Hub) Unregister(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	kept := h.observers[:0]
	for _, o := range h.observers {
		if o.Name() != name {
			kept = append(kept, o)
		}
	}
	h.observers = kept
}

// Publish delivers the event to every observer in registration order. A
// failing observer never blocks the others. Observers registered mid-publish
// see only later events.
func (h *Hub) Publish(event Event) {
	h.mu.Lock()
	snapshot := make([]Observer, len(h.observers))
	copy(snapshot, h.observers)
	h.mu.Unlock()

	for _, o := range snapshot {
		if err := o.Notify(event); err != nil {
			log.Printf("notifier: observer %s failed on %s: %v", o.Name(), event.Type, err)
		}
	}
}

func (h *Hub) Observers() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	names := make([]string, 0, len(h.observers))
	for _, o := range h.observers {
		names = append(names, o.Name())
	}
	return names
}

// Default is the process-wide hub wired up in main.
var Default = NewHub()
