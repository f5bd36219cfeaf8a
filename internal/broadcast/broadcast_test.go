package broadcast

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanq16/yamanaka/internal/events"
	"github.com/tanq16/yamanaka/internal/logger"
)

type fakeRegistry struct {
	tracked []string
	active  map[string]chan events.Event
}

func (f *fakeRegistry) AllTracked() []string { return f.tracked }

func (f *fakeRegistry) ActiveChannel(id string) (chan events.Event, bool) {
	ch, ok := f.active[id]
	return ch, ok
}

type fakeSpool struct {
	mu      sync.Mutex
	spooled map[string][]events.Event
}

func newFakeSpool() *fakeSpool {
	return &fakeSpool{spooled: make(map[string][]events.Event)}
}

func (f *fakeSpool) Append(deviceID string, ev events.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spooled[deviceID] = append(f.spooled[deviceID], ev)
}

func (f *fakeSpool) get(deviceID string) []events.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.spooled[deviceID]
}

func TestBroadcast_SkipsSender(t *testing.T) {
	chA := make(chan events.Event, 1)
	reg := &fakeRegistry{tracked: []string{"sender"}, active: map[string]chan events.Event{"sender": chA}}
	sp := newFakeSpool()
	b := New(reg, sp, logger.Nop())

	b.Broadcast("sender", events.FileUpdated{Path: "a.md"})

	assert.Empty(t, chA)
	assert.Empty(t, sp.get("sender"))
}

func TestBroadcast_DeliversToActiveSubscriber(t *testing.T) {
	chA := make(chan events.Event, 1)
	reg := &fakeRegistry{tracked: []string{"sender", "dev-2"}, active: map[string]chan events.Event{"dev-2": chA}}
	sp := newFakeSpool()
	b := New(reg, sp, logger.Nop())

	ev := events.FileUpdated{Path: "a.md", Content: "x"}
	b.Broadcast("sender", ev)

	require.Len(t, chA, 1)
	assert.Equal(t, ev, <-chA)
}

func TestBroadcast_SpoolsForInactiveDevice(t *testing.T) {
	reg := &fakeRegistry{tracked: []string{"sender", "dev-2"}, active: map[string]chan events.Event{}}
	sp := newFakeSpool()
	b := New(reg, sp, logger.Nop())

	ev := events.FileDeleted{Path: "a.md"}
	b.Broadcast("sender", ev)

	assert.Equal(t, []events.Event{ev}, sp.get("dev-2"))
}

func TestBroadcast_SpoolsOnChannelFull(t *testing.T) {
	chA := make(chan events.Event, 1)
	chA <- events.FileUpdated{Path: "occupying"}
	reg := &fakeRegistry{tracked: []string{"sender", "dev-2"}, active: map[string]chan events.Event{"dev-2": chA}}
	sp := newFakeSpool()
	b := New(reg, sp, logger.Nop())

	ev := events.FileUpdated{Path: "a.md"}
	b.Broadcast("sender", ev)

	assert.Equal(t, []events.Event{ev}, sp.get("dev-2"))
}

func TestBroadcast_NeverBlocksOnFullChannel(t *testing.T) {
	chA := make(chan events.Event) // unbuffered, no reader
	reg := &fakeRegistry{tracked: []string{"sender", "dev-2"}, active: map[string]chan events.Event{"dev-2": chA}}
	sp := newFakeSpool()
	b := New(reg, sp, logger.Nop())

	done := make(chan struct{})
	go func() {
		b.Broadcast("sender", events.FileUpdated{Path: "a.md"})
		close(done)
	}()

	select {
	case <-done:
	default:
	}
	<-done
	assert.Len(t, sp.get("dev-2"), 1)
}

func TestBroadcast_MultipleTrackedDevicesEachReceiveIndependently(t *testing.T) {
	chA := make(chan events.Event, 1)
	reg := &fakeRegistry{
		tracked: []string{"sender", "dev-2", "dev-3"},
		active:  map[string]chan events.Event{"dev-2": chA},
	}
	sp := newFakeSpool()
	b := New(reg, sp, logger.Nop())

	ev := events.FullSyncRequired{Message: "resync"}
	b.Broadcast("sender", ev)

	require.Len(t, chA, 1)
	assert.Equal(t, []events.Event{ev}, sp.get("dev-3"))
}
