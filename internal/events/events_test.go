package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tanq16/yamanaka/models"
)

func TestFileUpdated_NameAndPayload(t *testing.T) {
	e := FileUpdated{Path: "n.md", Content: "aGVsbG8="}
	assert.Equal(t, models.EventFileUpdated, e.Name())
	assert.Equal(t, models.FileUpdatedEvent{Path: "n.md", Content: "aGVsbG8="}, e.Payload())
}

func TestFileDeleted_NameAndPayload(t *testing.T) {
	e := FileDeleted{Path: "n.md"}
	assert.Equal(t, models.EventFileDeleted, e.Name())
	assert.Equal(t, models.FileDeletedEvent{Path: "n.md"}, e.Payload())
}

func TestFullSyncRequired_NameAndPayload(t *testing.T) {
	e := FullSyncRequired{Message: "11 missed updates"}
	assert.Equal(t, models.EventFullSyncRequired, e.Name())
	assert.Equal(t, models.FullSyncRequiredEvent{Message: "11 missed updates"}, e.Payload())
}

// TestEvent_PayloadNeverCarriesSender verifies that no Event implementation
// exposes a sender field through its JSON payload, since that is the
// mechanism that keeps sender suppression from ever leaking onto the wire.
func TestEvent_PayloadNeverCarriesSender(t *testing.T) {
	events := []Event{
		FileUpdated{Path: "a", Content: "b"},
		FileDeleted{Path: "a"},
		FullSyncRequired{Message: "m"},
	}
	for _, e := range events {
		switch p := e.Payload().(type) {
		case models.FileUpdatedEvent:
			assert.Equal(t, "a", p.Path)
		case models.FileDeletedEvent:
			assert.Equal(t, "a", p.Path)
		case models.FullSyncRequiredEvent:
			assert.Equal(t, "m", p.Message)
		default:
			t.Fatalf("unexpected payload type %T", p)
		}
	}
}
