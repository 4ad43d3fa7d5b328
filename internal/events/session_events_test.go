package events

import (
	"context"
	"testing"
	"time"
)

func TestNewSessionEvent_Envelope(t *testing.T) {
	data := SessionStartedEvent{
		SessionID: "abc",
		UserName:  "ada",
		TestID:    1,
		StartTime: time.Now(),
	}

	event := NewSessionEvent(EventSessionStarted, data)

	if event.ID == "" {
		t.Error("Event ID should not be empty")
	}
	if event.Source != "quiz-service" {
		t.Errorf("Expected source 'quiz-service', got '%s'", event.Source)
	}
	if event.Version != "1.0" {
		t.Errorf("Expected version '1.0', got '%s'", event.Version)
	}
	if event.Timestamp.IsZero() {
		t.Error("Event timestamp should not be zero")
	}
	if event.Type != EventSessionStarted {
		t.Errorf("Expected type %s, got %s", EventSessionStarted, event.Type)
	}
}

func TestMockEventPublisher_RecordsAndClears(t *testing.T) {
	publisher := NewMockEventPublisher(nil)
	ctx := context.Background()

	if err := publisher.PublishSessionEvent(ctx, NewSessionEvent(EventSessionStarted, nil)); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if err := publisher.PublishSessionEvent(ctx, NewSessionEvent(EventSessionCompleted, nil)); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(published))
	}
	if published[1].Type != EventSessionCompleted {
		t.Errorf("Expected second event to be completion, got %s", published[1].Type)
	}

	publisher.ClearEvents()
	if len(publisher.GetPublishedEvents()) != 0 {
		t.Error("Expected no events after ClearEvents")
	}
}
