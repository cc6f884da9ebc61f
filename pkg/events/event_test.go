package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewBaseEvent(t *testing.T) {
	before := time.Now().UTC()
	evt := NewBaseEvent("loan.collection.recorded", "loan-42", "Loan", "company-7")
	after := time.Now().UTC()

	if _, err := uuid.Parse(evt.EventID()); err != nil {
		t.Errorf("EventID should be a valid UUID, got %q: %v", evt.EventID(), err)
	}
	if evt.EventType() != "loan.collection.recorded" {
		t.Errorf("unexpected event type %q", evt.EventType())
	}
	if evt.AggregateID() != "loan-42" {
		t.Errorf("unexpected aggregate id %q", evt.AggregateID())
	}
	if evt.AggregateType() != "Loan" {
		t.Errorf("unexpected aggregate type %q", evt.AggregateType())
	}
	if evt.CompanyID() != "company-7" {
		t.Errorf("unexpected company id %q", evt.CompanyID())
	}
	if evt.OccurredAt().Before(before) || evt.OccurredAt().After(after) {
		t.Errorf("OccurredAt %v outside [%v, %v]", evt.OccurredAt(), before, after)
	}
}

func TestNewBaseEvent_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		evt := NewBaseEvent("loan.issued", "loan-1", "Loan", "company-1")
		if seen[evt.EventID()] {
			t.Fatalf("duplicate event id %q", evt.EventID())
		}
		seen[evt.EventID()] = true
	}
}

func TestBaseEvent_ImplementsDomainEvent(t *testing.T) {
	var _ DomainEvent = NewBaseEvent("loan.closed", "loan-1", "Loan", "company-1")
}
