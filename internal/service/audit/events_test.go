package audit

import (
	"context"
	"testing"
)

func TestRedact(t *testing.T) {
	changes := map[string]any{
		"first_name":              "Sara",
		"password":                "hunter2",
		"insurance_policy_number": "POL-99812-X",
		"refresh_token_hash":      "abc123",
		"phone":                   "+989121234567",
	}

	got := Redact(changes)

	if got["first_name"] != "Sara" {
		t.Errorf("first_name altered: %v", got["first_name"])
	}
	if got["phone"] != "+989121234567" {
		t.Errorf("phone altered: %v", got["phone"])
	}
	for _, k := range []string{"password", "insurance_policy_number", "refresh_token_hash"} {
		if got[k] != "[redacted]" {
			t.Errorf("%s not redacted: %v", k, got[k])
		}
	}

	// Input map must not be mutated.
	if changes["password"] != "hunter2" {
		t.Error("Redact mutated its input")
	}
}

func TestRedactNil(t *testing.T) {
	if Redact(nil) != nil {
		t.Error("Redact(nil) should return nil")
	}
}

func TestPublishNilConn(t *testing.T) {
	p := NewPublisher(nil)
	// Must be a no-op, not a panic.
	p.Publish(context.Background(), Event{Action: "create", EntityType: EntityPatient})
}
