package domain

import "testing"

func TestQueryLogEntryValidate(t *testing.T) {
	success := NewSuccessEntry("s1", "A", "B", 12.5, EstimateResult{Message: "m", Data: EstimateFares(12.5)})
	if err := success.Validate(); err != nil {
		t.Fatalf("success entry should be valid: %v", err)
	}
	if success.DistanceKm == nil || *success.DistanceKm != 12.5 {
		t.Fatalf("success entry distance = %v, want 12.5", success.DistanceKm)
	}

	failure := NewFailureEntry("s1", "A", "B", "place not found: B")
	if err := failure.Validate(); err != nil {
		t.Fatalf("failure entry should be valid: %v", err)
	}
	if failure.DistanceKm != nil {
		t.Fatal("failure entry must not carry a distance")
	}

	neither := QueryLogEntry{SessionID: "s1", Origin: "A", Destination: "B"}
	if err := neither.Validate(); err == nil {
		t.Fatal("entry with neither result nor error must be invalid")
	}

	msg := "boom"
	both := success
	both.Error = &msg
	if err := both.Validate(); err == nil {
		t.Fatal("entry with both result and error must be invalid")
	}

	noSession := NewFailureEntry("", "A", "B", "x")
	if err := noSession.Validate(); err == nil {
		t.Fatal("entry without session id must be invalid")
	}
}
