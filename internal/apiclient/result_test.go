package apiclient

import "testing"

func TestStatusFromWire(t *testing.T) {
	cases := []struct {
		wire string
		want Status
	}{
		{"success", StatusOK},
		{"exists", StatusExists},
		{"error", StatusError},
		{"Success", StatusError},
		{"", StatusError},
		{"something else", StatusError},
	}
	for _, tc := range cases {
		if got := statusFromWire(tc.wire); got != tc.want {
			t.Fatalf("statusFromWire(%q) = %s, want %s", tc.wire, got, tc.want)
		}
	}
}

func TestResultSucceeded(t *testing.T) {
	if !(Result[string]{Status: StatusOK}).Succeeded() {
		t.Fatalf("ok must count as success")
	}
	if !(Result[string]{Status: StatusExists}).Succeeded() {
		t.Fatalf("exists must count as success")
	}
	if (Result[string]{Status: StatusError}).Succeeded() {
		t.Fatalf("error must not count as success")
	}
}

func TestFailedDefaultsMessage(t *testing.T) {
	r := failed[string](StatusError, "")
	if r.Message == "" {
		t.Fatalf("expected a fallback message")
	}
	r = failed[string](StatusError, "known reason")
	if r.Message != "known reason" {
		t.Fatalf("server text must win, got %q", r.Message)
	}
}
