package api

import "testing"

func TestFormatDetail_String(t *testing.T) {
	t.Parallel()

	got := FormatDetail("Session expired or invalid token.")
	if got != "Session expired or invalid token." {
		t.Fatalf("got %q", got)
	}
}

func TestFormatDetail_ValidationList(t *testing.T) {
	t.Parallel()

	detail := []any{
		map[string]any{"loc": []any{"body", "password"}, "msg": "too short"},
	}
	got := FormatDetail(detail)
	want := "body -> password: too short"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatDetail_MixedListJoinedWithPipes(t *testing.T) {
	t.Parallel()

	detail := []any{
		"plain message",
		map[string]any{"loc": []any{"body", "email"}, "msg": "invalid email"},
		map[string]any{"msg": "no location"},
	}
	got := FormatDetail(detail)
	want := "plain message | body -> email: invalid email | no location"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatDetail_NumericLocSegments(t *testing.T) {
	t.Parallel()

	detail := []any{
		map[string]any{"loc": []any{"body", float64(0), "status"}, "msg": "unknown status"},
	}
	got := FormatDetail(detail)
	want := "body -> 0 -> status: unknown status"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatDetail_ObjectSerialized(t *testing.T) {
	t.Parallel()

	got := FormatDetail(map[string]any{"code": "E42"})
	if got != `{"code":"E42"}` {
		t.Fatalf("got %q", got)
	}
}

func TestFormatDetail_ObjectItemWithoutMsgSerialized(t *testing.T) {
	t.Parallel()

	got := FormatDetail([]any{map[string]any{"code": "E42"}})
	if got != `{"code":"E42"}` {
		t.Fatalf("got %q", got)
	}
}

func TestFormatDetail_AbsentFallsBackToGeneric(t *testing.T) {
	t.Parallel()

	for _, detail := range []any{nil, "", false} {
		if got := FormatDetail(detail); got != "Request failed." {
			t.Fatalf("FormatDetail(%v) = %q", detail, got)
		}
	}
}
