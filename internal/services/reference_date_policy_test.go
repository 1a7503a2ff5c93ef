package services

import (
	"errors"
	"testing"
	"time"
)

func TestParseReferenceDate(t *testing.T) {
	t.Parallel()

	location := time.FixedZone("UTC-8", -8*60*60)
	now := time.Date(2026, time.March, 10, 5, 0, 0, 0, time.UTC)

	today, err := ParseReferenceDate("", now, location)
	if err != nil {
		t.Fatalf("empty reference date: %v", err)
	}
	if !today.Equal(time.Date(2026, time.March, 9, 0, 0, 0, 0, location)) {
		t.Fatalf("expected local today, got %v", today)
	}

	explicit, err := ParseReferenceDate(" 2026-04-01 ", now, location)
	if err != nil {
		t.Fatalf("explicit reference date: %v", err)
	}
	if !explicit.Equal(time.Date(2026, time.April, 1, 0, 0, 0, 0, location)) {
		t.Fatalf("unexpected explicit date %v", explicit)
	}

	for _, raw := range []string{"2026-02-30", "04/01/2026", "tomorrow"} {
		if _, err := ParseReferenceDate(raw, now, location); !errors.Is(err, ErrReferenceDateInvalid) {
			t.Fatalf("%q: expected ErrReferenceDateInvalid, got %v", raw, err)
		}
	}
}
