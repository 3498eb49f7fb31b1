package timezone_test

import (
	"testing"
	"time"

	"github.com/Lucasteinmann/Aarebooking/shared/constant"
	"github.com/Lucasteinmann/Aarebooking/shared/timezone"
)

func TestParse_DayFormat(t *testing.T) {
	parsed, err := timezone.Parse(constant.DayFormat, "2024-06-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if parsed.Year() != 2024 || parsed.Month() != time.June || parsed.Day() != 1 {
		t.Errorf("expected 2024-06-01, got %v", parsed)
	}
	if parsed.Location() != timezone.GetLocation() {
		t.Errorf("expected parse in app location %v, got %v", timezone.GetLocation(), parsed.Location())
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	parsed, err := timezone.Parse(constant.DayFormat, "2024-06-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := timezone.Format(parsed, constant.DayFormat); got != "2024-06-01" {
		t.Errorf("expected 2024-06-01, got %s", got)
	}
}

func TestNow_UsesAppLocation(t *testing.T) {
	now := timezone.Now()

	if now.Location() != timezone.GetLocation() {
		t.Errorf("expected now in app location %v, got %v", timezone.GetLocation(), now.Location())
	}
}
