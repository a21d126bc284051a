package timezone_test

import (
	"testing"
	"time"

	"potteryloop/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}
}

func TestFormatStamp(t *testing.T) {
	stamp := time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC).Format(time.RFC3339)

	display := timezone.FormatStamp(stamp, "January 2, 2006 at 3:04 PM")
	if display == "" || display == stamp {
		t.Errorf("expected formatted stamp, got %q", display)
	}
}

func TestFormatStamp_Unparseable(t *testing.T) {
	if got := timezone.FormatStamp("not-a-time", "2006-01-02"); got != "not-a-time" {
		t.Errorf("expected verbatim fallback, got %q", got)
	}
}
