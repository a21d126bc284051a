package shared_test

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"potteryloop/shared"
)

func TestSubmissionID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^BK-\d{13}-[0-9a-z]{9}$`)

	id := shared.SubmissionID("BK")
	if !pattern.MatchString(id) {
		t.Errorf("expected id to match %s, got %s", pattern, id)
	}
}

func TestSubmissionID_Timestamp(t *testing.T) {
	before := time.Now().UnixMilli()
	id := shared.SubmissionID("MSG")
	after := time.Now().UnixMilli()

	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		t.Fatalf("expected 3 segments, got %d (%s)", len(parts), id)
	}

	millis, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		t.Fatalf("timestamp segment is not numeric: %v", err)
	}

	if millis < before || millis > after {
		t.Errorf("timestamp %d outside [%d, %d]", millis, before, after)
	}
}

func TestSubmissionID_Unique(t *testing.T) {
	seen := map[string]bool{}

	for range 100 {
		id := shared.SubmissionID("OS")
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected string
	}{
		{name: "first wins", values: []string{"a", "b"}, expected: "a"},
		{name: "skips blank", values: []string{"", "  ", "b"}, expected: "b"},
		{name: "all blank returns last", values: []string{"", " "}, expected: " "},
		{name: "no values", values: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.FirstNonEmpty(tt.values...); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestDigitCount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "plain digits", input: "1234567", expected: 7},
		{name: "formatted phone", input: "(312) 555-0142", expected: 10},
		{name: "no digits", input: "abc", expected: 0},
		{name: "empty", input: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.DigitCount(tt.input); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}
