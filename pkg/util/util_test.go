package util

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2024-01-02")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if want := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	for _, bad := range []string{"", "02/01/2024", "2024-13-01", "2024-01-02T00:00:00"} {
		if _, ok := ParseDate(bad); ok {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}

func TestTruncateDate(t *testing.T) {
	cases := map[string]string{
		"2024-01-02T00:00:00": "2024-01-02",
		"2024-01-02":          "2024-01-02",
		"":                    "",
	}
	for in, want := range cases {
		if got := TruncateDate(in); got != want {
			t.Errorf("TruncateDate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	got := FormatDate(time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC))
	if got != "2024-03-09" {
		t.Fatalf("got %q", got)
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		v      float64
		places int
		want   float64
	}{
		{1.23456, 2, 1.23},
		{1.25, 1, 1.3},
		{-1.25, 1, -1.3}, // half rounds away from zero
		{33.333333, 2, 33.33},
		{0.5, 0, 1},
		{0, 2, 0},
	}
	for _, c := range cases {
		if got := Round(c.v, c.places); got != c.want {
			t.Errorf("Round(%v, %d) = %v, want %v", c.v, c.places, got, c.want)
		}
	}
}

func TestPtr(t *testing.T) {
	p := Ptr(1.5)
	if p == nil || *p != 1.5 {
		t.Fatalf("got %v", p)
	}
}
