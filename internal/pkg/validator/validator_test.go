package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-01-01", "2024-02-29", "1999-12-31"}
	invalid := []string{"2023-02-29", "2024-13-01", "2024-1-1", "01-01-2024", "not-a-date", ""}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"office", "wfh", "leave"}
	if !IsInSlice("wfh", slice) {
		t.Error("IsInSlice(wfh) = false, want true")
	}
	if IsInSlice("holiday", slice) {
		t.Error("IsInSlice(holiday) = true, want false")
	}
	if IsInSlice("office", nil) {
		t.Error("IsInSlice on nil slice = true, want false")
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-42d3-a456-426614174000",
		"123E4567-E89B-42D3-A456-426614174000",
	}
	invalid := []string{
		"123e4567e89b42d3a456426614174000", // missing dashes
		"123e4567-e89b-42d3-a456",          // truncated
		"",
	}
	for _, u := range valid {
		if !IsValidUUID(u) {
			t.Errorf("IsValidUUID(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidUUID(u) {
			t.Errorf("IsValidUUID(%q) = true, want false", u)
		}
	}
}

func TestIsValidYearMonth(t *testing.T) {
	cases := []struct {
		year, month int
		want        bool
	}{
		{2024, 1, true},
		{2024, 12, true},
		{2024, 0, false},
		{2024, 13, false},
		{1999, 6, false},
		{2101, 6, false},
	}
	for _, c := range cases {
		got := IsValidYearMonth(c.year, c.month)
		if got != c.want {
			t.Errorf("IsValidYearMonth(%d, %d) = %v, want %v", c.year, c.month, got, c.want)
		}
	}
}
