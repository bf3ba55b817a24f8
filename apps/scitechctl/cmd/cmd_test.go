package cmd

import (
	"strings"
	"testing"
)

func TestParseID(t *testing.T) {
	if id, err := parseID("2"); err != nil || id != 2 {
		t.Errorf("parseID(2) = %d, %v", id, err)
	}
	for _, bad := range []string{"abc", "-1", ""} {
		if _, err := parseID(bad); err == nil {
			t.Errorf("parseID(%q) should fail", bad)
		}
	}
}

func TestBar(t *testing.T) {
	cases := map[int]int{
		0:   1,
		20:  1,
		70:  20,
		120: chartWidth,
		200: chartWidth,
	}
	for temp, want := range cases {
		if got := strings.Count(bar(temp), "█"); got != want {
			t.Errorf("bar(%d) has %d cells, want %d", temp, got, want)
		}
	}
}
