package main

import "testing"

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"completed":         "Completed",
		"failed":            "Failed",
		"resolving_version": "Resolving Version",
		"publishing":        "Publishing",
	}
	for input, want := range cases {
		if got := titleCase(input); got != want {
			t.Errorf("titleCase(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable(
		[]string{"A", "B"},
		[][]string{{"only-a"}},
		nil,
	)
	if out == "" {
		t.Fatal("expected rendered table output")
	}
}
