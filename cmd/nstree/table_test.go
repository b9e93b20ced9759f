/*
© 2026–present nstree contributors
ISC License
*/

package main

import "testing"

func TestTruncateShortString(t *testing.T) {
	if got := truncate("a/b", 80); got != "a/b" {
		t.Fatalf("truncate short string = %q", got)
	}
}

func TestTruncateLongString(t *testing.T) {
	got := truncate("a/very/long/path/name", 10)
	if displayWidth(got) > 10 {
		t.Fatalf("truncate(...) = %q, width %d > 10", got, displayWidth(got))
	}
}

func TestClamp(t *testing.T) {
	if clamp(5, 1, 10) != 5 {
		t.Fatal("clamp in range changed value")
	}
	if clamp(-1, 1, 10) != 1 {
		t.Fatal("clamp below range did not floor")
	}
	if clamp(20, 1, 10) != 10 {
		t.Fatal("clamp above range did not ceiling")
	}
}
