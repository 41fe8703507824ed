package utils

import (
	"strings"
	"testing"
)

func TestSafelyRunRecoversPanic(t *testing.T) {
	err := SafelyRun(func() { panic("boom") })
	if err == nil {
		t.Fatalf("SafelyRun: expected error from panic")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("SafelyRun: error should mention panic value, got %q", err.Error())
	}
}

func TestSafelyRunNoPanic(t *testing.T) {
	ran := false
	if err := SafelyRun(func() { ran = true }); err != nil {
		t.Fatalf("SafelyRun: unexpected error: %v", err)
	}
	if !ran {
		t.Fatalf("SafelyRun: function not executed")
	}
}

func TestSafelyGoReportsPanic(t *testing.T) {
	errCh := make(chan error, 1)
	SafelyGo(func() { panic("async boom") }, func(err error) { errCh <- err })
	err := <-errCh
	if !strings.Contains(err.Error(), "async boom") {
		t.Fatalf("SafelyGo: unexpected error: %v", err)
	}
}

func TestFilterSlice(t *testing.T) {
	got := FilterSlice([]int{1, 2, 3, 4}, func(i int) (string, bool) {
		return strings.Repeat("x", i), i%2 == 0
	})
	want := []string{"xx", "xxxx"}
	if len(got) != len(want) {
		t.Fatalf("FilterSlice: len want=%d got=%d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FilterSlice[%d]: want=%q got=%q", i, want[i], got[i])
		}
	}
}
