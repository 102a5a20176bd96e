package shared

import (
	"testing"
	"time"
)

func TestFiscalYear(t *testing.T) {
	// 30 September 2025 is still fiscal year 2568.
	before := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)
	if got := FiscalYear(before); got != 2568 {
		t.Fatalf("expected 2568, got %d", got)
	}

	// 1 October 2025 starts fiscal year 2569.
	after := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	if got := FiscalYear(after); got != 2569 {
		t.Fatalf("expected 2569, got %d", got)
	}
}

func TestParseFiscalYear(t *testing.T) {
	if got := ParseFiscalYear("2568", 0); got != 2568 {
		t.Fatalf("expected 2568, got %d", got)
	}
	if got := ParseFiscalYear("", 2567); got != 2567 {
		t.Fatalf("expected fallback 2567, got %d", got)
	}
	if got := ParseFiscalYear("junk", 2567); got != 2567 {
		t.Fatalf("expected fallback for malformed input, got %d", got)
	}
	if got := ParseFiscalYear("", 0); got != FiscalYear(time.Now()) {
		t.Fatalf("expected current fiscal year, got %d", got)
	}
}
