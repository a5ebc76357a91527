package timex

import (
	"testing"
	"time"
)

func TestPeriodFromHz(t *testing.T) {
	if got := PeriodFromHz(4000); got != 250*time.Microsecond {
		t.Fatalf("PeriodFromHz(4000) = %v", got)
	}
	if got := PeriodFromHz(0); got != time.Second {
		t.Fatalf("PeriodFromHz(0) = %v", got)
	}
}

func TestCounts4us(t *testing.T) {
	if got := Counts4us(252 * time.Microsecond); got != 63 {
		t.Fatalf("Counts4us = %d, want 63", got)
	}
	if got := Counts4us(-time.Millisecond); got != 0 {
		t.Fatalf("Counts4us(negative) = %d", got)
	}
}
