package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(transactionsApplied.WithLabelValues("deposit"))
	RecordApplied("deposit")
	after := testutil.ToFloat64(transactionsApplied.WithLabelValues("deposit"))

	if after != before+1 {
		t.Fatalf("expected applied counter to increment, before=%v after=%v", before, after)
	}

	before = testutil.ToFloat64(transactionsRejected.WithLabelValues("account_locked"))
	RecordRejected("account_locked")
	after = testutil.ToFloat64(transactionsRejected.WithLabelValues("account_locked"))

	if after != before+1 {
		t.Fatalf("expected rejected counter to increment, before=%v after=%v", before, after)
	}

	before = testutil.ToFloat64(rowParseFailures)
	RecordParseFailure()
	if got := testutil.ToFloat64(rowParseFailures); got != before+1 {
		t.Fatalf("expected parse failure counter to increment, got %v", got)
	}
}
