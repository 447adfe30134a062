package csvio_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/payengine/internal/adapter/csvio"
	"github.com/iho/payengine/internal/usecase"
)

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestWriter_WritesReportWithFixedPrecision(t *testing.T) {
	snapshots := []usecase.AccountSnapshot{
		{
			Client:    1,
			Available: mustDec(t, "-2"),
			Held:      mustDec(t, "5"),
			Total:     mustDec(t, "3"),
			Locked:    false,
		},
		{
			Client:    2,
			Available: mustDec(t, "3.14159"),
			Held:      mustDec(t, "0"),
			Total:     mustDec(t, "3.14159"),
			Locked:    true,
		},
	}

	var buf bytes.Buffer
	w := csvio.NewWriter(&buf, 4)
	require.NoError(t, w.WriteReport(snapshots))

	want := "client,available,held,total,locked\n" +
		"1,-2.0000,5.0000,3.0000,false\n" +
		"2,3.1416,0.0000,3.1416,true\n"
	assert.Equal(t, want, buf.String())
}

func TestWriter_EmptyReportStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	w := csvio.NewWriter(&buf, 4)
	require.NoError(t, w.WriteReport(nil))

	assert.Equal(t, "client,available,held,total,locked\n", buf.String())
}
