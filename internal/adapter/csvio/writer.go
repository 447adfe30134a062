package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/iho/payengine/internal/usecase"
)

var reportHeader = []string{"client", "available", "held", "total", "locked"}

// Writer writes the final account report as CSV with currency values
// fixed to a configurable number of decimal digits.
type Writer struct {
	csv       *csv.Writer
	precision int32
}

// NewWriter creates a report writer with the given decimal precision.
func NewWriter(w io.Writer, precision int32) *Writer {
	return &Writer{csv: csv.NewWriter(w), precision: precision}
}

// WriteReport writes a header row followed by one row per snapshot.
func (w *Writer) WriteReport(snapshots []usecase.AccountSnapshot) error {
	if err := w.csv.Write(reportHeader); err != nil {
		return err
	}

	for _, s := range snapshots {
		row := []string{
			strconv.FormatUint(uint64(s.Client), 10),
			s.Available.StringFixed(w.precision),
			s.Held.StringFixed(w.precision),
			s.Total.StringFixed(w.precision),
			strconv.FormatBool(s.Locked),
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}

	w.csv.Flush()
	return w.csv.Error()
}
