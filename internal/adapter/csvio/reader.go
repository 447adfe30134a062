// Package csvio adapts the engine to its delimited-file collaborators:
// a transaction source reading rows and a report writer for the final
// account table.
package csvio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/payengine/internal/domain"
)

// ErrRowParse marks a malformed input row. Row parse failures are local:
// the reader stays usable for the following rows.
var ErrRowParse = errors.New("malformed transaction row")

// Reader reads transaction rows from a CSV stream shaped
// `type,client,tx,amount`. The first row is a header and is skipped.
// Fields are trimmed of surrounding whitespace and rows may omit the
// amount column; variable arity is tolerated at the framing layer and
// surfaces as a row parse failure where it matters.
type Reader struct {
	csv        *csv.Reader
	skipHeader bool
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	return &Reader{csv: cr, skipHeader: true}
}

// Next returns the next transaction. It returns io.EOF after the last
// row and wraps row-local failures in ErrRowParse.
func (r *Reader) Next() (domain.Transaction, error) {
	if r.skipHeader {
		r.skipHeader = false
		if _, err := r.csv.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return domain.Transaction{}, io.EOF
			}
			return domain.Transaction{}, fmt.Errorf("%w: %v", ErrRowParse, err)
		}
	}

	record, err := r.csv.Read()
	if errors.Is(err, io.EOF) {
		return domain.Transaction{}, io.EOF
	}
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: %v", ErrRowParse, err)
	}

	return parseRecord(record)
}

func parseRecord(record []string) (domain.Transaction, error) {
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}

	if len(record) < 3 || len(record) > 4 {
		return domain.Transaction{}, fmt.Errorf("%w: expected 3 or 4 fields, got %d", ErrRowParse, len(record))
	}

	client, err := strconv.ParseUint(record[1], 10, 16)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: client id %q: %v", ErrRowParse, record[1], err)
	}

	txID, err := strconv.ParseUint(record[2], 10, 32)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: transaction id %q: %v", ErrRowParse, record[2], err)
	}

	tx := domain.Transaction{
		Type:   domain.EventType(record[0]),
		Client: uint16(client),
		TxID:   uint32(txID),
	}

	// The amount column is only meaningful for deposits and withdrawals;
	// reference events carry it empty or not at all.
	if tx.Type.RequiresAmount() {
		if len(record) < 4 || record[3] == "" {
			return domain.Transaction{}, fmt.Errorf("%w: %s requires an amount", ErrRowParse, tx.Type)
		}
		amount, err := decimal.NewFromString(record[3])
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("%w: amount %q: %v", ErrRowParse, record[3], err)
		}
		tx.Amount = amount
	}

	return tx, nil
}
