package usecase

import "github.com/iho/payengine/internal/domain"

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// TransactionSource produces a finite sequence of transactions, one row at
// a time. It returns io.EOF after the last row. Any other error is scoped
// to the row that produced it and the source remains usable for the next
// call.
type TransactionSource interface {
	Next() (domain.Transaction, error)
}

// ReportWriter consumes the final account snapshots.
type ReportWriter interface {
	WriteReport(snapshots []AccountSnapshot) error
}
