package report

import (
	"context"
	"time"
)

type ReportService interface {
	// Monthly computes the compliance report for one calendar month.
	Monthly(ctx context.Context, year int, month time.Month) (MonthlyReport, error)

	// History computes reports for the trailing months window ending at the
	// current month, ordered oldest first.
	History(ctx context.Context, months int) ([]MonthlyReport, error)
}
