package ports

import (
	"context"

	"randlab/domain/battery"
)

// ReportStore persists finished reports for later review.
type ReportStore interface {
	SaveReport(ctx context.Context, report *battery.Report) error
}
