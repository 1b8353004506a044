package ports

import (
	"context"
	"delivery-simulation-service/internal/domain"
)

// Port: a boundary for publishing the report of a finished run.
type ReportWriter interface {
	Write(ctx context.Context, report *domain.Report) error
}
