package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/quadrant/internal/domain"
)

// FetchReportInput contains the report to fetch.
type FetchReportInput struct {
	Request domain.ReportRequest
}

// FetchReportOutput contains the Markdown report.
type FetchReportOutput struct {
	Content string
}

// FetchReport retrieves a generated report.
type FetchReport struct {
	reports domain.ReportSource
}

// NewFetchReport creates a new FetchReport use case.
func NewFetchReport(reports domain.ReportSource) *FetchReport {
	return &FetchReport{reports: reports}
}

// Execute validates the request locally before asking the store.
func (uc *FetchReport) Execute(ctx context.Context, in FetchReportInput) (*FetchReportOutput, error) {
	if err := in.Request.Validate(); err != nil {
		return nil, err
	}
	content, err := uc.reports.Report(ctx, in.Request)
	if err != nil {
		return nil, fmt.Errorf("fetch %s report: %w", in.Request.Kind, err)
	}
	return &FetchReportOutput{Content: content}, nil
}
