package contract

import (
	"time"

	"github.com/avoigt/timebook/internal/stats"
)

type ReportRequest struct {
	From time.Time
	To   time.Time
	// Granularity overrides automatic resolution when non-empty.
	Granularity stats.Granularity
	Now         *time.Time
}

func NewReportRequest(from, to time.Time) ReportRequest {
	return ReportRequest{From: from, To: to}
}

type ReportResponse struct {
	Range       stats.Range
	Granularity stats.Granularity
	Points      []stats.Point
	Total       stats.Summary
}

type ReportErrorCode string

const (
	ReportErrInvalidRange       ReportErrorCode = "INVALID_RANGE"
	ReportErrInvalidGranularity ReportErrorCode = "INVALID_GRANULARITY"
	ReportErrInternal           ReportErrorCode = "INTERNAL_ERROR"
)

type ReportError struct {
	Code    ReportErrorCode
	Message string
}

func (e *ReportError) Error() string {
	return string(e.Code) + ": " + e.Message
}
