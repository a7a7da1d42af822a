package service

import (
	"context"

	"tableside/loyalty-svc/internal/domain"
)

type SummaryRepository interface {
	GetSummary(ctx context.Context, customerID int) (*domain.LoyaltySummary, error)
	UpsertSummary(ctx context.Context, summary *domain.LoyaltySummary) error
	CompletedOrderTotals(ctx context.Context, customerID int) (count int, spent float64, err error)
}

// SummaryCache is a fast read-side mirror. A miss returns (nil, nil).
type SummaryCache interface {
	Get(ctx context.Context, customerID int) (*domain.LoyaltySummary, error)
	Set(ctx context.Context, summary domain.LoyaltySummary) error
}

type AggregatorInterface interface {
	GetSummary(ctx context.Context, customerID int) (*domain.LoyaltySummary, error)
	Refresh(ctx context.Context, customerID int) (*domain.LoyaltySummary, error)
}

var _ AggregatorInterface = (*Aggregator)(nil)
