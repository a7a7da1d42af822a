package service

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"tableside/loyalty-svc/internal/domain"
)

// pointsDivisor converts spend into points: one point per 100,000 spent.
const pointsDivisor = 100000

// BadgeFor is a pure function of the completed-order count and is
// non-decreasing across the tiers.
func BadgeFor(completedOrders int) domain.Badge {
	switch {
	case completedOrders <= 0:
		return domain.BadgeNewbie
	case completedOrders <= 4:
		return domain.BadgeExplorer
	case completedOrders <= 9:
		return domain.BadgePreferred
	case completedOrders <= 29:
		return domain.BadgeLoyal
	default:
		return domain.BadgeSuper
	}
}

func PointsFor(totalSpent float64) int {
	if totalSpent <= 0 {
		return 0
	}
	return int(math.Floor(totalSpent / pointsDivisor))
}

type Aggregator struct {
	repo  SummaryRepository
	cache SummaryCache
}

func NewAggregator(repo SummaryRepository, cache SummaryCache) *Aggregator {
	return &Aggregator{repo: repo, cache: cache}
}

// GetSummary serves the cached summary when one exists and otherwise falls
// back to a full recompute from completed orders. The recompute path is the
// ground truth; it keeps customers correct whose summary row predates the
// aggregator or fell out of sync.
func (a *Aggregator) GetSummary(ctx context.Context, customerID int) (*domain.LoyaltySummary, error) {
	if a.cache != nil {
		if cached, err := a.cache.Get(ctx, customerID); err == nil && cached != nil {
			return cached, nil
		}
	}

	summary, err := a.repo.GetSummary(ctx, customerID)
	if err == nil {
		a.cacheSet(ctx, *summary)
		return summary, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return a.Refresh(ctx, customerID)
}

// Refresh recomputes the summary from completed orders and persists it,
// both to the summary row and to the cache.
func (a *Aggregator) Refresh(ctx context.Context, customerID int) (*domain.LoyaltySummary, error) {
	count, spent, err := a.repo.CompletedOrderTotals(ctx, customerID)
	if err != nil {
		return nil, err
	}

	summary := &domain.LoyaltySummary{
		CustomerID:           customerID,
		TotalPoints:          PointsFor(spent),
		TotalCompletedOrders: count,
		TotalSpent:           spent,
		CurrentBadge:         BadgeFor(count),
		UpdatedAt:            time.Now(),
	}

	if err := a.repo.UpsertSummary(ctx, summary); err != nil {
		// The computed summary is still valid; persisting it is best effort.
		logrus.Warnf("failed to persist loyalty summary for customer %d: %v", customerID, err)
	}
	a.cacheSet(ctx, *summary)
	return summary, nil
}

func (a *Aggregator) cacheSet(ctx context.Context, summary domain.LoyaltySummary) {
	if a.cache == nil {
		return
	}
	if err := a.cache.Set(ctx, summary); err != nil {
		logrus.Warnf("failed to cache loyalty summary for customer %d: %v", summary.CustomerID, err)
	}
}
