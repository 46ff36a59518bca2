package usecase

import (
	"context"
	"time"

	dashboardDomain "github.com/septer/septer/internal/dashboard/domain"
	"github.com/septer/septer/internal/metrics"
)

// dashboardUseCaseWithMetrics decorates DashboardUseCase with metrics instrumentation.
type dashboardUseCaseWithMetrics struct {
	next    DashboardUseCase
	metrics metrics.BusinessMetrics
}

// NewDashboardUseCaseWithMetrics wraps a DashboardUseCase with metrics recording.
func NewDashboardUseCaseWithMetrics(useCase DashboardUseCase, m metrics.BusinessMetrics) DashboardUseCase {
	return &dashboardUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Get records metrics for dashboard views.
func (d *dashboardUseCaseWithMetrics) Get(
	ctx context.Context,
	page dashboardDomain.Page,
) (*dashboardDomain.Dashboard, error) {
	start := time.Now()
	dashboard, err := d.next.Get(ctx, page)

	status := metrics.StatusFor(err)
	d.metrics.RecordOperation(ctx, metrics.DomainDashboard, "dashboard_view", status)
	d.metrics.RecordDuration(ctx, metrics.DomainDashboard, "dashboard_view", time.Since(start), status)

	return dashboard, err
}
