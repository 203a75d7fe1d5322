package track_event

import (
	"context"

	"github.com/TahaKotwal12/247-gym/internal/domain"
)

type AnalyticsTracker interface {
	Track(ctx context.Context, name string, properties map[string]interface{}) error
	TrackPageView(ctx context.Context, path string)
	TrackMembershipSelect(ctx context.Context, planID string)
}

type PlanLookup interface {
	Plan(ctx context.Context, id string) (*domain.MembershipPlan, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
