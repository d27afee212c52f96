package service

import (
	"context"

	"github.com/khoahotran/codetrackr/internal/domain/activity"
)

// EventPublisher pushes derived activities to the event stream after the
// owning transaction commits. Publication is best-effort: failures are
// logged by callers and never fail the request.
type EventPublisher interface {
	PublishActivity(ctx context.Context, a *activity.Activity) error
}
