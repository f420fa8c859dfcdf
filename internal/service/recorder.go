package service

import (
	"context"

	"github.com/Behyna/sms-services/templateconsole/internal/model"
)

// LifecycleRecorder receives an event for every committed template mutation.
type LifecycleRecorder interface {
	Record(ctx context.Context, event model.LifecycleEvent) error
}

type nopRecorder struct{}

func NewNopRecorder() LifecycleRecorder {
	return nopRecorder{}
}

func (nopRecorder) Record(context.Context, model.LifecycleEvent) error {
	return nil
}
