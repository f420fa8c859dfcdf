package metrics

import (
	"context"

	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/Behyna/sms-services/templateconsole/internal/service"
)

type countingRecorder struct {
	next    service.LifecycleRecorder
	metrics *Metrics
}

// WrapRecorder counts lifecycle events before handing them to next.
func (m *Metrics) WrapRecorder(next service.LifecycleRecorder) service.LifecycleRecorder {
	return &countingRecorder{next: next, metrics: m}
}

func (r *countingRecorder) Record(ctx context.Context, event model.LifecycleEvent) error {
	r.metrics.RecordLifecycleEvent(string(event.Action))

	if err := r.next.Record(ctx, event); err != nil {
		r.metrics.RecordLifecycleError(string(event.Action))
		return err
	}

	return nil
}
