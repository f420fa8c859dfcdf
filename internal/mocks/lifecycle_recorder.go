package mocks

import (
	"context"

	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/stretchr/testify/mock"
)

type LifecycleRecorder struct {
	mock.Mock
}

func (_m *LifecycleRecorder) Record(ctx context.Context, event model.LifecycleEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}
