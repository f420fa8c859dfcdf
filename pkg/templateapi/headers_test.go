package templateapi_test

import (
	"context"
	"testing"

	"github.com/Behyna/sms-services/templateconsole/pkg/templateapi"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewRequestID(t *testing.T) {
	first := templateapi.NewRequestID()
	second := templateapi.NewRequestID()

	assert.NotEqual(t, first, second)
	_, err := uuid.Parse(first)
	assert.NoError(t, err)
}

func TestEnsureRequestID(t *testing.T) {
	ctx, id := templateapi.EnsureRequestID(context.Background())
	assert.NotEmpty(t, id)

	again, sameID := templateapi.EnsureRequestID(ctx)
	assert.Equal(t, id, sameID)

	stored, ok := templateapi.RequestIDFrom(again)
	assert.True(t, ok)
	assert.Equal(t, id, stored)
}

func TestUserIDFrom(t *testing.T) {
	_, ok := templateapi.UserIDFrom(context.Background())
	assert.False(t, ok)

	userID, ok := templateapi.UserIDFrom(templateapi.WithUserID(context.Background(), "alex"))
	assert.True(t, ok)
	assert.Equal(t, "alex", userID)
}
