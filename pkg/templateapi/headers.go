package templateapi

import (
	"context"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderUserID    = "X-User-ID"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	userIDKey
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}

// EnsureRequestID returns ctx carrying a request id, generating one if needed,
// so several backend calls of one operation share the same trace.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id, ok := RequestIDFrom(ctx); ok {
		return ctx, id
	}

	id := NewRequestID()
	return WithRequestID(ctx, id), id
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// NewRequestID draws from crypto/rand through uuid and falls back to a
// timestamp plus pseudo-random suffix if the system source is unavailable.
func NewRequestID() string {
	id, err := uuid.NewRandom()
	if err == nil {
		return id.String()
	}

	return fallbackRequestID()
}

func fallbackRequestID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 36) + "-" + strconv.FormatUint(rand.Uint64(), 36)
}

func (c *client) headers(ctx context.Context, withBody bool) map[string]string {
	requestID, ok := RequestIDFrom(ctx)
	if !ok {
		requestID = NewRequestID()
	}

	userID, ok := UserIDFrom(ctx)
	if !ok {
		userID = c.config.userID()
	}

	headers := map[string]string{
		HeaderRequestID: requestID,
		HeaderUserID:    userID,
		"Accept":        "application/json",
	}

	if withBody {
		headers["Content-Type"] = "application/json"
	}

	return headers
}
