package middleware

import (
	"strings"

	"github.com/Behyna/sms-services/templateconsole/internal/constants"
	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/Behyna/sms-services/templateconsole/internal/service"
	"github.com/Behyna/sms-services/templateconsole/internal/session"
	"github.com/Behyna/sms-services/templateconsole/pkg/templateapi"
	"github.com/gofiber/fiber/v2"
)

const (
	HeaderRole = "X-Role"
	HeaderUser = "X-User"

	principalKey = "principal"
)

// Principal resolves who the request acts as. X-Role and X-User override the
// session defaults for this request only. The request id is taken from
// X-Request-ID or generated, and echoed back.
func Principal(store session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := strings.TrimSpace(c.Get(templateapi.HeaderRequestID))
		if requestID == "" {
			requestID = templateapi.NewRequestID()
		}
		c.Set(templateapi.HeaderRequestID, requestID)
		c.SetUserContext(templateapi.WithRequestID(c.UserContext(), requestID))

		p := store.Current()

		if value := c.Get(HeaderRole); value != "" {
			role, err := model.ParseRole(value)
			if err != nil {
				return service.NewServiceError(constants.ErrCodeRoleNotPermitted, err)
			}
			p.Role = role
		}

		if user := strings.TrimSpace(c.Get(HeaderUser)); user != "" {
			p.UserID = user
		}

		c.Locals(principalKey, p)

		return c.Next()
	}
}

func PrincipalFrom(c *fiber.Ctx) model.Principal {
	p, _ := c.Locals(principalKey).(model.Principal)
	return p
}
