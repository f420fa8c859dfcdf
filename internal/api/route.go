package api

import (
	v1 "github.com/Behyna/sms-services/templateconsole/internal/api/v1"
	"github.com/Behyna/sms-services/templateconsole/internal/api/v1/middleware"
	"github.com/Behyna/sms-services/templateconsole/internal/metrics"
	"github.com/Behyna/sms-services/templateconsole/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const prefixV1 = "/v1"

func SetupRoutes(app *fiber.App, handler *v1.Handler, store session.Store, m *metrics.Metrics,
	registry *prometheus.Registry, logger *zap.Logger) {
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))

	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	group := app.Group(prefixV1, middleware.Principal(store))

	group.Get("/session", handler.GetSession)
	group.Put("/session/role", handler.SwitchRole)

	group.Get("/templates", handler.ListTemplates)
	group.Get("/templates/pending", handler.ListPendingTemplates)
	group.Post("/templates/approve", handler.BatchApprove)
	group.Get("/templates/:id", handler.GetTemplate)
	group.Post("/templates", handler.CreateTemplate)
	group.Put("/templates/:id", handler.UpdateTemplate)
	group.Post("/templates/:id/approve", handler.ApproveTemplate)
	group.Post("/templates/:id/reject", handler.RejectTemplate)
	group.Delete("/templates/:id", handler.DeleteTemplate)

	group.Post("/messages/test", handler.SendTest)
	group.Get("/records", handler.SearchRecords)
}
