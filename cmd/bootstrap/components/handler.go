package components

import (
	"lesson-scheduler/internal/handler"
	"lesson-scheduler/internal/handler/api"
	"lesson-scheduler/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewClientsHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
