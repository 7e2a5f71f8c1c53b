package components

import (
	"seat-reservation/internal/handler"
	"seat-reservation/internal/handler/api"
	"seat-reservation/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewEventHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		func(b *api.BookingHandler, e *api.EventHandler, a *api.AdminHandler) handler.Handlers {
			return handler.Handlers{Booking: b, Event: e, Admin: a}
		},
	),
	fx.Invoke(handler.NewRouter),
)
