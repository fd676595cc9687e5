package components

import (
	"staybook/internal/handler"
	"staybook/internal/handler/api"
	"staybook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewDwellingHandler,
		api.NewAreaHandler,
		middleware.NewAuthMiddleware,
		func(r *api.ReservationHandler, d *api.DwellingHandler, a *api.AreaHandler) handler.Handlers {
			return handler.Handlers{Reservations: r, Dwellings: d, Areas: a}
		},
	),
	fx.Invoke(handler.NewRouter),
)
