package components

import (
	"campsite-reservation/internal/handler"
	"campsite-reservation/internal/handler/api"

	"go.uber.org/fx"
)

// HandlerModule provides the HTTP engine with every reservation route mounted.
var HandlerModule = fx.Module("handler",
	fx.Provide(
		handler.NewEngine,
		api.NewReservationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
