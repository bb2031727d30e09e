package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/mzhdanov/alert-router/internal/api/handlers/delivery"
	"github.com/mzhdanov/alert-router/internal/api/handlers/message"
	"github.com/mzhdanov/alert-router/internal/middlewares"
)

func New(messages *message.Handler, deliveries *delivery.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")
	{
		msgs := api.Group("/messages")
		{
			msgs.POST("", messages.Dispatch)
			msgs.GET("/:id", messages.Get)
			msgs.GET("/:id/status", messages.GetStatus)
		}

		api.POST("/deliveries/:id/requeue", deliveries.Requeue)
	}

	return e
}
