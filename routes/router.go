package routes

import (
	"datefinder/clock"
	"datefinder/config"
	"datefinder/log"
	frmiddleware "datefinder/middleware"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, clk clock.Clock) http.Handler {
	api := &Api{
		Engines: NewEngines(clk, &log.TaskLogger{TaskName: "engines"}),
		Config:  cfg,
	}

	r := chi.NewRouter()
	r.Use(frmiddleware.Logger)
	r.Use(middleware.Compress(5))
	r.Use(frmiddleware.Recoverer)
	r.Use(frmiddleware.DefaultHeaders)
	r.Use(middleware.GetHead)
	r.Use(frmiddleware.TrimSlashes)

	r.Post("/extract", api.Extract)
	r.Get("/locales", api.Locales)
	r.Get("/healthz", Healthz)
	r.NotFound(NotFound)

	return r
}
