package routes

import (
	"datefinder/config"
	"datefinder/finder"
	"datefinder/locale"
	"datefinder/routes/rutil"
	"datefinder/util"
	"errors"
	"net/http"
)

type extractRequest struct {
	Text    string  `json:"text"`
	Locale  *string `json:"locale"`
	MinYear *int    `json:"min_year"`
	MaxYear *int    `json:"max_year"`
}

type extractResponse struct {
	Locale string          `json:"locale"`
	Dates  []finder.Result `json:"dates"`
}

type Api struct {
	Engines *Engines
	Config  config.Config
}

func (a *Api) Extract(w http.ResponseWriter, r *http.Request) {
	var request extractRequest
	rutil.MustReadJson(w, r, &request)

	localeName := a.Config.Locale
	if request.Locale != nil {
		localeName = *request.Locale
	}
	minYear := a.Config.MinYear
	if request.MinYear != nil {
		minYear = *request.MinYear
	}
	maxYear := a.Config.MaxYear
	if request.MaxYear != nil {
		maxYear = *request.MaxYear
	}

	if minYear < 1 || maxYear < 1 {
		util.HttpPanic(http.StatusBadRequest, "min_year and max_year must be positive")
	}

	engine, err := a.Engines.Get(localeName, minYear, maxYear)
	if errors.Is(err, locale.ErrUnknownLocale) || errors.Is(err, finder.ErrInvalidYearRange) {
		util.HttpPanicErr(http.StatusBadRequest, err)
	} else if err != nil {
		panic(err)
	}

	dates := engine.ExtractDates(request.Text)
	rutil.Logger(r).Info().
		Int("text_bytes", len(request.Text)).
		Int("dates", len(dates)).
		Msg("Extracted")
	rutil.MustWriteJson(w, http.StatusOK, extractResponse{
		Locale: engine.Locale().Name(),
		Dates:  dates,
	})
}

func (a *Api) Locales(w http.ResponseWriter, r *http.Request) {
	rutil.MustWriteJson(w, http.StatusOK, map[string]any{
		"locales": Locales(),
	})
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	util.HttpPanic(http.StatusNotFound, "not found: "+r.URL.Path)
}
