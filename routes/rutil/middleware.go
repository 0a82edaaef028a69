package rutil

import (
	"datefinder/middleware"
	"net/http"
)

// This file wraps calls to the middleware package so that the routes don't have to reference it

func Logger(r *http.Request) *middleware.WebLogger {
	return middleware.GetLogger(r)
}
