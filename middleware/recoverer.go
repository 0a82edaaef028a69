package middleware

import (
	"datefinder/oops"
	"datefinder/util"
	"errors"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
)

func Recoverer(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil && rvr != http.ErrAbortHandler {
				err, ok := rvr.(error)
				if !ok {
					err = fmt.Errorf("%v", rvr)
				}

				status := http.StatusInternalServerError
				var httpErr util.HttpError
				if errors.As(err, &httpErr) {
					status = httpErr.Status
					err = httpErr.Inner
				}

				message := http.StatusText(status)
				if status != http.StatusInternalServerError {
					message = err.Error()
				}
				body, _ := json.Marshal(map[string]string{"error": message})
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(status)
				_, _ = w.Write(body)

				sterr, ok := err.(*oops.Error)
				if !ok {
					sterr = oops.Wrap(err).(*oops.Error)
				}
				setError(r, sterr)
			}
		}()

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
