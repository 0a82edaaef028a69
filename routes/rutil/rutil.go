package rutil

import (
	"datefinder/util"
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

const maxBodyBytes = 1 << 20

func MustWriteJson(w http.ResponseWriter, statusCode int, data any) {
	bytes, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err = w.Write(bytes)
	if err != nil {
		panic(err)
	}
}

// MustReadJson decodes the request body into data or panics with a 4xx HttpError
func MustReadJson(w http.ResponseWriter, r *http.Request, data any) {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(data); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			util.HttpPanicErr(http.StatusRequestEntityTooLarge, err)
		}
		if errors.Is(err, io.EOF) {
			util.HttpPanic(http.StatusBadRequest, "empty body")
		}
		util.HttpPanicErr(http.StatusBadRequest, err)
	}
}
