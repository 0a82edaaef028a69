package middleware

import (
	"context"
	"datefinder/clock"
	"datefinder/log"
	"datefinder/oops"
	"datefinder/util"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/mileusna/useragent"
	"github.com/rs/zerolog"
)

const RequestIdHeader = "X-Request-ID"

// Logger should come before Recoverer
func Logger(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		t1 := time.Now()

		path := r.URL.Path
		if r.URL.RawQuery != "" {
			path += "?" + r.URL.RawQuery
		}

		userAgent := useragent.Parse(r.UserAgent())
		commonFields := func(event *zerolog.Event) {
			event.
				Str("method", r.Method).
				Str("path", path)
			if userAgent.Bot {
				event.Str("bot", userAgent.Name)
			}
		}

		requestId := r.Header.Get(RequestIdHeader)
		if requestId == "" {
			requestId = uuid.New().String()
		}
		ww.Header().Set(RequestIdHeader, requestId)
		logger := &WebLogger{
			RequestId: requestId,
		}

		logger.
			Info().
			Func(commonFields).
			Str("ip", util.UserIp(r)).
			Str("user-agent", r.UserAgent()).
			Msg("started")

		var errorWrapper errorWrapper
		r = withLogger(withErrorWrapper(r, &errorWrapper), logger)

		defer func() {
			status := ww.Status()
			if status/100 == 5 || (status/100 == 4 && errorWrapper.err != nil) {
				event := logger.
					Error().
					Func(commonFields)
				if errorWrapper.err != nil {
					event.Err(errorWrapper.err)
				}
				event.
					Int("status", status).
					TimeDiff("duration", time.Now(), t1).
					Msg("failed")
			} else {
				logger.
					Info().
					Func(commonFields).
					Int("status", status).
					Int("bytes", ww.BytesWritten()).
					TimeDiff("duration", time.Now(), t1).
					Msg("completed")
			}
		}()
		next.ServeHTTP(ww, r)
	}
	return http.HandlerFunc(fn)
}

type errorWrapperKeyType struct{}

var errorWrapperKey = &errorWrapperKeyType{}

type errorWrapper struct {
	err *oops.Error
}

func withErrorWrapper(r *http.Request, errorWrapper *errorWrapper) *http.Request {
	r = r.WithContext(context.WithValue(r.Context(), errorWrapperKey, errorWrapper))
	return r
}

func setError(r *http.Request, error *oops.Error) {
	if errorWrapper, ok := r.Context().Value(errorWrapperKey).(*errorWrapper); ok {
		errorWrapper.err = error
	}
}

type loggerKeyType struct{}

var loggerKey = &loggerKeyType{}

func withLogger(r *http.Request, logger *WebLogger) *http.Request {
	r = r.WithContext(context.WithValue(r.Context(), loggerKey, logger))
	return r
}

// GetLogger falls back to a logger without a request id outside of the Logger middleware
func GetLogger(r *http.Request) *WebLogger {
	if logger, ok := r.Context().Value(loggerKey).(*WebLogger); ok {
		return logger
	}
	return &WebLogger{}
}

type WebLogger struct {
	RequestId string
}

func (l *WebLogger) Info() *zerolog.Event {
	event := log.Base.Info()
	event = l.logWebCommon(event)
	return event
}

func (l *WebLogger) Warn() *zerolog.Event {
	event := log.Base.Warn()
	event = l.logWebCommon(event)
	return event
}

func (l *WebLogger) Error() *zerolog.Event {
	event := log.Base.Error()
	event = l.logWebCommon(event)
	return event
}

func (l *WebLogger) logWebCommon(event *zerolog.Event) *zerolog.Event {
	event = event.Timestamp()
	if clock.IsSetUTCNowOverride() {
		event = event.Time("time_override", clock.UTCNow())
	}
	if l.RequestId != "" {
		event = event.Str("request_id", l.RequestId)
	}
	return event
}
