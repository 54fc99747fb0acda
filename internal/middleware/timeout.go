package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/brightpath/care-api/internal/handler"
)

// TimeoutConfig represents timeout middleware configuration
type TimeoutConfig struct {
	Duration time.Duration
}

// timeoutWriter buffers the handler's response so that the deadline
// path and the handler never write to the underlying writer
// concurrently. After the deadline fires, late handler writes are
// silently discarded.
type timeoutWriter struct {
	gin.ResponseWriter
	mu          sync.Mutex
	body        bytes.Buffer
	code        int
	wroteHeader bool
	timedOut    bool
}

func (w *timeoutWriter) WriteHeader(code int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut || w.wroteHeader {
		return
	}
	w.code = code
	w.wroteHeader = true
}

func (w *timeoutWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return 0, nil
	}
	return w.body.Write(b)
}

func (w *timeoutWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// markTimedOut claims the response for the deadline path. It returns
// false when the handler already finished writing.
func (w *timeoutWriter) markTimedOut() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return false
	}
	w.timedOut = true
	return true
}

// flushTo copies the buffered response to the real writer. Only called
// from the middleware goroutine after the handler finished.
func (w *timeoutWriter) flushTo(real gin.ResponseWriter) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return
	}
	if w.wroteHeader {
		real.WriteHeader(w.code)
	}
	if w.body.Len() > 0 {
		real.Write(w.body.Bytes())
	}
}

// Timeout bounds each request's context lifetime and answers 504 when
// the handler overruns the deadline.
func Timeout(config TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), config.Duration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		real := c.Writer
		tw := &timeoutWriter{ResponseWriter: real, code: http.StatusOK}
		c.Writer = tw

		done := make(chan struct{})
		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.Error().Interface("panic", r).
						Str("path", c.Request.URL.Path).
						Msg("handler panic")
					tw.WriteHeader(http.StatusInternalServerError)
				}
				close(done)
			}()
			c.Next()
		}()

		select {
		case <-done:
			tw.flushTo(real)
		case <-ctx.Done():
			if tw.markTimedOut() {
				c.Abort()
				real.Header().Set("Content-Type", "application/json; charset=utf-8")
				real.WriteHeader(http.StatusGatewayTimeout)
				body, _ := json.Marshal(handler.NewErrorResponse("request timeout"))
				real.Write(body)
			}
			<-done
		}
	}
}
