package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/rifa-premiada/backend/config"
	"github.com/rifa-premiada/backend/pkg/errorx"
	"github.com/rifa-premiada/backend/pkg/router"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines map[string][]string
}

func (l *recordingLogger) record(level, msg string, a ...any) {
	if l.lines == nil {
		l.lines = make(map[string][]string)
	}
	l.lines[level] = append(l.lines[level], fmt.Sprintf(msg, a...))
}

func (l *recordingLogger) Debugf(msg string, a ...any) { l.record("debug", msg, a...) }
func (l *recordingLogger) Infof(msg string, a ...any)  { l.record("info", msg, a...) }
func (l *recordingLogger) Warnf(msg string, a ...any)  { l.record("warn", msg, a...) }
func (l *recordingLogger) Errorf(msg string, a ...any) { l.record("error", msg, a...) }

type emptyRequest struct{}
type emptyResponse struct{}

func TestLogger(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
		want  string
	}{
		{
			name:  "success",
			level: "info",
			want:  "GET /ping | 200 | 10.0.0.1",
		},
		{
			name:  "rejected",
			err:   errorx.New(errorx.NotFound, "Not found ticket"),
			level: "warn",
			want:  "GET /ping | 404 | 10.0.0.1 | Not found ticket",
		},
		{
			name:  "failed",
			err:   errors.New("db is down"),
			level: "error",
			want:  "GET /ping | 500 | 10.0.0.1 | db is down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &recordingLogger{}
			cfg := config.Default()

			r := router.New(nil, cfg, log)
			r.AddCloser(Logger())
			router.GET(r, "/ping", func(context.Context, *emptyRequest) (*emptyResponse, error) {
				return &emptyResponse{}, tt.err
			})

			req := httptest.NewRequest("GET", "/ping", nil)
			req.Header.Set("X-Forwarded-For", "10.0.0.1, 172.16.0.1")
			r.Handler(cfg.ApiServer).ServeHTTP(httptest.NewRecorder(), req)

			require.Equal(t, []string{tt.want}, log.lines[tt.level])
		})
	}
}
