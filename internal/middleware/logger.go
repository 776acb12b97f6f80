package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/rifa-premiada/backend/pkg/errorx"
	"github.com/rifa-premiada/backend/pkg/router"
	"github.com/rifa-premiada/backend/pkg/xcontext"
)

// Logger writes one line per request. Rejected requests are warnings, failed
// ones are errors.
func Logger() router.CloserFunc {
	return func(ctx context.Context) {
		req := xcontext.HTTPRequest(ctx)
		if req == nil {
			return
		}

		err := router.GetError(ctx)
		if err == nil {
			xcontext.Logger(ctx).Infof("%s %s | %d | %s", req.Method, req.URL.Path, http.StatusOK, clientIP(req))
			return
		}

		status := errorx.HTTPStatus(err)
		if status < http.StatusInternalServerError {
			xcontext.Logger(ctx).Warnf("%s %s | %d | %s | %v", req.Method, req.URL.Path, status, clientIP(req), err)
		} else {
			xcontext.Logger(ctx).Errorf("%s %s | %d | %s | %v", req.Method, req.URL.Path, status, clientIP(req), err)
		}
	}
}

func clientIP(req *http.Request) string {
	if forwarded := req.Header.Get("X-Forwarded-For"); forwarded != "" {
		ip, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(ip)
	}

	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}

	return host
}
