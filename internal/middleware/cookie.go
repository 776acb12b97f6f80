package middleware

import (
	"context"
	"net/http"

	"github.com/rifa-premiada/backend/pkg/router"
	"github.com/rifa-premiada/backend/pkg/xcontext"
)

type CookieResponse interface {
	CookieInfo() []http.Cookie
}

func HandleSetCookie() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		resp, ok := router.GetResponse(ctx).(CookieResponse)
		if !ok {
			return ctx, nil
		}

		w := xcontext.ResponseWriter(ctx)
		if w == nil {
			return ctx, nil
		}

		secure := xcontext.Configs(ctx).IsProduction()
		for _, cookie := range resp.CookieInfo() {
			cookie := cookie
			cookie.Secure = secure
			http.SetCookie(w, &cookie)
		}

		return ctx, nil
	}
}
