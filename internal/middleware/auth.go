package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rifa-premiada/backend/internal/model"
	"github.com/rifa-premiada/backend/pkg/errorx"
	"github.com/rifa-premiada/backend/pkg/router"
	"github.com/rifa-premiada/backend/pkg/xcontext"
)

type tokenExtractor func(ctx context.Context, req *http.Request) string

// AuthVerifier accepts the request if any of its enabled methods succeeds.
type AuthVerifier struct {
	extractors []tokenExtractor
	roles      []string
}

func NewAuthVerifier() *AuthVerifier {
	return &AuthVerifier{}
}

// WithAccessToken reads the token from the Authorization bearer header.
func (a *AuthVerifier) WithAccessToken() *AuthVerifier {
	a.extractors = append(a.extractors, bearerToken)
	return a
}

// WithCookie reads the token from the access token cookie.
func (a *AuthVerifier) WithCookie() *AuthVerifier {
	a.extractors = append(a.extractors, cookieToken)
	return a
}

// WithRoles rejects tokens whose role is not listed.
func (a *AuthVerifier) WithRoles(roles ...string) *AuthVerifier {
	a.roles = append(a.roles, roles...)
	return a
}

func (a *AuthVerifier) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		req := xcontext.HTTPRequest(ctx)
		engine := xcontext.TokenEngine(ctx)
		if req == nil || engine == nil {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		for _, extract := range a.extractors {
			token := extract(ctx, req)
			if token == "" {
				continue
			}

			info, err := engine.Verify(token)
			if err != nil {
				xcontext.Logger(ctx).Debugf("Cannot verify access token: %v", err)
				continue
			}

			if !a.allowRole(info) {
				return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
			}

			return xcontext.WithRequestUserID(ctx, info.Username), nil
		}

		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}
}

func (a *AuthVerifier) allowRole(info model.AccessToken) bool {
	if len(a.roles) == 0 {
		return true
	}

	for _, role := range a.roles {
		if info.Role == role {
			return true
		}
	}

	return false
}

func bearerToken(_ context.Context, req *http.Request) string {
	auth, token, found := strings.Cut(req.Header.Get("Authorization"), " ")
	if !found || auth != "Bearer" {
		return ""
	}

	return token
}

func cookieToken(ctx context.Context, req *http.Request) string {
	cookie, err := req.Cookie(xcontext.Configs(ctx).Auth.AccessToken.Name)
	if err != nil {
		return ""
	}

	return cookie.Value
}
