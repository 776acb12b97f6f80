package domain

import (
	"context"
	"strings"

	"github.com/rifa-premiada/backend/internal/model"
	"github.com/rifa-premiada/backend/pkg/crypto"
	"github.com/rifa-premiada/backend/pkg/errorx"
	"github.com/rifa-premiada/backend/pkg/xcontext"
)

const tokenType = "Bearer"

type AuthDomain interface {
	Login(context.Context, *model.LoginRequest) (*model.LoginResponse, error)
	Verify(context.Context, *model.VerifyRequest) (*model.VerifyResponse, error)
}

type authDomain struct{}

func NewAuthDomain() *authDomain {
	return &authDomain{}
}

func (d *authDomain) Login(
	ctx context.Context, req *model.LoginRequest,
) (*model.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, errorx.New(errorx.BadRequest, "Username and password are required")
	}

	authCfg := xcontext.Configs(ctx).Auth
	if authCfg.AdminPassword == "" {
		xcontext.Logger(ctx).Warnf("Admin password is not configured, reject login of %s", username)
		return nil, errorx.New(errorx.Unauthenticated, "Invalid username or password")
	}

	validUsername := crypto.SecureEqual(authCfg.AdminUsername, username)
	validPassword := crypto.CheckPassword(authCfg.AdminPassword, req.Password)
	if !validUsername || !validPassword {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid username or password")
	}

	user := model.AccessToken{Username: username, Role: model.AdminRole}
	token, err := xcontext.TokenEngine(ctx).Generate(username, user)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LoginResponse{
		AccessToken: token,
		TokenType:   tokenType,
		ExpiresIn:   int64(authCfg.AccessToken.Expiration.Seconds()),
		User:        user,
		CookieName:  authCfg.AccessToken.Name,
	}, nil
}

func (d *authDomain) Verify(
	ctx context.Context, req *model.VerifyRequest,
) (*model.VerifyResponse, error) {
	username := xcontext.RequestUserID(ctx)
	if username == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	return &model.VerifyResponse{Username: username, Role: model.AdminRole}, nil
}
