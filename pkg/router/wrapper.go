package router

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rifa-premiada/backend/pkg/errorx"
)

type (
	responseKey struct{}
	errorKey    struct{}
)

// GetResponse returns the response of the handler. It is only available in
// After middlewares and closers.
func GetResponse(ctx context.Context) any {
	return ctx.Value(responseKey{})
}

// GetError returns the error of the request. It is only available in
// closers.
func GetError(ctx context.Context) error {
	err, _ := ctx.Value(errorKey{}).(error)
	return err
}

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := router.newContext(c)

		var resp *Response
		err := func() error {
			var err error
			if ctx, err = runMiddlewares(ctx, router.befores); err != nil {
				return err
			}

			req := new(Request)
			if err := bind(c, method, req); err != nil {
				return errorx.New(errorx.BadRequest, "Invalid request: %v", err)
			}

			resp, err = handler(ctx, req)
			if err != nil {
				return err
			}

			ctx = context.WithValue(ctx, responseKey{}, resp)
			ctx, err = runMiddlewares(ctx, router.afters)
			return err
		}()

		if err != nil {
			ctx = context.WithValue(ctx, errorKey{}, err)
		}
		c.JSON(buildEnvelope(resp, err))

		for _, closer := range router.closers {
			closer(ctx)
		}
	}
}

func runMiddlewares(ctx context.Context, middlewares []MiddlewareFunc) (context.Context, error) {
	for _, m := range middlewares {
		newCtx, err := m(ctx)
		if err != nil {
			return ctx, err
		}
		ctx = newCtx
	}

	return ctx, nil
}

func bind(c *gin.Context, method string, req any) error {
	switch method {
	case http.MethodGet:
		return c.ShouldBindQuery(req)
	case http.MethodPost:
		// Multipart bodies are read by the handler itself. Anything else is
		// decoded as json whatever its content type says.
		if c.Request.ContentLength == 0 || c.ContentType() == binding.MIMEMultipartPOSTForm {
			return nil
		}

		if err := c.ShouldBindWith(req, binding.JSON); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	}

	return nil
}
