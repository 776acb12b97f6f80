package mocks

import (
	"context"

	"github.com/rifa-premiada/backend/pkg/api/horsepay"
	"github.com/stretchr/testify/mock"
)

type PixEndpoint struct {
	mock.Mock
}

func (e *PixEndpoint) Authenticate(arg1 context.Context) error {
	args := e.Called(arg1)
	return args.Error(0)
}

func (e *PixEndpoint) CreateOrder(arg1 context.Context, arg2 string, arg3 float64, arg4 []horsepay.Split) (*horsepay.Order, error) {
	args := e.Called(arg1, arg2, arg3, arg4)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*horsepay.Order), args.Error(1)
}

func (e *PixEndpoint) RequestWithdraw(arg1 context.Context, arg2 float64, arg3, arg4 string) (*horsepay.Withdraw, error) {
	args := e.Called(arg1, arg2, arg3, arg4)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*horsepay.Withdraw), args.Error(1)
}

func (e *PixEndpoint) GetBalance(arg1 context.Context) (*horsepay.Balance, error) {
	args := e.Called(arg1)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*horsepay.Balance), args.Error(1)
}

func (e *PixEndpoint) GetDepositDetails(arg1 context.Context, arg2 int64) (*horsepay.OrderDetails, error) {
	args := e.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*horsepay.OrderDetails), args.Error(1)
}

func (e *PixEndpoint) GetWithdrawDetails(arg1 context.Context, arg2 int64) (*horsepay.OrderDetails, error) {
	args := e.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*horsepay.OrderDetails), args.Error(1)
}

func (e *PixEndpoint) CheckMed(arg1 context.Context, arg2 int64) (*horsepay.MedStatus, error) {
	args := e.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*horsepay.MedStatus), args.Error(1)
}
