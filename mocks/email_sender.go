package mocks

import (
	"context"

	"github.com/rifa-premiada/backend/pkg/email"
	"github.com/stretchr/testify/mock"
)

type EmailSender struct {
	mock.Mock
}

func (s *EmailSender) SendWinner(arg1 context.Context, arg2 email.WinnerMail) error {
	args := s.Called(arg1, arg2)
	return args.Error(0)
}
