package email

import (
	"context"

	"github.com/rifa-premiada/backend/pkg/xcontext"
)

// logSender only logs the mail. It is used when email delivery is disabled.
type logSender struct{}

func NewLogSender() *logSender {
	return &logSender{}
}

func (logSender) SendWinner(ctx context.Context, mail WinnerMail) error {
	rendered, err := renderWinner(mail)
	if err != nil {
		return err
	}

	xcontext.Logger(ctx).Infof("Email (simulated) to %s: %s\n%s", rendered.To, rendered.Subject, rendered.Text)
	return nil
}
