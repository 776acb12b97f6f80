package email

import (
	"context"
	"errors"

	"github.com/rifa-premiada/backend/config"
	"gopkg.in/gomail.v2"
)

var ErrIncompleteConfig = errors.New("incomplete smtp configuration")

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpSender struct {
	from     string
	fromName string
	dialer   dialer
}

func NewSMTPSender(cfg config.EmailConfigs) (*smtpSender, error) {
	if cfg.Host == "" || cfg.Username == "" || cfg.Password == "" {
		return nil, ErrIncompleteConfig
	}

	return &smtpSender{
		from:     cfg.Username,
		fromName: cfg.FromName,
		dialer:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}, nil
}

func (s *smtpSender) SendWinner(ctx context.Context, mail WinnerMail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rendered, err := renderWinner(mail)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.fromName)
	m.SetHeader("To", rendered.To)
	m.SetHeader("Subject", rendered.Subject)
	m.SetBody("text/plain", rendered.Text)
	m.AddAlternative("text/html", rendered.HTML)

	return s.dialer.DialAndSend(m)
}
