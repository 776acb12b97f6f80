package email

import (
	"context"
	"errors"
	"mime"
	"testing"

	"github.com/rifa-premiada/backend/config"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	messages []*gomail.Message
	err      error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	d.messages = append(d.messages, m...)
	return d.err
}

func Test_renderWinner(t *testing.T) {
	out, err := renderWinner(WinnerMail{
		UserName:  "Maria <b>",
		UserEmail: "maria@example.com",
		PrizeName: "Smartwatch",
	})
	require.NoError(t, err)
	require.Equal(t, "maria@example.com", out.To)
	require.Equal(t, winnerSubject, out.Subject)
	require.Contains(t, out.Text, "Olá Maria <b>,")
	require.Contains(t, out.Text, "ganhou: Smartwatch.")
	require.Contains(t, out.HTML, "Parabéns, Maria &lt;b&gt;!")
	require.Contains(t, out.HTML, "Smartwatch</h3>")
}

func Test_smtpSender_SendWinner(t *testing.T) {
	d := &fakeDialer{}
	s := &smtpSender{from: "noreply@example.com", fromName: "Rifa Premiada", dialer: d}

	err := s.SendWinner(context.Background(), WinnerMail{
		UserName:  "Joao",
		UserEmail: "joao@example.com",
		PrizeName: "Notebook Gamer",
	})
	require.NoError(t, err)
	require.Len(t, d.messages, 1)
	require.Equal(t, []string{"joao@example.com"}, d.messages[0].GetHeader("To"))

	// gomail encodes non ascii headers as RFC 2047 words.
	subject := d.messages[0].GetHeader("Subject")
	require.Len(t, subject, 1)
	decoded, err := new(mime.WordDecoder).DecodeHeader(subject[0])
	require.NoError(t, err)
	require.Equal(t, winnerSubject, decoded)
}

func Test_smtpSender_DialError(t *testing.T) {
	d := &fakeDialer{err: errors.New("connection refused")}
	s := &smtpSender{from: "noreply@example.com", dialer: d}

	err := s.SendWinner(context.Background(), WinnerMail{UserEmail: "a@example.com"})
	require.EqualError(t, err, "connection refused")
}

func Test_NewSMTPSender(t *testing.T) {
	_, err := NewSMTPSender(config.EmailConfigs{Host: "smtp.example.com"})
	require.ErrorIs(t, err, ErrIncompleteConfig)

	s, err := NewSMTPSender(config.EmailConfigs{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "user",
		Password: "pass",
		FromName: "Rifa Premiada",
	})
	require.NoError(t, err)
	require.Equal(t, "user", s.from)
}

func Test_logSender(t *testing.T) {
	require.NoError(t, NewLogSender().SendWinner(context.Background(), WinnerMail{
		UserName:  "Ana",
		UserEmail: "ana@example.com",
		PrizeName: "Vale Compras R$ 100",
	}))
}
