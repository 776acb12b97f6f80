package email

import (
	"bytes"
	"context"
	htmltemplate "html/template"
	texttemplate "text/template"
)

const winnerSubject = "🎉 Parabéns! Você ganhou na Rifa Premiada!"

type Sender interface {
	SendWinner(ctx context.Context, mail WinnerMail) error
}

type WinnerMail struct {
	UserName  string
	UserEmail string
	PrizeName string
}

type renderedMail struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

var winnerText = texttemplate.Must(texttemplate.New("winner_text").Parse(`Olá {{.UserName}},

Parabéns! Você foi sorteado na nossa rifa e ganhou: {{.PrizeName}}.

Entre em contato conosco respondendo a este e-mail para receber seu prêmio.

Atenciosamente,
Equipe Rifa Premiada`))

var winnerHTML = htmltemplate.Must(htmltemplate.New("winner_html").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #8b5cf6;">🎉 Parabéns, {{.UserName}}!</h2>
  <p>Você foi sorteado na nossa <strong>Rifa Premiada</strong> e ganhou:</p>
  <h3 style="color: #ec4899;">{{.PrizeName}}</h3>
  <p>Entre em contato conosco respondendo a este e-mail para receber seu prêmio.</p>
  <hr style="margin: 20px 0; border: none; border-top: 1px solid #e5e7eb;">
  <p><small>Atenciosamente,<br>Equipe Rifa Premiada</small></p>
</div>`))

func renderWinner(mail WinnerMail) (*renderedMail, error) {
	var text, html bytes.Buffer
	if err := winnerText.Execute(&text, mail); err != nil {
		return nil, err
	}

	if err := winnerHTML.Execute(&html, mail); err != nil {
		return nil, err
	}

	return &renderedMail{
		To:      mail.UserEmail,
		Subject: winnerSubject,
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}
