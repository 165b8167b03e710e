// Package service contains supporting services that run next to the
// request handlers
package service

import (
	"errors"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

// SMTPMailer sends mail through the SMTP relay from the config. It dials
// per message; the service sends far too little mail to justify a held
// connection.
type SMTPMailer struct {
	host     string
	port     int
	from     string
	password string
}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{
		host:     viper.GetString("mail.host"),
		port:     viper.GetInt("mail.port"),
		from:     viper.GetString("mail.sender_address"),
		password: viper.GetString("mail.password"),
	}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	if to == m.from {
		return errors.New("invalid recipient address")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.host, m.port, m.from, m.password)

	return d.DialAndSend(msg)
}
