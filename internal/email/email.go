package email

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/rs/zerolog/log"
	"github.com/yashalsharma/kirayadoor-backend/internal/config"
)

// Sender delivers OTP codes over SMTP through an email-to-SMS gateway:
// mail addressed to <phone>@gateway reaches the owner's handset.
type Sender struct {
	cfg config.SMTPConfig
}

// NewSender creates a new OTP sender
func NewSender(cfg config.SMTPConfig) *Sender {
	return &Sender{cfg: cfg}
}

// SendOTP sends a login code to the given phone number
func (s *Sender) SendOTP(phone, code string) error {
	e := email.NewEmail()
	e.From = s.cfg.Sender
	e.To = []string{fmt.Sprintf("%s@%s", phone, s.cfg.GatewayDomain)}
	e.Subject = "KirayaDoor login code"
	e.Text = []byte(fmt.Sprintf(
		"Your one-time login code is %s. It expires in 5 minutes.", code,
	))

	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	if err := e.Send(addr, auth); err != nil {
		log.Error().Err(err).Str("phone", phone).Msg("Failed to send OTP")
		return fmt.Errorf("failed to send OTP: %w", err)
	}

	log.Info().Str("phone", phone).Msg("OTP sent")
	return nil
}
