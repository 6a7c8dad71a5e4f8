package mailer

import (
	"net/http"
	"testing"

	"github.com/papermapper/papermapper/internal/config"
	"github.com/papermapper/papermapper/internal/env"
)

func TestSendResetPasswordMail(t *testing.T) {
	env.LoadEnv("../../.env")

	cfg := config.GetConfig()
	if cfg.Mail.SEND_GRID.API_KEY == "" {
		t.Skip("MAIL_SEND_GRID_API_KEY not configured")
	}

	// isProduction = false keeps sandbox mode on so no real email goes out.
	mail := NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, false, nil)

	vars := ResetPasswordData{
		Email:      "someone@example.com",
		Code:       "123456",
		TTLMinutes: 10,
	}

	status, err := mail.Send(RESET_PASSWORD_TEMPLATE, "someone", "someone@example.com", vars)

	switch status {
	case http.StatusUnauthorized:
		t.Errorf("Unauthorized to send mail, check mail api_key and from_email")
	case http.StatusForbidden:
		t.Errorf("Forbidden to send mail, check mail from_email is it the correct email authorized in send grid?")
	}

	// 202 means accepted by SendGrid.
	if status != http.StatusAccepted && status != http.StatusOK {
		t.Errorf("We got status %d, error: %v", status, err)
	}
}
