package mailer

import "embed"

const (
	FROM_NAME               = "PaperMapper"
	MAX_RETRY               = 3
	RESET_PASSWORD_TEMPLATE = "reset_password.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, toUsername, toEmail string, data any) (int, error)
}

// ResetPasswordData fills the reset_password template.
type ResetPasswordData struct {
	Email      string
	Code       string
	TTLMinutes int
}
