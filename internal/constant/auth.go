package constant

const (
	SessionCookieName = "papermapper_session"

	// Reset codes are 6 digits, valid for 10 minutes, single use.
	ResetCodeLength     = 6
	ResetCodeTTLMinutes = 10
)
