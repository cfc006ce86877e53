package whatsapp

import (
	twilioclient "github.com/twilio/twilio-go/client"
)

// Validator checks the X-Twilio-Signature header on inbound webhooks so
// only requests signed with our auth token reach the service layer.
type Validator struct {
	inner   twilioclient.RequestValidator
	enabled bool
}

func NewValidator(authToken string, enabled bool) *Validator {
	return &Validator{
		inner:   twilioclient.NewRequestValidator(authToken),
		enabled: enabled,
	}
}

// Valid reports whether the signature matches the full request URL and the
// posted form parameters. When validation is disabled (local development)
// every request passes.
func (v *Validator) Valid(url string, params map[string]string, signature string) bool {
	if !v.enabled {
		return true
	}
	return v.inner.Validate(url, params, signature)
}
