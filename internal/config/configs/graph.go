package configs

import "time"

// Graph configures access to the Instagram Graph API and the webhook
// subscription handshake. AccessToken authenticates outbound messaging
// calls; VerifyToken is the shared secret echoed during the GET handshake.
// AppSecret, when set, enables X-Hub-Signature-256 validation of event
// bodies; leave it empty to accept unsigned payloads (local development).
type Graph struct {
	// BaseURL is the Graph API root, including the API version segment.
	BaseURL string `env:"BASE_URL" envDefault:"https://graph.facebook.com/v21.0"`
	// AccessToken is the long-lived bearer token for messaging calls.
	AccessToken string `env:"ACCESS_TOKEN"`
	// BusinessAccountID is the Instagram business account sending DMs.
	BusinessAccountID string `env:"BUSINESS_ACCOUNT_ID"`
	// VerifyToken is compared against hub.verify_token on GET requests.
	VerifyToken string `env:"VERIFY_TOKEN"`
	// AppSecret is the Meta app secret used for payload signatures.
	AppSecret string `env:"APP_SECRET"`
	// Timeout bounds each outbound Graph API call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
	// MaxAttempts caps delivery attempts per call. Only transport errors
	// are retried; HTTP-level errors are not.
	MaxAttempts int `env:"MAX_ATTEMPTS" envDefault:"2"`
}
