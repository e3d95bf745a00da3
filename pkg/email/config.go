package email

// Config holds email delivery settings. Postmark tokens are optional so that
// development setups can use DevSender instead.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"noreply@localhost"`
	SupportEmail         string `env:"SUPPORT_EMAIL" envDefault:"support@localhost"`
	// DevDir is where DevSender writes messages.
	DevDir string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}
