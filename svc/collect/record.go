package collect

// Record is one submission as posted by the landing page. It is not
// deduplicated and carries no identity.
type Record struct {
	Email    string `json:"email" bson:"email"`
	Platform string `json:"platform" bson:"platform"`
	// Timestamp is the client clock in ISO-8601, passed through unchanged.
	Timestamp string `json:"timestamp" bson:"timestamp"`
}

// Ack is the success body.
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

const (
	MsgCollected    = "Email collected successfully"
	MsgInvalidEmail = "Invalid email address"
)
