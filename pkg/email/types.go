package email

// Message is a single outbound email. At least one recipient and one of
// TextBody or HTMLBody must be set.
type Message struct {
	To       []string
	CC       []string
	BCC      []string
	Subject  string
	TextBody string
	HTMLBody string
	Headers  map[string]string
}
