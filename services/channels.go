// services/channels.go
package services

// ChannelResult is the outcome of a single channel send attempt.
// Simulated is set when no real provider is configured and the send
// was skipped on purpose.
type ChannelResult struct {
	Success   bool
	ID        string
	Simulated bool
	Error     string
}

type EmailMessage struct {
	To      string
	Subject string
	HTML    string
}

type SMSMessage struct {
	To      string
	Message string
}

// EmailSender delivers one email message.
type EmailSender interface {
	Send(msg EmailMessage) ChannelResult
}

// SMSSender delivers one SMS message.
type SMSSender interface {
	Send(msg SMSMessage) ChannelResult
}
