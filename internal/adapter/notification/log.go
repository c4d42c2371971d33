package notification

import (
	"log"

	"github.com/shopspring/decimal"
)

// LogSink is a domain.NotificationSink that writes outcome signals to
// the process log. Used when no message broker is configured.
type LogSink struct{}

// NewLogSink creates a new LogSink instance
func NewLogSink() LogSink {
	return LogSink{}
}

func (LogSink) NotifySuccess(amount decimal.Decimal) {
	log.Printf("level=info component=notification event=transfer_succeeded amount=%s", amount)
}

func (LogSink) NotifyDenied(reason string) {
	log.Printf("level=info component=notification event=transfer_denied reason=%q", reason)
}
