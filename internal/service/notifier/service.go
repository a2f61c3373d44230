package notifier

import (
	"fmt"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notifier/mock.go -package=mocks

// Notifier sends a message to a recipient over one channel.
type Notifier interface {
	Send(to string, msg string) error
}

// Service dispatches outbound messages to the notifier registered for the
// requested channel.
type Service struct {
	notifiers map[string]Notifier
}

func NewService(notifiers map[string]Notifier) *Service {
	return &Service{notifiers: notifiers}
}

func (s *Service) Send(to, message, channel string) error {
	n, ok := s.notifiers[channel]
	if !ok {
		return fmt.Errorf("unknown channel %s", channel)
	}

	if err := n.Send(to, message); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	return nil
}
