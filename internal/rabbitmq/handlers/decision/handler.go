package decision

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/niloyahmadramjan/surplusshare-server/internal/rabbitmq/queue"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/decision/mock.go -package=mocks
type notifierService interface {
	Send(to, message, channel string) error
}

// Handler turns decision messages into outbound notifications.
type Handler struct {
	service notifierService
}

func NewHandler(svc notifierService) *Handler {
	return &Handler{
		service: svc,
	}
}

func (h *Handler) HandleMessage(ctx context.Context, msg queue.DecisionMessage, strategy retry.Strategy) {
	zlog.Logger.Info().Msgf("Handle Message: Got decision %s for request %s", msg.Outcome, msg.RequestID)

	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			zlog.Logger.Printf("Handle Message: Notifying %s via %s", msg.CharityEmail, msg.Channel)
			return h.service.Send(msg.CharityEmail, Render(msg), msg.Channel)
		}
	}, strategy)

	if err != nil {
		zlog.Logger.Printf("Handle Message: Decision %s for request %s failed, moving to DLQ: %v", msg.Outcome, msg.RequestID, err)
		return
	}

	zlog.Logger.Info().Msgf("Handle Message: Request %s notification sent successfully", msg.RequestID)
}

// Render builds the notification text for a decision outcome.
func Render(msg queue.DecisionMessage) string {
	switch msg.Outcome {
	case "submitted":
		return fmt.Sprintf("Hi %s, your request for %q was submitted. The donor will review it shortly.", msg.CharityName, msg.DonationTitle)
	case "accepted":
		return fmt.Sprintf("Hi %s, your request for %q was accepted. Please arrange the pickup.", msg.CharityName, msg.DonationTitle)
	case "rejected":
		return fmt.Sprintf("Hi %s, your request for %q was not selected this time.", msg.CharityName, msg.DonationTitle)
	case "picked_up":
		return fmt.Sprintf("Hi %s, the pickup of %q is confirmed. Thank you!", msg.CharityName, msg.DonationTitle)
	default:
		return fmt.Sprintf("Hi %s, your request for %q is now %s.", msg.CharityName, msg.DonationTitle, msg.Outcome)
	}
}
