// Package whatsapp sends outbound messages through the Twilio WhatsApp API
// and validates inbound webhook signatures.
package whatsapp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Sender implements contract.ChannelSender on top of the Twilio REST API.
type Sender struct {
	log    *slog.Logger
	client *twilio.RestClient
	from   string
}

func NewSender(log *slog.Logger, accountSID, authToken, from string) *Sender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &Sender{log: log, client: client, from: from}
}

// Send pushes one message body to the destination. The Twilio SDK has no
// context hook on CreateMessage, so cancellation is checked up front.
func (s *Sender) Send(ctx context.Context, to, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("create message: %w", err)
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	s.log.Debug("Message sent", "to", to, "sid", sid, "length", len(body))
	return nil
}
