package scoutserver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/glowuprizz/go_scout/internal/engine/scout"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// OutreachSendInput is the input for outreach_send.
type OutreachSendInput struct {
	To          string `json:"to" jsonschema:"Recipient email address"`
	ChannelName string `json:"channel_name" jsonschema:"Channel name, substituted into the template and recorded in the send log"`
	SenderName  string `json:"sender_name" jsonschema:"Marketer name, substituted into the template and shown as the From display name"`
	Template    string `json:"template,omitempty" jsonschema:"Built-in template: brand-collab (default) or product-seeding. Ignored when subject and body are given."`
	Subject     string `json:"subject,omitempty" jsonschema:"Custom subject; overrides the template"`
	Body        string `json:"body,omitempty" jsonschema:"Custom HTML body; overrides the template"`
	CardPath    string `json:"card_path,omitempty" jsonschema:"Path to a business-card image embedded inline at the bottom of the mail"`
}

// OutreachSendOutput reports the send attempt.
type OutreachSendOutput struct {
	Sent    bool   `json:"sent"`
	Status  string `json:"status"`
	Subject string `json:"subject"`
}

func registerOutreachSend(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "outreach_send",
		Description: "Send a templated outreach proposal mail to a creator, with an optional inline business-card image. The attempt (success or failure reason) is appended to the send log. Never retried automatically.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input OutreachSendInput) (*mcp.CallToolResult, OutreachSendOutput, error) {
		if !strings.Contains(input.To, "@") {
			return nil, OutreachSendOutput{}, fmt.Errorf("invalid recipient email %q", input.To)
		}
		if input.ChannelName == "" || input.SenderName == "" {
			return nil, OutreachSendOutput{}, errors.New("channel_name and sender_name are required")
		}

		subject, body := input.Subject, input.Body
		if subject == "" || body == "" {
			name := input.Template
			if name == "" {
				name = "brand-collab"
			}
			tplSubject, tplBody, err := scout.RenderTemplate(name, input.ChannelName, input.SenderName)
			if err != nil {
				return nil, OutreachSendOutput{}, err
			}
			if subject == "" {
				subject = tplSubject
			}
			if body == "" {
				body = tplBody
			}
		}

		var card []byte
		if input.CardPath != "" {
			data, err := os.ReadFile(input.CardPath)
			if err != nil {
				// The sender asked for a card; dropping it silently would
				// send a broken-looking mail.
				return nil, OutreachSendOutput{}, fmt.Errorf("card image: %w", err)
			}
			card = data
		}

		err := scout.SendOutreach(ctx, scout.Outreach{
			To:          input.To,
			Subject:     subject,
			BodyHTML:    body,
			ChannelName: input.ChannelName,
			SenderName:  input.SenderName,
			CardImage:   card,
		})
		if err != nil {
			return nil, OutreachSendOutput{Sent: false, Status: err.Error(), Subject: subject}, nil
		}
		return nil, OutreachSendOutput{Sent: true, Status: "sent", Subject: subject}, nil
	})
}
