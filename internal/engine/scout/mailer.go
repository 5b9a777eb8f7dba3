package scout

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/glowuprizz/go_scout/internal/engine"
	"github.com/glowuprizz/go_scout/internal/engine/store"
)

const cardCID = "business_card.png"

// Outreach is one mail-send request, built immediately before the attempt.
type Outreach struct {
	To          string
	Subject     string
	BodyHTML    string
	ChannelName string
	SenderName  string
	CardImage   []byte // optional inline business card
}

// buildHTML wraps the body and, when a card is attached, appends the inline
// image reference the embedded part answers to.
func buildHTML(body string, withCard bool) string {
	var sb strings.Builder
	sb.WriteString(`<html><body><div style="font-family: Arial, sans-serif; font-size: 14px; color: #333;">`)
	sb.WriteString(body)
	sb.WriteString(`</div>`)
	if withCard {
		sb.WriteString(`<br><br><img src="cid:` + cardCID + `" alt="business card" style="max-width: 100%; height: auto; border: 1px solid #ddd;">`)
	}
	sb.WriteString(`</body></html>`)
	return sb.String()
}

// SendOutreach sends one proposal mail over SMTPS and appends the attempt
// to the send log. Failures are logged with their reason and returned;
// nothing is retried.
func SendOutreach(ctx context.Context, o Outreach) error {
	if !strings.Contains(o.To, "@") {
		return fmt.Errorf("outreach: invalid recipient %q", o.To)
	}

	m := mail.NewMsg()
	if err := m.FromFormat(o.SenderName, engine.Cfg.SMTPUser); err != nil {
		return fmt.Errorf("outreach: from: %w", err)
	}
	if err := m.To(o.To); err != nil {
		return fmt.Errorf("outreach: to: %w", err)
	}
	if engine.Cfg.ReplyTo != "" {
		if err := m.ReplyTo(engine.Cfg.ReplyTo); err != nil {
			return fmt.Errorf("outreach: reply-to: %w", err)
		}
	}
	m.Subject(o.Subject)
	m.SetBodyString(mail.TypeTextHTML, buildHTML(o.BodyHTML, len(o.CardImage) > 0))
	if len(o.CardImage) > 0 {
		if err := m.EmbedReader(cardCID, bytes.NewReader(o.CardImage)); err != nil {
			return fmt.Errorf("outreach: embed card: %w", err)
		}
	}

	client, err := mail.NewClient(engine.Cfg.SMTPHost,
		mail.WithPort(engine.Cfg.SMTPPort),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(engine.Cfg.SMTPUser),
		mail.WithPassword(engine.Cfg.SMTPPassword),
	)
	if err != nil {
		return fmt.Errorf("outreach: smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		engine.IncrMailErrors()
		logSendAttempt(ctx, o, "failed: "+err.Error())
		return fmt.Errorf("outreach: send: %w", err)
	}
	engine.IncrMailSends()
	logSendAttempt(ctx, o, "sent")
	return nil
}

func logSendAttempt(ctx context.Context, o Outreach, status string) {
	if err := store.AppendSend(ctx, o.ChannelName, o.To, status); err != nil {
		slog.Warn("outreach: send log append failed", slog.Any("error", err))
	}
}
