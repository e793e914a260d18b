package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"
)

const defaultSendURL = "https://api.resend.com/emails"

// Service delivers contact notification emails through the Resend API. Every
// call is best-effort from the pipeline's point of view; errors returned here
// are logged by the caller and never surface to the visitor.
type Service struct {
	apiKey  string
	from    string
	to      string
	sendURL string
	http    *http.Client
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

func NewService(apiKey, from, to string) *Service {
	return &Service{
		apiKey:  apiKey,
		from:    from,
		to:      to,
		sendURL: defaultSendURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewServiceWithURL points the service at a non-default send endpoint.
func NewServiceWithURL(apiKey, from, to, sendURL string) *Service {
	s := NewService(apiKey, from, to)
	s.sendURL = sendURL
	return s
}

// SendContactNotification emails a summary of one inquiry to the configured
// recipient. The visitor's email and message are embedded raw in the text part
// and HTML-escaped in the HTML part.
func (s *Service) SendContactNotification(ctx context.Context, email, message string, submittedAt time.Time) error {
	when := submittedAt.UTC().Format(time.RFC3339)

	text := fmt.Sprintf("New contact form submission\n\nFrom: %s\nReceived: %s\n\n%s\n", email, when, message)

	// html.EscapeString covers &, <, >, " and ' so user text cannot inject
	// markup into the notification body.
	htmlBody := fmt.Sprintf(
		`<h2>New contact form submission</h2>`+
			`<p><strong>From:</strong> %s<br><strong>Received:</strong> %s</p>`+
			`<p style="white-space: pre-wrap;">%s</p>`,
		html.EscapeString(email), when, html.EscapeString(message))

	payload := sendRequest{
		From:    s.from,
		To:      []string{s.to},
		ReplyTo: email,
		Subject: "New contact form submission",
		HTML:    htmlBody,
		Text:    text,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.sendURL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("resend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
