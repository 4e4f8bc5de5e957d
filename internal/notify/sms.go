package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// SMSNotifier posts messages to an HTTP SMS gateway:
//
//	POST <url>  {"sender": "...", "receptor": "...", "message": "..."}
//	Authorization: Bearer <apiKey>
type SMSNotifier struct {
	url    string
	apiKey string
	sender string
	client *http.Client
}

func NewSMSNotifier(url, apiKey, sender string) *SMSNotifier {
	return &SMSNotifier{
		url:    url,
		apiKey: apiKey,
		sender: sender,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type smsRequest struct {
	Sender   string `json:"sender,omitempty"`
	Receptor string `json:"receptor"`
	Message  string `json:"message"`
}

func (n *SMSNotifier) Notify(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return fmt.Errorf("sms: empty receptor")
	}

	body, err := json.Marshal(smsRequest{
		Sender:   n.sender,
		Receptor: msg.To,
		Message:  msg.Text,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if n.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+n.apiKey)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sms: gateway returned %d", resp.StatusCode)
	}
	return nil
}
