package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"

	"personalblog/internal/config"
)

// ErrSendFailed marks a transport failure or a non-2xx answer from the
// email API.
var ErrSendFailed = errors.New("не удалось отправить сообщение")

type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type Notifier interface {
	SendContactMessage(ctx context.Context, msg ContactMessage) error
}

type TrustifiClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

type trustifiRecipient struct {
	Email string `json:"email"`
}

type trustifiPayload struct {
	Recipients []trustifiRecipient `json:"recipients"`
	Title      string              `json:"title"`
	HTML       string              `json:"html"`
}

func NewTrustifiClient(cfg *config.Config) *TrustifiClient {
	return &TrustifiClient{
		httpClient: &http.Client{Timeout: cfg.Trustifi.Timeout},
		cfg:        cfg,
	}
}

func (c *TrustifiClient) SendContactMessage(ctx context.Context, msg ContactMessage) error {
	// form fields end up inside an html string, escape them
	body := fmt.Sprintf("Name:%s;   Phone number:%s;   Email: %s;   Message:%s",
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Phone),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Message),
	)

	payload := trustifiPayload{
		Recipients: []trustifiRecipient{{Email: c.cfg.Trustifi.Recipient}},
		Title:      "Message from the blog",
		HTML:       body,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("ошибка при сериализации письма: %w", err)
	}

	url := c.cfg.Trustifi.URL + "/api/i/v1/email"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("ошибка при создании запроса: %w", err)
	}

	req.Header.Set("x-trustifi-key", c.cfg.Trustifi.Key)
	req.Header.Set("x-trustifi-secret", c.cfg.Trustifi.Secret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: статус %d", ErrSendFailed, resp.StatusCode)
	}

	return nil
}
