package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	intconfig "boletera/backend/internal/config"
)

const emailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSNotifier sends through the EmailJS REST API.
type EmailJSNotifier struct {
	ServiceID      string
	PublicKey      string
	TemplateCompra string
	TemplateCancel string
	Endpoint       string
	Client         *http.Client
}

// NewEmailJSNotifier wires the notifier from env; returns a LogNotifier
// when the EmailJS credentials are not configured so the admission and
// cancellation flows keep working without outbound mail.
func NewEmailJSNotifier(env intconfig.Env) Notifier {
	if env.EmailJSServiceID == "" || env.EmailJSPublicKey == "" {
		return LogNotifier{}
	}
	return &EmailJSNotifier{
		ServiceID:      env.EmailJSServiceID,
		PublicKey:      env.EmailJSPublicKey,
		TemplateCompra: env.EmailJSTemplateCompra,
		TemplateCancel: env.EmailJSTemplateCancel,
		Endpoint:       emailJSEndpoint,
		Client:         &http.Client{Timeout: 10 * time.Second},
	}
}

type emailJSPayload struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func (n *EmailJSNotifier) templateID(name string) string {
	switch name {
	case TemplateCancel:
		return n.TemplateCancel
	default:
		return n.TemplateCompra
	}
}

func (n *EmailJSNotifier) Send(ctx context.Context, msg Message) error {
	params := map[string]string{
		"to_email": msg.ToEmail,
		"to_name":  msg.ToName,
	}
	for k, v := range msg.Fields {
		params[k] = v
	}

	body, err := json.Marshal(emailJSPayload{
		ServiceID:      n.ServiceID,
		TemplateID:     n.templateID(msg.Template),
		UserID:         n.PublicKey,
		TemplateParams: params,
	})
	if err != nil {
		return err
	}

	endpoint := n.Endpoint
	if endpoint == "" {
		endpoint = emailJSEndpoint
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	client := n.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("emailjs respondió %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}
