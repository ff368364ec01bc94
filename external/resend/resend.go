package resend

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"
)

type ResendMailer struct {
	apiKey  string
	from    string
	client  *http.Client
	baseURL string
}

func NewResendMailer(from string) (*ResendMailer, error) {
	key := os.Getenv("RESEND_API_KEY")
	if key == "" {
		return nil, errors.New("RESEND_API_KEY not set")
	}

	return &ResendMailer{
		apiKey: key,
		from:   from,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: "https://api.resend.com",
	}, nil
}

type attachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type sendRequest struct {
	From        string       `json:"from"`
	To          []string     `json:"to"`
	Subject     string       `json:"subject"`
	HTML        string       `json:"html"`
	Attachments []attachment `json:"attachments,omitempty"`
}

// SendInvoiceEmail sends the invoice email with the PDF attached.
func (m *ResendMailer) SendInvoiceEmail(ctx context.Context, toEmail, subject, html string, pdf []byte, pdfName string) error {
	body := sendRequest{
		From:    m.from,
		To:      []string{toEmail},
		Subject: subject,
		HTML:    html,
	}
	if len(pdf) > 0 {
		body.Attachments = []attachment{{
			Filename: pdfName,
			Content:  base64.StdEncoding.EncodeToString(pdf),
		}}
	}

	b, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		m.baseURL+"/emails",
		bytes.NewBuffer(b),
	)

	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		return errors.New("failed to send invoice email: " + buf.String())
	}

	return nil
}
