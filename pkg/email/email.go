// Package email, uygulama genelinde email gönderimi için soyutlama katmanı sağlar.
//
// EmailSender interface'i ile gönderim detayları soyutlanır (Dependency Inversion).
// Şu anki implementasyon Resend API kullanır; farklı bir sağlayıcıya geçmek için
// yeni bir implementasyon yazıp wire-up'ta değiştirmek yeterli.
package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"
)

// EmailSender, email gönderimi için interface.
// Service katmanı bu interface'e bağımlıdır, concrete Resend implementasyonuna değil.
type EmailSender interface {
	// SendWelcome, yeni kayıt olan kullanıcıya hoş geldin emaili gönderir.
	SendWelcome(ctx context.Context, toEmail, username string) error
}

// resendSender, Resend API ile email gönderen EmailSender implementasyonu.
type resendSender struct {
	client    *resend.Client
	fromEmail string // Gönderici adresi — Resend'de doğrulanmış domain altında olmalı
	appURL    string // Uygulamanın public URL'i
}

// NewResendSender, Resend API client'ı ile yeni bir EmailSender oluşturur.
func NewResendSender(apiKey, fromEmail, appURL string) EmailSender {
	return &resendSender{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		appURL:    appURL,
	}
}

// SendWelcome, hoş geldin emaili gönderir.
// Kayıt akışını bloklamamak için caller bu çağrıyı best-effort yapar —
// email gidemese bile kayıt başarılıdır.
func (s *resendSender) SendWelcome(ctx context.Context, toEmail, username string) error {
	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin:0;padding:0;background-color:#f4f5f7;font-family:Arial,Helvetica,sans-serif;">
  <table width="100%%" cellpadding="0" cellspacing="0" style="background-color:#f4f5f7;padding:40px 0;">
    <tr>
      <td align="center">
        <table width="480" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;padding:40px;">
          <tr>
            <td>
              <h1 style="color:#1e293b;font-size:24px;margin:0 0 8px 0;">Perk Manager</h1>
              <h2 style="color:#1e293b;font-size:18px;margin:0 0 24px 0;">Welcome, %s!</h2>
              <p style="color:#475569;font-size:15px;line-height:1.6;margin:0 0 24px 0;">
                Your account is ready. Pick the memberships you hold and start
                discovering and voting on perks.
              </p>
              <table cellpadding="0" cellspacing="0" style="margin:0 0 24px 0;">
                <tr>
                  <td style="background-color:#2563eb;border-radius:6px;padding:12px 32px;">
                    <a href="%s" style="color:#ffffff;text-decoration:none;font-size:15px;font-weight:600;">
                      Open Perk Manager
                    </a>
                  </td>
                </tr>
              </table>
              <p style="color:#94a3b8;font-size:13px;line-height:1.6;margin:0;">
                If you didn't create this account, you can safely ignore this email.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`, username, s.appURL)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Perk Manager <%s>", s.fromEmail),
		To:      []string{toEmail},
		Subject: "Welcome to Perk Manager",
		Html:    html,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	return nil
}
