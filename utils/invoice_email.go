package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// SendInvoiceEmail mails a rendered invoice to the diver. When SMTP env is
// not configured it logs a mock line and succeeds, so local setups work
// without a mail server.
func SendInvoiceEmail(recipientEmail, diverName, invoiceNumber, htmlBody string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := EnvOrDefault("SMTP_FROM_NAME", EnvOrDefault("SHOP_NAME", "Dive Buddy"))

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] invoice %s to:%s", invoiceNumber, recipientEmail)
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}
	diverName = safe(diverName)
	invoiceNumber = safe(invoiceNumber)

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	to := []string{recipientEmail}
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	subject := fmt.Sprintf("Your invoice %s", invoiceNumber)
	msg := strings.Join([]string{
		"From: " + from,
		"To: " + recipientEmail,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		htmlBody,
	}, "\r\n")

	if err := smtp.SendMail(addr, auth, smtpUser, to, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send invoice email: %w", err)
	}
	log.Printf("invoice %s emailed to %s (%s)", invoiceNumber, diverName, recipientEmail)
	return nil
}
