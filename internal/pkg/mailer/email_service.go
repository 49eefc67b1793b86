package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendOutOfStockAlert(toEmail, productName string, quantity int) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendOutOfStockAlert(toEmail, productName string, quantity int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Product out of stock: %s", productName))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Out of Stock Alert</h2>
			<p><strong>%s</strong> is now out of stock (remaining quantity: %d).</p>
			<p>Depending on your stock visibility settings, it may no longer appear in storefront listings.</p>
		</div>
	`, productName, quantity)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send out-of-stock alert to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Out-of-stock alert sent to %s\n", toEmail)
	return nil
}
