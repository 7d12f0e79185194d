package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"os"
	"path/filepath"

	"github.com/okothpaul/shopkart-api/models"
)

type OrderLine struct {
	ProductName string
	Quantity    int
	TotalPrice  string
}

type EmailData struct {
	Name    string
	Message string
	Lines   []OrderLine
}

func sendEmail(emailTo string, emailSubject string, data EmailData, templatePath string) error {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return fmt.Errorf("template parse error: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	message := fmt.Sprintf(
		"From: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		os.Getenv("FROM_EMAIL"),
		emailSubject,
		body.String(),
	)

	auth := smtp.PlainAuth(
		"",
		os.Getenv("FROM_EMAIL"),
		os.Getenv("FROM_EMAIL_PASSWORD"),
		os.Getenv("FROM_EMAIL_SMTP"),
	)

	if err := smtp.SendMail(os.Getenv("SMTP_ADDRESS"), auth, os.Getenv("FROM_EMAIL"), []string{emailTo}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// SendWelcomeEmail greets a freshly registered user.
func SendWelcomeEmail(user *models.User) error {
	emailData := EmailData{
		Name:    user.Username,
		Message: "Thank you for signing up with ShopKart! Happy shopping.",
	}

	templatePath := filepath.Join("templates", "welcome_email.html")
	return sendEmail(user.Email, "Welcome to ShopKart", emailData, templatePath)
}

// SendOrderConfirmationEmail summarises a completed checkout.
func SendOrderConfirmationEmail(user *models.User, orders []models.Order) error {
	lines := make([]OrderLine, 0, len(orders))
	for _, order := range orders {
		lines = append(lines, OrderLine{
			ProductName: order.Product.Name,
			Quantity:    order.Quantity,
			TotalPrice:  order.TotalPrice.StringFixed(2),
		})
	}

	emailData := EmailData{
		Name:    user.Username,
		Message: "Your order has been confirmed. Thank you for shopping with us!",
		Lines:   lines,
	}

	templatePath := filepath.Join("templates", "order_confirmation.html")
	return sendEmail(user.Email, "ShopKart Order Confirmation", emailData, templatePath)
}
