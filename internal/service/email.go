package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendLeadClaimedNotification(ctx context.Context, customerEmail, customerName, carName, partnerName string) error {
	subject := fmt.Sprintf("Your booking for %s is confirmed", carName)
	body := fmt.Sprintf("Hello %s,\n\n%s has confirmed your rental request for %s. They will contact you to arrange pickup.\n\nBest regards,\nThe CarLink Team", customerName, partnerName, carName)
	return s.send(customerEmail, customerName, subject, body)
}

func (s *emailService) SendLeadCompletedNotification(ctx context.Context, customerEmail, customerName, carName string, totalCents int32) error {
	subject := fmt.Sprintf("Rental of %s completed", carName)
	body := fmt.Sprintf("Hello %s,\n\nYour rental of %s is complete. Total charged: %.2f.\n\nThank you for riding with us,\nThe CarLink Team", customerName, carName, float64(totalCents)/100)
	return s.send(customerEmail, customerName, subject, body)
}

func (s *emailService) SendHoldLapsedNotification(ctx context.Context, partnerEmail, bookingNumber, carName string) error {
	subject := fmt.Sprintf("Unclaimed lead %s has lapsed", bookingNumber)
	body := fmt.Sprintf("The reservation hold for lead %s (%s) has expired unclaimed. The car is visible to other customers again; claim or cancel the lead to stop these reminders.\n\nThe CarLink Team", bookingNumber, carName)
	return s.send(partnerEmail, "", subject, body)
}

func (s *emailService) SendPasswordResetEmail(ctx context.Context, email, name, token string) error {
	subject := "Reset your CarLink password"
	body := fmt.Sprintf("Hello %s,\n\nUse the following token to reset your password:\n\n%s\n\nIf you did not request this, ignore this email.\n\nThe CarLink Team", name, token)
	return s.send(email, name, subject, body)
}
