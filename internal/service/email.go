package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *emailService) SendRegistrationDecision(ctx context.Context, email, name, eventTitle string, approved bool, code string) error {
	if approved {
		body := fmt.Sprintf("Hello %s,\n\nYour registration for \"%s\" has been approved.\n\nYour check-in code is: %s\n\nShow this code at the entrance.\n\nBest regards,\nThe LightEvent Team", name, eventTitle, code)
		return s.send(email, fmt.Sprintf("Registration approved - %s", eventTitle), body)
	}
	body := fmt.Sprintf("Hello %s,\n\nUnfortunately your registration for \"%s\" was not approved.\n\nBest regards,\nThe LightEvent Team", name, eventTitle)
	return s.send(email, fmt.Sprintf("Registration update - %s", eventTitle), body)
}

func (s *emailService) SendEventCancelled(ctx context.Context, email, name, eventTitle, reason string) error {
	body := fmt.Sprintf("Hello %s,\n\nThe event \"%s\" has been cancelled.", name, eventTitle)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nBest regards,\nThe LightEvent Team"
	return s.send(email, fmt.Sprintf("Event cancelled - %s", eventTitle), body)
}

func (s *emailService) SendOrganizerDecision(ctx context.Context, email, name string, approved bool) error {
	if approved {
		body := fmt.Sprintf("Hello %s,\n\nYour organizer application has been approved. You can now create and manage events.\n\nBest regards,\nThe LightEvent Team", name)
		return s.send(email, "Organizer application approved", body)
	}
	body := fmt.Sprintf("Hello %s,\n\nYour organizer application was not approved this time.\n\nBest regards,\nThe LightEvent Team", name)
	return s.send(email, "Organizer application update", body)
}
