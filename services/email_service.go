package services

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService ส่งเมลแจ้งเตือนผ่าน SendGrid
// ส่งไม่สำเร็จ = log อย่างเดียว ไม่ทำให้ transition หลัก fail เด็ดขาด
type EmailService struct {
	apiKey   string
	from     string
	fromName string
}

func NewEmailService(apiKey, from, fromName string) *EmailService {
	return &EmailService{apiKey: apiKey, from: from, fromName: fromName}
}

func (s *EmailService) send(to, toName, subject, body string) error {
	if s == nil || s.apiKey == "" {
		// ไม่ได้ config → dev mode แค่ log
		log.Printf("📧 [email skipped] to=%s subject=%q", to, subject)
		return nil
	}
	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d", response.StatusCode)
	}
	return nil
}

// best-effort — เรียกแล้วไม่ต้องสน error นอกจาก log
func (s *EmailService) trySend(to, toName, subject, body string) {
	if err := s.send(to, toName, subject, body); err != nil {
		log.Printf("⚠️ email to %s failed: %v", to, err)
	}
}

func (s *EmailService) SendNgoApproved(to, name string) {
	s.trySend(to, name,
		"NGO Registration Approved - DonateConnect",
		fmt.Sprintf("Congratulations %s! Your NGO has been approved. You can now log in and start accepting donations.", name))
}

func (s *EmailService) SendNgoRejected(to, name, reason string) {
	body := fmt.Sprintf("Hello %s,\n\nAfter careful review, your NGO registration has not been approved at this time.", name)
	if reason != "" {
		body += "\n\nReason: " + reason
	}
	s.trySend(to, name, "NGO Registration Application Update - DonateConnect", body)
}

func (s *EmailService) SendAdminApproved(to, name string) {
	s.trySend(to, name,
		"Admin Access Approved - DonateConnect",
		fmt.Sprintf("Congratulations %s! Your admin access request has been approved. You now have administrative privileges on DonateConnect.", name))
}

func (s *EmailService) SendAdminRejected(to, name, reason string) {
	body := fmt.Sprintf("Hello %s,\n\nYour admin access request has not been approved at this time.", name)
	if reason != "" {
		body += "\n\nReason: " + reason
	}
	s.trySend(to, name, "Admin Access Application Update - DonateConnect", body)
}

func (s *EmailService) SendDonationAccepted(to, donorName, ngoName string) {
	s.trySend(to, donorName,
		"Donation Accepted - DonateConnect",
		fmt.Sprintf("Good news %s! %s has accepted your donation. A volunteer will be assigned soon for pickup.", donorName, ngoName))
}

func (s *EmailService) SendVolunteerAssigned(to, donorName, volunteerName string) {
	s.trySend(to, donorName,
		"Volunteer Assigned - DonateConnect",
		fmt.Sprintf("%s has been assigned to pick up your donation. They will contact you shortly.", volunteerName))
}
