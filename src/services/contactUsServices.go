package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"gorm.io/gorm"
)

type ContactUsService struct {
	db          *gorm.DB
	store       *utils.AttachmentStore
	notifier    utils.Notifier
	systemEmail string
}

func NewContactUsService(db *gorm.DB, store *utils.AttachmentStore, notifier utils.Notifier, systemEmail string) *ContactUsService {
	return &ContactUsService{db: db, store: store, notifier: notifier, systemEmail: systemEmail}
}

type ContactUsInput struct {
	FirstName   string
	LastName    string
	Subject     string
	Body        string
	Email       string
	PhoneNumber string
	Attachment  *multipart.FileHeader
}

// Submit records a public contact message, then notifies the support inbox
// and acknowledges the sender.
func (s *ContactUsService) Submit(in ContactUsInput) (*models.ContactUsModel, error) {
	var attachPath *string
	if in.Attachment != nil {
		rel, err := s.store.Save(in.Attachment, "contact")
		if err != nil {
			return nil, err
		}
		attachPath = &rel
	}

	message := models.ContactUsModel{
		FirstName:   optStr(in.FirstName),
		LastName:    optStr(in.LastName),
		Subject:     optStr(in.Subject),
		Body:        optStr(in.Body),
		Email:       optStr(in.Email),
		PhoneNumber: optStr(in.PhoneNumber),
		AttachPath:  attachPath,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.db.Create(&message).Error; err != nil {
		if attachPath != nil {
			s.store.Remove(*attachPath)
		}
		return nil, err
	}

	s.notifyAdmin(&message)
	if in.Email != "" {
		s.acknowledgeSender(in.Email, in.FirstName)
	}
	return &message, nil
}

func (s *ContactUsService) notifyAdmin(message *models.ContactUsModel) {
	if s.systemEmail == "" {
		return
	}
	body := fmt.Sprintf(`
	<div style="font-family:'Segoe UI',Arial,sans-serif;color:#1f2937;max-width:560px;margin:auto;">
		<h2 style="color:#2563eb;margin-bottom:8px;">New contact message</h2>
		<table style="border-collapse:collapse;width:100%%;">
			<tr><td style="padding:6px 12px;color:#6b7280;">From</td><td style="padding:6px 12px;">%s %s</td></tr>
			<tr><td style="padding:6px 12px;color:#6b7280;">Email</td><td style="padding:6px 12px;">%s</td></tr>
			<tr><td style="padding:6px 12px;color:#6b7280;">Phone</td><td style="padding:6px 12px;">%s</td></tr>
			<tr><td style="padding:6px 12px;color:#6b7280;">Subject</td><td style="padding:6px 12px;">%s</td></tr>
		</table>
		<p style="margin-top:16px;white-space:pre-wrap;">%s</p>
	</div>`,
		derefOr(message.FirstName, ""), derefOr(message.LastName, ""),
		derefOr(message.Email, "-"), derefOr(message.PhoneNumber, "-"),
		derefOr(message.Subject, "-"), derefOr(message.Body, ""))

	email := utils.Email{
		To:       s.systemEmail,
		Subject:  fmt.Sprintf("Contact Us #%d - %s", message.ID, derefOr(message.Subject, "No subject")),
		HTMLBody: body,
	}
	if message.AttachPath != nil {
		email.AttachmentPath = *message.AttachPath
	}
	s.notifier.Enqueue(email)
}

func (s *ContactUsService) acknowledgeSender(to, firstName string) {
	if firstName == "" {
		firstName = "there"
	}
	body := fmt.Sprintf(`
	<div style="font-family:'Segoe UI',Arial,sans-serif;color:#1f2937;max-width:520px;margin:auto;">
		<h2 style="color:#2563eb;margin-bottom:8px;">We received your message</h2>
		<p>Hi %s,</p>
		<p>Thanks for contacting the NGD portal. Our team will review your message and get back to you shortly.</p>
		<p style="margin-top:32px;">Best regards,<br/>NGD Team</p>
	</div>`, firstName)

	s.notifier.Enqueue(utils.Email{To: to, Subject: "We received your message - NGD", HTMLBody: body})
}

func (s *ContactUsService) List() ([]models.ContactUsModel, error) {
	var messages []models.ContactUsModel
	err := s.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

// ContactMessageView pairs a message with its reply thread.
type ContactMessageView struct {
	models.ContactUsModel
	Replies []models.ContactUsReplyModel `json:"Replies"`
}

func (s *ContactUsService) Get(id int) (*ContactMessageView, error) {
	var message models.ContactUsModel
	if err := s.db.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Contact message not found", "هذه الرسالة غير موجودة")
		}
		return nil, err
	}

	var replies []models.ContactUsReplyModel
	if err := s.db.Where("contact_id = ? AND is_deleted = ?", id, false).
		Order("created_at ASC").Find(&replies).Error; err != nil {
		return nil, err
	}
	return &ContactMessageView{ContactUsModel: message, Replies: replies}, nil
}

type ContactReplyInput struct {
	Subject    string
	Body       string
	Attachment *multipart.FileHeader
}

// Reply records an admin reply and emails it to the original sender when the
// message carries an address.
func (s *ContactUsService) Reply(contactID int, in ContactReplyInput, actorID int) (*models.ContactUsReplyModel, error) {
	var message models.ContactUsModel
	if err := s.db.First(&message, contactID).Error; err != nil {
		return nil, utils.NotFoundError("Contact message not found", "هذه الرسالة غير موجودة")
	}

	var attachPath *string
	if in.Attachment != nil {
		rel, err := s.store.Save(in.Attachment, "contact")
		if err != nil {
			return nil, err
		}
		attachPath = &rel
	}

	reply := models.ContactUsReplyModel{
		ContactID:       contactID,
		Subject:         optStr(in.Subject),
		Body:            optStr(in.Body),
		AttachmentPath:  attachPath,
		CreatedAt:       time.Now().UTC(),
		CreatedByUserID: &actorID,
	}
	if err := s.db.Create(&reply).Error; err != nil {
		if attachPath != nil {
			s.store.Remove(*attachPath)
		}
		return nil, err
	}

	if message.Email != nil && *message.Email != "" {
		body := fmt.Sprintf(`
		<div style="font-family:'Segoe UI',Arial,sans-serif;color:#1f2937;max-width:520px;margin:auto;">
			<h2 style="color:#2563eb;margin-bottom:8px;">%s</h2>
			<p style="white-space:pre-wrap;">%s</p>
			<p style="margin-top:32px;">Best regards,<br/>NGD Team</p>
		</div>`, derefOr(reply.Subject, "Reply to your message"), derefOr(reply.Body, ""))

		email := utils.Email{
			To:       *message.Email,
			Subject:  derefOr(reply.Subject, "Reply to your message - NGD"),
			HTMLBody: body,
		}
		if attachPath != nil {
			email.AttachmentPath = *attachPath
		}
		s.notifier.Enqueue(email)
	}
	return &reply, nil
}
