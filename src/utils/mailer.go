package utils

import (
	"path/filepath"

	log "github.com/sirupsen/logrus"
	gomail "gopkg.in/gomail.v2"
)

// Email is one outbound message. AttachmentPath, when set, is a path relative
// to the attachment store root.
type Email struct {
	To             string
	Subject        string
	HTMLBody       string
	AttachmentPath string
}

// Notifier is what the services see: fire-and-forget delivery, queued only
// after the triggering transaction commits.
type Notifier interface {
	Enqueue(msg Email)
}

// Mailer drains a buffered queue on a single worker goroutine and dispatches
// over SMTP. Send failures are logged and swallowed; they never roll back
// already-committed state.
type Mailer struct {
	dialer     *gomail.Dialer
	from       string
	uploadRoot string
	queue      chan Email
	done       chan struct{}
}

func NewMailer(host string, port int, user, password, from, uploadRoot string) *Mailer {
	m := &Mailer{
		dialer:     gomail.NewDialer(host, port, user, password),
		from:       from,
		uploadRoot: uploadRoot,
		queue:      make(chan Email, 256),
		done:       make(chan struct{}),
	}
	go m.worker()
	return m
}

// Enqueue never blocks the request cycle: when the queue is full the message
// is dropped and logged, matching the best-effort contract.
func (m *Mailer) Enqueue(msg Email) {
	select {
	case m.queue <- msg:
	default:
		log.WithFields(log.Fields{"to": msg.To, "subject": msg.Subject}).
			Warn("Mail queue full, dropping notification")
	}
}

// Close stops the worker after the queue drains.
func (m *Mailer) Close() {
	close(m.queue)
	<-m.done
}

func (m *Mailer) worker() {
	defer close(m.done)
	for msg := range m.queue {
		if msg.To == "" {
			continue
		}
		gm := gomail.NewMessage()
		gm.SetHeader("From", m.from)
		gm.SetHeader("To", msg.To)
		gm.SetHeader("Subject", msg.Subject)
		gm.SetBody("text/html", msg.HTMLBody)
		if msg.AttachmentPath != "" {
			gm.Attach(filepath.Join(m.uploadRoot, filepath.FromSlash(msg.AttachmentPath)))
		}
		if err := m.dialer.DialAndSend(gm); err != nil {
			log.WithError(err).WithFields(log.Fields{"to": msg.To, "subject": msg.Subject}).
				Error("Failed to send notification email")
		}
	}
}
