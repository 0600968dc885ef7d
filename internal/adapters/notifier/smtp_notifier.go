package notifier_adapter

import (
	"context"
	"fmt"
	"strings"

	"catalog-service/internal/core/domain"

	"github.com/wneessen/go-mail"
)

// SMTPConfig - настройки исходящего почтового релея.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Secure   bool // true - implicit TLS (465), false - STARTTLS
	From     string
	To       string
}

// SMTPInquiryNotifier отправляет письмо о новой заявке через SMTP-релей.
// Каждая отправка открывает отдельное соединение: заявок мало, держать
// постоянное соединение с релеем незачем.
type SMTPInquiryNotifier struct {
	cfg SMTPConfig
}

func NewSMTPInquiryNotifier(cfg SMTPConfig) (*SMTPInquiryNotifier, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if cfg.From == "" || cfg.To == "" {
		return nil, fmt.Errorf("smtp from/to addresses are required")
	}
	return &SMTPInquiryNotifier{cfg: cfg}, nil
}

func (n *SMTPInquiryNotifier) Notify(ctx context.Context, inquiry domain.Inquiry) error {
	msg := mail.NewMsg()
	if err := msg.From(n.cfg.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(n.cfg.To); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}

	subject := "General Inquiry"
	if inquiry.Interest != nil && *inquiry.Interest != "" {
		subject = *inquiry.Interest
	}
	msg.Subject("New Form Submission: " + subject)
	msg.SetBodyString(mail.TypeTextPlain, renderInquiryBody(inquiry))

	opts := []mail.Option{
		mail.WithPort(n.cfg.Port),
	}
	if n.cfg.Secure {
		opts = append(opts, mail.WithSSLPort(false))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if n.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.cfg.Username),
			mail.WithPassword(n.cfg.Password),
		)
	}

	client, err := mail.NewClient(n.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send inquiry notification: %w", err)
	}
	return nil
}

// renderInquiryBody собирает текстовую сводку заявки для письма.
func renderInquiryBody(inquiry domain.Inquiry) string {
	var b strings.Builder

	name := inquiry.FirstName
	if inquiry.LastName != nil && *inquiry.LastName != "" {
		name += " " + *inquiry.LastName
	}

	fmt.Fprintf(&b, "New form submission received.\n\n")
	fmt.Fprintf(&b, "Name: %s\n", name)
	fmt.Fprintf(&b, "Email: %s\n", inquiry.Email)
	fmt.Fprintf(&b, "Phone: %s\n", inquiry.Phone)
	if inquiry.Interest != nil && *inquiry.Interest != "" {
		fmt.Fprintf(&b, "Interest: %s\n", *inquiry.Interest)
	}
	if inquiry.Budget != nil && *inquiry.Budget != "" {
		fmt.Fprintf(&b, "Budget: %s\n", *inquiry.Budget)
	}
	if inquiry.PropertyID != nil && *inquiry.PropertyID != "" {
		fmt.Fprintf(&b, "Property: %s\n", *inquiry.PropertyID)
	}

	b.WriteString("\nMessage:\n")
	if inquiry.Message != nil && *inquiry.Message != "" {
		b.WriteString(*inquiry.Message)
	} else {
		b.WriteString("No message provided")
	}
	b.WriteString("\n\nSubmitted at: " + inquiry.CreatedAt.Format("2006-01-02 15:04:05 MST") + "\n")

	return b.String()
}
