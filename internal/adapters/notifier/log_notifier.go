package notifier_adapter

import (
	"context"

	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// LogInquiryNotifier - запасная реализация на случай, когда SMTP-релей не
// сконфигурирован. Заявка не теряется: вся сводка уходит в лог, а контракт
// API остается прежним.
type LogInquiryNotifier struct {
	logger port.LoggerPort
}

func NewLogInquiryNotifier(logger port.LoggerPort) *LogInquiryNotifier {
	return &LogInquiryNotifier{
		logger: logger.WithFields(port.Fields{"component": "log_inquiry_notifier"}),
	}
}

func (n *LogInquiryNotifier) Notify(ctx context.Context, inquiry domain.Inquiry) error {
	n.logger.Info("SMTP relay not configured, logging inquiry instead", port.Fields{
		"inquiry_id": inquiry.ID,
		"first_name": inquiry.FirstName,
		"email":      inquiry.Email,
		"phone":      inquiry.Phone,
		"interest":   strOrEmpty(inquiry.Interest),
		"budget":     strOrEmpty(inquiry.Budget),
	})
	return nil
}

func strOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
