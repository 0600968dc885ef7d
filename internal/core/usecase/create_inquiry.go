package usecase

import (
	"context"
	"fmt"
	"time"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// Таймаут на доставку уведомления. Отправка идет в отдельной горутине и
// не привязана к контексту запроса: ответ клиенту уже ушел.
const notifyTimeout = 15 * time.Second

// CreateInquiryUseCase сохраняет заявку с формы и запускает best-effort
// уведомление. Семантика уведомления - at-most-once: ошибка доставки
// логируется и никогда не влияет на результат основной операции,
// повторных попыток нет.
type CreateInquiryUseCase struct {
	repo     port.CatalogRepositoryPort
	notifier port.InquiryNotifierPort
}

func NewCreateInquiryUseCase(repo port.CatalogRepositoryPort, notifier port.InquiryNotifierPort) *CreateInquiryUseCase {
	return &CreateInquiryUseCase{
		repo:     repo,
		notifier: notifier,
	}
}

func (uc *CreateInquiryUseCase) Execute(ctx context.Context, input domain.NewInquiry) (*domain.Inquiry, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateInquiry",
		"email":    input.Email,
	})

	ucLogger.Info("Use case started: creating inquiry", nil)

	inquiry, err := uc.repo.CreateInquiry(ctx, input)
	if err != nil {
		ucLogger.Error("Repository returned an error during create", err, nil)
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	ucLogger.Info("Use case finished: inquiry created", port.Fields{"inquiry_id": inquiry.ID})

	// Уведомление отправляем в фоне с собственным контекстом: контекст
	// запроса отменится сразу после ответа клиенту.
	go uc.dispatchNotification(*inquiry, ucLogger)

	return inquiry, nil
}

// dispatchNotification доставляет уведомление о заявке. Любая ошибка
// оседает в структурированном логе и дальше не распространяется.
func (uc *CreateInquiryUseCase) dispatchNotification(inquiry domain.Inquiry, logger port.LoggerPort) {
	notifyCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	notifyLogger := logger.WithFields(port.Fields{
		"component":  "inquiry_notification",
		"inquiry_id": inquiry.ID,
	})

	if err := uc.notifier.Notify(notifyCtx, inquiry); err != nil {
		notifyLogger.Error("Best-effort inquiry notification failed", err, port.Fields{
			"email": inquiry.Email,
			"phone": inquiry.Phone,
		})
		return
	}

	notifyLogger.Info("Inquiry notification dispatched", nil)
}
