package port

import (
	"context"

	"catalog-service/internal/core/domain"
)

// InquiryNotifierPort - контракт для адаптера исходящих уведомлений о новых
// заявках. Семантика best-effort: вызывающая сторона логирует ошибку и
// никогда не транслирует её клиенту API.
type InquiryNotifierPort interface {
	Notify(ctx context.Context, inquiry domain.Inquiry) error
}
