package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	memory_adapter "catalog-service/internal/adapters/memory"
	"catalog-service/internal/core/domain"
)

// recordingNotifier фиксирует вызовы и отдает заготовленную ошибку.
type recordingNotifier struct {
	mu     sync.Mutex
	calls  int
	err    error
	called chan struct{}
}

func newRecordingNotifier(err error) *recordingNotifier {
	return &recordingNotifier{err: err, called: make(chan struct{}, 1)}
}

func (n *recordingNotifier) Notify(ctx context.Context, inquiry domain.Inquiry) error {
	n.mu.Lock()
	n.calls++
	n.mu.Unlock()
	select {
	case n.called <- struct{}{}:
	default:
	}
	return n.err
}

func (n *recordingNotifier) waitForCall(t *testing.T) {
	t.Helper()
	select {
	case <-n.called:
	case <-time.After(2 * time.Second):
		t.Fatalf("notifier was not called")
	}
}

func TestCreateInquiryDispatchesNotification(t *testing.T) {
	repo := memory_adapter.NewMemoryCatalogRepository()
	notifier := newRecordingNotifier(nil)
	uc := NewCreateInquiryUseCase(repo, notifier)

	inquiry, err := uc.Execute(context.Background(), domain.NewInquiry{
		FirstName: "Ada",
		Email:     "ada@example.com",
		Phone:     "+2348012345678",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if inquiry.ID == "" {
		t.Fatalf("inquiry must get an id")
	}

	notifier.waitForCall(t)
}

// Ошибка доставки уведомления не должна просачиваться в результат:
// заявка считается принятой, как только она сохранена.
func TestCreateInquiryNotificationFailureIsSwallowed(t *testing.T) {
	repo := memory_adapter.NewMemoryCatalogRepository()
	notifier := newRecordingNotifier(errors.New("smtp relay unreachable"))
	uc := NewCreateInquiryUseCase(repo, notifier)

	inquiry, err := uc.Execute(context.Background(), domain.NewInquiry{
		FirstName: "Ada",
		Email:     "ada@example.com",
		Phone:     "+2348012345678",
	})
	if err != nil {
		t.Fatalf("Execute must succeed despite notifier failure, got %v", err)
	}

	notifier.waitForCall(t)

	stored, err := repo.ListInquiries(context.Background())
	if err != nil {
		t.Fatalf("ListInquiries: %v", err)
	}
	if len(stored) != 1 || stored[0].ID != inquiry.ID {
		t.Fatalf("inquiry must be stored regardless of notification outcome")
	}
}
