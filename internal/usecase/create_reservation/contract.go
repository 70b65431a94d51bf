package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/LosBucaros-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория заявок
type ReservationRepository interface {
	FindOverlapping(ctx context.Context, filter domain.OverlapFilter) ([]*domain.Reservation, error)
	Create(ctx context.Context, reservation *domain.Reservation) error
}

// PromotionRepository интерфейс репозитория промокодов
type PromotionRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Promotion, error)
}

// Notifier отправляет письма о новой заявке
type Notifier interface {
	SendOperatorNotice(ctx context.Context, reservation *domain.Reservation) error
	SendGuestConfirmation(ctx context.Context, reservation *domain.Reservation) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder учёт исходов обработки заявок
type MetricsRecorder interface {
	ReservationOutcome(kind, outcome string)
	NotificationFailed(recipient string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
