package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/LosBucaros-ReservationService/internal/domain"
	promotionRepo "github.com/m04kA/LosBucaros-ReservationService/internal/infra/storage/promotion"
)

// UseCase use case приёма заявки на бронирование
type UseCase struct {
	reservationRepo ReservationRepository
	promotionRepo   PromotionRepository
	notifier        Notifier
	txManager       TransactionManager
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// location часовой пояс отеля, в котором определяется текущая дата для промокодов.
func NewUseCase(
	reservationRepo ReservationRepository,
	promotionRepo PromotionRepository,
	notifier Notifier,
	txManager TransactionManager,
	metrics MetricsRecorder,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		promotionRepo:   promotionRepo,
		notifier:        notifier,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		location:        location,
		logger:          logger,
	}
}

// Execute валидирует заявку, проверяет занятость номера, применяет промокод,
// сохраняет заявку и отправляет два письма: отелю и гостю.
// Проверка, промокод и запись выполняются в одной транзакции, письма после коммита.
// Если письмо не ушло, сохранённая заявка остаётся в базе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	normalize(req)
	kind := metricKind(req.Kind)

	uc.logger.Info("CreateReservation: kind=%s, identification=%s, room=%v, check-in=%s, check-out=%s",
		req.Kind, req.Identification, valueOrEmpty(req.Room), req.CheckIn, req.CheckOut)

	// 1. Валидация входных данных
	reservation, err := uc.buildReservation(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		uc.metrics.ReservationOutcome(kind, domain.OutcomeValidationFailed)
		return nil, err
	}

	today := uc.timeProvider.Now().In(uc.location)
	promotionApplied := false

	// 2. Проверка занятости, промокод и запись в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Занятость номера (только для заявок на номер)
		if reservation.IsRoom() {
			if err := uc.checkAvailability(txCtx, reservation); err != nil {
				return err
			}
		}

		// 2.2. Промокод
		if reservation.PromotionCode != nil {
			applied, err := uc.applyPromotion(txCtx, reservation, today)
			if err != nil {
				return err
			}
			promotionApplied = applied
		}

		// 2.3. Сохраняем заявку
		if err := uc.reservationRepo.Create(txCtx, reservation); err != nil {
			uc.logger.Error("CreateReservation: failed to store reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrStore, err)
		}

		return nil
	})

	if err != nil {
		uc.metrics.ReservationOutcome(kind, outcomeFor(err))
		if !isClassified(err) {
			uc.logger.Error("CreateReservation: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStore, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateReservation: stored reservation for identification=%s, price=%s",
		reservation.Identification, reservation.Price.String())

	// 3. Уведомления: сначала отелю, затем гостю
	if err := uc.notifier.SendOperatorNotice(ctx, reservation); err != nil {
		uc.logger.Error("CreateReservation: operator notice failed, reservation is kept: %v", err)
		uc.metrics.NotificationFailed("operator")
		uc.metrics.ReservationOutcome(kind, domain.OutcomeNotificationFailed)
		return nil, fmt.Errorf("%w: operator: %v", ErrNotification, err)
	}

	if err := uc.notifier.SendGuestConfirmation(ctx, reservation); err != nil {
		uc.logger.Error("CreateReservation: guest confirmation to %s failed, reservation is kept: %v", reservation.Email, err)
		uc.metrics.NotificationFailed("guest")
		uc.metrics.ReservationOutcome(kind, domain.OutcomeNotificationFailed)
		return nil, fmt.Errorf("%w: guest: %v", ErrNotification, err)
	}

	uc.metrics.ReservationOutcome(kind, domain.OutcomeCreated)
	uc.logger.Info("CreateReservation: reservation for identification=%s completed", reservation.Identification)

	return &Response{
		FinalPrice:       reservation.Price,
		PromotionApplied: promotionApplied,
	}, nil
}

// buildReservation валидирует запрос и собирает доменную заявку
func (uc *UseCase) buildReservation(req *Request) (*domain.Reservation, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		return nil, err
	}

	reservation := &domain.Reservation{
		Identification: req.Identification,
		CustomerName:   req.CustomerName,
		Email:          req.Email,
		Phone:          req.Phone,
		Kind:           domain.ReservationKind(req.Kind),
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Adults:         req.Adults,
		Children:       req.Children,
		Couples:        req.Couples,
		Price:          req.Price,
		PromotionCode:  req.PromotionCode,
		SpaPlan:        req.SpaPlan,
		SpaPersons:     req.SpaPersons,
		PicnicPlan:     req.PicnicPlan,
	}

	// Номер сохраняется только для заявки на номер
	if reservation.IsRoom() {
		if err := validateStay(req.Room, checkIn, checkOut); err != nil {
			return nil, err
		}
		reservation.Room = req.Room
	}

	return reservation, nil
}

func (uc *UseCase) checkAvailability(ctx context.Context, reservation *domain.Reservation) error {
	filter := domain.OverlapFilter{
		Room:     *reservation.Room,
		CheckIn:  *reservation.CheckIn,
		CheckOut: *reservation.CheckOut,
	}

	existing, err := uc.reservationRepo.FindOverlapping(ctx, filter)
	if err != nil {
		uc.logger.Error("CreateReservation: availability query failed: %v", err)
		return fmt.Errorf("%w: failed to check availability: %v", ErrStore, err)
	}

	if n := countOverlapping(existing, filter.CheckIn, filter.CheckOut); n > 0 {
		uc.logger.Warn("CreateReservation: room %s is taken for %s - %s (%d overlapping)",
			filter.Room, filter.CheckIn.Format(domain.DateFormat), filter.CheckOut.Format(domain.DateFormat), n)
		return ErrRoomNotAvailable
	}

	return nil
}

// applyPromotion применяет скидку, если промокод действует сегодня.
// Просроченный или будущий промокод не является ошибкой.
func (uc *UseCase) applyPromotion(ctx context.Context, reservation *domain.Reservation, today time.Time) (bool, error) {
	code := *reservation.PromotionCode

	promo, err := uc.promotionRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			uc.logger.Warn("CreateReservation: promotion code %q not found", code)
			return false, ErrInvalidPromotion
		}
		uc.logger.Error("CreateReservation: promotion query failed: %v", err)
		return false, fmt.Errorf("%w: failed to get promotion: %v", ErrStore, err)
	}

	if !promo.IsActiveOn(today) {
		uc.logger.Info("CreateReservation: promotion %q is not active on %s, price unchanged",
			code, today.Format(domain.DateFormat))
		return false, nil
	}

	original := reservation.Price
	reservation.Price = promo.Apply(original)

	uc.logger.Info("CreateReservation: promotion %q applied (%s%%): %s -> %s",
		code, promo.Discount.String(), original.String(), reservation.Price.String())

	return true, nil
}

// normalize обрезает пробелы в текстовых полях; пустые необязательные поля становятся nil
func normalize(req *Request) {
	req.Identification = strings.TrimSpace(req.Identification)
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.Email = strings.TrimSpace(req.Email)
	req.Kind = strings.TrimSpace(req.Kind)
	req.Phone = trimPtr(req.Phone)
	req.Room = trimPtr(req.Room)
	req.PromotionCode = trimPtr(req.PromotionCode)
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func isClassified(err error) bool {
	return errors.Is(err, ErrRoomNotAvailable) ||
		errors.Is(err, ErrInvalidPromotion) ||
		errors.Is(err, ErrStore)
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, ErrRoomNotAvailable):
		return domain.OutcomeNotAvailable
	case errors.Is(err, ErrInvalidPromotion):
		return domain.OutcomeInvalidPromotion
	default:
		return domain.OutcomeStoreFailed
	}
}
