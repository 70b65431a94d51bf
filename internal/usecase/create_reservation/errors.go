package create_reservation

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation общая ошибка некорректной заявки, все ошибки валидации оборачивают её
	ErrValidation = errors.New("create_reservation: validation failed")

	// ErrMissingRequiredFields не заполнены identificacion, nombre, email или tipoReserva
	ErrMissingRequiredFields = fmt.Errorf("%w: missing required fields", ErrValidation)

	// ErrInvalidDate дата не в формате YYYY-MM-DD
	ErrInvalidDate = fmt.Errorf("%w: invalid date", ErrValidation)

	// ErrInvalidStayPeriod дата выезда не позже даты заезда
	ErrInvalidStayPeriod = fmt.Errorf("%w: check-out must be after check-in", ErrValidation)

	// ErrMissingRoom для заявки на номер не указан номер или даты
	ErrMissingRoom = fmt.Errorf("%w: room reservation requires room and dates", ErrValidation)

	// ErrInvalidPrice отрицательная цена
	ErrInvalidPrice = fmt.Errorf("%w: price must be non-negative", ErrValidation)

	// ErrRoomNotAvailable номер занят на выбранные даты
	ErrRoomNotAvailable = errors.New("create_reservation: room is not available for these dates")

	// ErrInvalidPromotion промокод не найден
	ErrInvalidPromotion = errors.New("create_reservation: invalid promotion code")

	// ErrStore ошибка чтения или записи в хранилище
	ErrStore = errors.New("create_reservation: store error")

	// ErrNotification заявка сохранена, но письмо не отправлено
	ErrNotification = errors.New("create_reservation: notification failed")
)
