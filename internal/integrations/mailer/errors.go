package mailer

import "errors"

var (
	// ErrInvalidMessage возвращается, если у письма нет получателя или темы
	ErrInvalidMessage = errors.New("mailer: invalid message")

	// ErrSend возвращается при ошибке SMTP
	ErrSend = errors.New("mailer: failed to send message")
)
