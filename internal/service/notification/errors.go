package notification

import "errors"

var (
	// ErrRender возвращается при ошибке сборки тела письма
	ErrRender = errors.New("notification: failed to render email")

	// ErrSend возвращается, если письмо не удалось отправить
	ErrSend = errors.New("notification: failed to send email")
)
