package notification

import (
	"context"

	"github.com/m04kA/LosBucaros-ReservationService/internal/integrations/mailer"
)

// Mailer интерфейс SMTP-клиента
type Mailer interface {
	Send(ctx context.Context, msg *mailer.Message) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
