package notification

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/m04kA/LosBucaros-ReservationService/internal/domain"
	"github.com/m04kA/LosBucaros-ReservationService/internal/integrations/mailer"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Service отправляет письма о новой заявке: отелю и гостю
type Service struct {
	mailer        Mailer
	operatorEmail string
	logo          []byte
	log           Logger
}

// NewService создает сервис уведомлений.
// logo встраивается в письмо гостю; nil означает письмо без логотипа.
func NewService(mailer Mailer, operatorEmail string, logo []byte, log Logger) *Service {
	return &Service{
		mailer:        mailer,
		operatorEmail: operatorEmail,
		logo:          logo,
		log:           log,
	}
}

// LoadLogo читает файл логотипа. Пустой путь не считается ошибкой.
func LoadLogo(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read logo %s: %w", path, err)
	}
	return data, nil
}

// SendOperatorNotice отправляет уведомление о заявке на адрес отеля
func (s *Service) SendOperatorNotice(ctx context.Context, r *domain.Reservation) error {
	body, err := render("operator.html", newEmailData(r))
	if err != nil {
		return err
	}

	msg := &mailer.Message{
		To:       s.operatorEmail,
		Subject:  operatorSubjectPrefix + singleLine(string(r.Kind)),
		HTMLBody: body,
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.log.Error("SendOperatorNotice: failed for reservation of %s: %v", r.Identification, err)
		return fmt.Errorf("%w: operator notice: %v", ErrSend, err)
	}

	return nil
}

// SendGuestConfirmation отправляет гостю письмо о принятой заявке
func (s *Service) SendGuestConfirmation(ctx context.Context, r *domain.Reservation) error {
	data := newEmailData(r)
	data.HasLogo = len(s.logo) > 0

	body, err := render("guest.html", data)
	if err != nil {
		return err
	}

	msg := &mailer.Message{
		To:       r.Email,
		Subject:  guestSubject,
		HTMLBody: body,
	}

	if data.HasLogo {
		msg.Inline = append(msg.Inline, mailer.InlineImage{
			Name:        logoFileName,
			ContentID:   logoContentID,
			ContentType: "image/jpeg",
			Data:        s.logo,
		})
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.log.Error("SendGuestConfirmation: failed for %s: %v", r.Email, err)
		return fmt.Errorf("%w: guest confirmation: %v", ErrSend, err)
	}

	return nil
}

func render(name string, data emailData) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRender, name, err)
	}
	return buf.String(), nil
}

// singleLine убирает переводы строк, чтобы значение не ломало заголовок письма
func singleLine(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
