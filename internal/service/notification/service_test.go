package notification

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LosBucaros-ReservationService/internal/domain"
	"github.com/m04kA/LosBucaros-ReservationService/internal/integrations/mailer"
	"github.com/m04kA/LosBucaros-ReservationService/pkg/logger"
)

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, msg *mailer.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func ptrTo[T any](v T) *T {
	return &v
}

func roomReservation() *domain.Reservation {
	checkIn := time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)

	return &domain.Reservation{
		Identification: "1098765432",
		CustomerName:   "Laura <b>Gómez</b>",
		Email:          "laura@example.com",
		Phone:          ptrTo("3001234567"),
		Kind:           domain.KindRoom,
		CheckIn:        &checkIn,
		CheckOut:       &checkOut,
		Adults:         2,
		Couples:        1,
		Room:           ptrTo(domain.RoomJacuzziSuite),
		Price:          decimal.NewFromInt(495000),
		PromotionCode:  ptrTo("VERANO10"),
		SpaPlan:        ptrTo(int64(60000)),
		SpaPersons:     2,
	}
}

func TestService_SendOperatorNotice(t *testing.T) {
	m := &mockMailer{}
	var sent *mailer.Message
	m.On("Send", mock.Anything, mock.AnythingOfType("*mailer.Message")).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*mailer.Message) }).
		Return(nil).Once()

	svc := NewService(m, "reservas@losbucaros.com", nil, logger.NewNop())
	require.NoError(t, svc.SendOperatorNotice(context.Background(), roomReservation()))

	require.NotNil(t, sent)
	assert.Equal(t, "reservas@losbucaros.com", sent.To)
	assert.Equal(t, "📩 Nueva Reserva - habitacion", sent.Subject)
	assert.Empty(t, sent.Inline)
	assert.Contains(t, sent.HTMLBody, "Suite con Jacuzzi")
	assert.Contains(t, sent.HTMLBody, "Masaje de espalda (2 persona(s))")
	assert.Contains(t, sent.HTMLBody, "2024-06-09")
	assert.Contains(t, sent.HTMLBody, "VERANO10")
	assert.Contains(t, sent.HTMLBody, "Laura &lt;b&gt;Gómez&lt;/b&gt;")
	m.AssertExpectations(t)
}

func TestService_SendOperatorNotice_ServiceKind(t *testing.T) {
	m := &mockMailer{}
	var sent *mailer.Message
	m.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*mailer.Message) }).
		Return(nil).Once()

	r := &domain.Reservation{
		Identification: "52123456",
		CustomerName:   "Carlos",
		Email:          "carlos@example.com",
		Kind:           "picnic",
		Price:          decimal.NewFromInt(190000),
		PicnicPlan:     190000,
	}

	svc := NewService(m, "reservas@losbucaros.com", nil, logger.NewNop())
	require.NoError(t, svc.SendOperatorNotice(context.Background(), r))

	assert.Equal(t, "📩 Nueva Reserva - picnic", sent.Subject)
	assert.Contains(t, sent.HTMLBody, "Picnic para 3 a 5 personas")
	assert.Contains(t, sent.HTMLBody, "<b>Habitación / Producto:</b> N/A")
	assert.Contains(t, sent.HTMLBody, "<b>Código Promoción:</b> Ninguno")
}

func TestService_SendGuestConfirmation_WithLogo(t *testing.T) {
	m := &mockMailer{}
	var sent *mailer.Message
	m.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*mailer.Message) }).
		Return(nil).Once()

	logo := []byte{0xff, 0xd8, 0xff, 0xe0}
	svc := NewService(m, "reservas@losbucaros.com", logo, logger.NewNop())
	require.NoError(t, svc.SendGuestConfirmation(context.Background(), roomReservation()))

	assert.Equal(t, "laura@example.com", sent.To)
	assert.Equal(t, "✅ Solicitud de tu Reserva - Hotel Los Bucaros", sent.Subject)
	assert.Contains(t, sent.HTMLBody, `src="cid:logoBucaros"`)
	require.Len(t, sent.Inline, 1)
	assert.Equal(t, "logoBucaros", sent.Inline[0].ContentID)
	assert.Equal(t, logo, sent.Inline[0].Data)
}

func TestService_SendGuestConfirmation_WithoutLogo(t *testing.T) {
	m := &mockMailer{}
	var sent *mailer.Message
	m.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*mailer.Message) }).
		Return(nil).Once()

	svc := NewService(m, "reservas@losbucaros.com", nil, logger.NewNop())
	require.NoError(t, svc.SendGuestConfirmation(context.Background(), roomReservation()))

	assert.Empty(t, sent.Inline)
	assert.NotContains(t, sent.HTMLBody, "cid:logoBucaros")
}

func TestService_SendErrors(t *testing.T) {
	m := &mockMailer{}
	m.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	svc := NewService(m, "reservas@losbucaros.com", nil, logger.NewNop())

	assert.ErrorIs(t, svc.SendOperatorNotice(context.Background(), roomReservation()), ErrSend)
	assert.ErrorIs(t, svc.SendGuestConfirmation(context.Background(), roomReservation()), ErrSend)
}

func TestLoadLogo(t *testing.T) {
	data, err := LoadLogo("")
	require.NoError(t, err)
	assert.Nil(t, data)

	path := filepath.Join(t.TempDir(), "logo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpeg"), 0o644))

	data, err = LoadLogo(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg"), data)

	_, err = LoadLogo(filepath.Join(t.TempDir(), "missing.jpg"))
	assert.Error(t, err)
}

func TestFormatPrice(t *testing.T) {
	formatted := FormatPrice(decimal.NewFromInt(477000))
	assert.Contains(t, formatted, "477")
	assert.NotEqual(t, "477000", formatted)
}
