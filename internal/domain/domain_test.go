package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptrTo[T any](v T) *T {
	return &v
}

func TestReservation_Overlaps(t *testing.T) {
	existing := &Reservation{
		Kind:     KindRoom,
		Room:     ptrTo(RoomJacuzziSuite),
		CheckIn:  ptrTo(date("2024-06-01")),
		CheckOut: ptrTo(date("2024-06-05")),
	}

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{name: "overlapping tail", checkIn: "2024-06-03", checkOut: "2024-06-07", want: true},
		{name: "overlapping head", checkIn: "2024-05-28", checkOut: "2024-06-02", want: true},
		{name: "contained", checkIn: "2024-06-02", checkOut: "2024-06-03", want: true},
		{name: "same period", checkIn: "2024-06-01", checkOut: "2024-06-05", want: true},
		{name: "adjacent after", checkIn: "2024-06-05", checkOut: "2024-06-08", want: false},
		{name: "adjacent before", checkIn: "2024-05-28", checkOut: "2024-06-01", want: false},
		{name: "far away", checkIn: "2024-07-01", checkOut: "2024-07-03", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, existing.Overlaps(date(tt.checkIn), date(tt.checkOut)))
		})
	}
}

func TestReservation_Overlaps_MissingCheckOut(t *testing.T) {
	r := &Reservation{CheckIn: ptrTo(date("2024-06-01"))}
	assert.False(t, r.Overlaps(date("2024-05-01"), date("2024-07-01")))
}

func TestPromotion_IsActiveOn(t *testing.T) {
	promo := &Promotion{
		Code:      "VERANO10",
		Discount:  decimal.NewFromInt(10),
		StartDate: date("2024-06-01"),
		EndDate:   date("2024-06-30"),
	}

	bogota := time.FixedZone("COT", -5*60*60)

	assert.True(t, promo.IsActiveOn(time.Date(2024, 6, 1, 0, 0, 0, 0, bogota)))
	assert.True(t, promo.IsActiveOn(time.Date(2024, 6, 30, 23, 59, 0, 0, bogota)))
	assert.True(t, promo.IsActiveOn(time.Date(2024, 6, 15, 12, 0, 0, 0, bogota)))
	assert.False(t, promo.IsActiveOn(time.Date(2024, 5, 31, 23, 59, 0, 0, bogota)))
	assert.False(t, promo.IsActiveOn(time.Date(2024, 7, 1, 0, 0, 0, 0, bogota)))
}

func TestPromotion_Apply(t *testing.T) {
	promo := &Promotion{Discount: decimal.NewFromInt(10)}
	assert.True(t, decimal.NewFromInt(90000).Equal(promo.Apply(decimal.NewFromInt(100000))))

	promo = &Promotion{Discount: decimal.RequireFromString("12.5")}
	assert.True(t, decimal.NewFromInt(350000).Equal(promo.Apply(decimal.NewFromInt(400000))))

	promo = &Promotion{Discount: decimal.Zero}
	assert.True(t, decimal.NewFromInt(1234).Equal(promo.Apply(decimal.NewFromInt(1234))))
}

func TestRoomName(t *testing.T) {
	assert.Equal(t, "Suite con Jacuzzi", RoomName(RoomJacuzziSuite))
	assert.Equal(t, "Cabaña Familiar", RoomName(RoomFamilyCabin))
	assert.Equal(t, "glamping-domo", RoomName("glamping-domo"))
}

func TestSpaPlanDescription(t *testing.T) {
	assert.Equal(t, DescriptionNone, SpaPlanDescription(0, 2))
	assert.Equal(t, "Masaje de espalda (2 persona(s))", SpaPlanDescription(60000, 2))
	assert.Equal(t, "Masaje con chocolaterapia o frutos rojos (1 persona(s))", SpaPlanDescription(100000, 1))
	assert.Equal(t, "75000 (3 persona(s))", SpaPlanDescription(75000, 3))
}

func TestPicnicPlanDescription(t *testing.T) {
	assert.Equal(t, DescriptionNone, PicnicPlanDescription(0))
	assert.Equal(t, "Picnic para 2 personas", PicnicPlanDescription(180000))
	assert.Equal(t, "Picnic para 20 a 30 personas", PicnicPlanDescription(320000))
	assert.Equal(t, "999", PicnicPlanDescription(999))
}

func TestDescribe(t *testing.T) {
	room := &Reservation{
		Kind:       KindRoom,
		Room:       ptrTo(RoomStandard),
		SpaPlan:    ptrTo(int64(90000)),
		SpaPersons: 2,
		PicnicPlan: 190000,
	}
	assert.Equal(t, ReservationDetails{
		Room:   "Habitación Estándar",
		Spa:    "Masaje de cuerpo entero (2 persona(s))",
		Picnic: "Picnic para 3 a 5 personas",
	}, Describe(room))

	service := &Reservation{Kind: "spa", Room: ptrTo(RoomStandard)}
	assert.Equal(t, ReservationDetails{
		Room:   DescriptionNotApplicable,
		Spa:    DescriptionNone,
		Picnic: DescriptionNone,
	}, Describe(service))
}

func TestIsWeekend(t *testing.T) {
	assert.False(t, IsWeekend(date("2024-06-03"))) // понедельник
	assert.False(t, IsWeekend(date("2024-06-06"))) // четверг
	assert.True(t, IsWeekend(date("2024-06-07")))  // пятница
	assert.True(t, IsWeekend(date("2024-06-08")))
	assert.True(t, IsWeekend(date("2024-06-09")))
}

func TestCalculateRoomPrice(t *testing.T) {
	monday := date("2024-06-03")
	saturday := date("2024-06-08")

	tests := []struct {
		name    string
		room    string
		adults  int
		couples int
		checkIn time.Time
		want    int64
	}{
		{name: "family suite per adult", room: RoomFamilySuite, adults: 4, checkIn: monday, want: 940000},
		{name: "family cabin per adult ignores weekend", room: RoomFamilyCabin, adults: 3, checkIn: saturday, want: 690000},
		{name: "single weekday", room: RoomSingle, couples: 1, checkIn: monday, want: 430000},
		{name: "single weekend", room: RoomSingle, couples: 1, checkIn: saturday, want: 450000},
		{name: "standard two couples weekend", room: RoomStandard, couples: 2, checkIn: saturday, want: 940000},
		{name: "jacuzzi weekday", room: RoomJacuzziSuite, couples: 1, checkIn: monday, want: 530000},
		{name: "per couple without couples", room: RoomJacuzziSuite, adults: 2, checkIn: monday, want: 0},
		{name: "unknown room", room: "penthouse", couples: 1, checkIn: monday, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateRoomPrice(tt.room, tt.adults, tt.couples, tt.checkIn)
			assert.True(t, decimal.NewFromInt(tt.want).Equal(got), "got %s", got)
		})
	}
}
