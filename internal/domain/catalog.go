package domain

import (
	"fmt"
	"strconv"
)

// Идентификаторы номеров, которые использует сайт
const (
	RoomFamilySuite  = "suite-familiar"
	RoomFamilyCabin  = "cabaña-familiar"
	RoomSingle       = "habitacion-sencilla"
	RoomStandard     = "habitacion-estandar"
	RoomJacuzziSuite = "suite-jacuzzi"
)

var roomNames = map[string]string{
	RoomFamilySuite:  "Suite Familiar",
	RoomFamilyCabin:  "Cabaña Familiar",
	RoomSingle:       "Habitación Sencilla",
	RoomStandard:     "Habitación Estándar",
	RoomJacuzziSuite: "Suite con Jacuzzi",
}

// Спа-планы: код плана совпадает с его ценой
var spaPlans = map[int64]string{
	60000:  "Masaje de espalda",
	90000:  "Masaje de cuerpo entero",
	100000: "Masaje con chocolaterapia o frutos rojos",
}

var picnicPlans = map[int64]string{
	180000: "Picnic para 2 personas",
	190000: "Picnic para 3 a 5 personas",
	210000: "Picnic para 6 a 10 personas",
	270000: "Picnic para 11 a 20 personas",
	320000: "Picnic para 20 a 30 personas",
}

// RoomName returns the display name of a room, or the raw identifier if it is unknown
func RoomName(id string) string {
	if name, ok := roomNames[id]; ok {
		return name
	}
	return id
}

// SpaPlanDescription описание спа-плана с количеством человек.
// Неизвестный код выводится как есть.
func SpaPlanDescription(code int64, persons int) string {
	if code == 0 {
		return DescriptionNone
	}
	name, ok := spaPlans[code]
	if !ok {
		name = strconv.FormatInt(code, 10)
	}
	return fmt.Sprintf("%s (%d persona(s))", name, persons)
}

func PicnicPlanDescription(code int64) string {
	if code == 0 {
		return DescriptionNone
	}
	if name, ok := picnicPlans[code]; ok {
		return name
	}
	return strconv.FormatInt(code, 10)
}

// ReservationDetails человекочитаемые описания, общие для обоих писем
type ReservationDetails struct {
	Room   string
	Spa    string
	Picnic string
}

// Describe строит описания номера и дополнительных услуг заявки
func Describe(r *Reservation) ReservationDetails {
	details := ReservationDetails{
		Room:   DescriptionNotApplicable,
		Spa:    DescriptionNone,
		Picnic: PicnicPlanDescription(r.PicnicPlan),
	}

	if r.IsRoom() && r.Room != nil {
		details.Room = RoomName(*r.Room)
	}

	if r.SpaPlan != nil {
		details.Spa = SpaPlanDescription(*r.SpaPlan, r.SpaPersons)
	}

	return details
}
