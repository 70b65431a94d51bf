package create_reservation

import (
	createReservation "github.com/m04kA/LosBucaros-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/LosBucaros-ReservationService/pkg/types"
)

// CreateReservationRequest тело формы бронирования сайта.
// Числа приходят и строками, и числами; нечисловые значения считаются нулём.
type CreateReservationRequest struct {
	Identification types.Scalar `json:"identificacion"`
	Name           types.Scalar `json:"nombre"`
	Email          types.Scalar `json:"email"`
	Phone          types.Scalar `json:"telefono"`
	Kind           types.Scalar `json:"tipoReserva"`
	CheckIn        types.Scalar `json:"fechaIngreso"` // "2024-06-03"
	CheckOut       types.Scalar `json:"fechaSalida"`  // "2024-06-07"
	Adults         types.Scalar `json:"adultos"`
	Children       types.Scalar `json:"ninos"`
	Couples        types.Scalar `json:"parejas"`
	Room           types.Scalar `json:"habitaciones"`
	Price          types.Scalar `json:"precio"`
	PromotionCode  types.Scalar `json:"codigoPromocion"`
	SpaPlan        types.Scalar `json:"spa_plan"`
	SpaPersons     types.Scalar `json:"spa_personas"`
	PicnicPlan     types.Scalar `json:"picnic_plan"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	var spaPlan *int64
	if code := r.SpaPlan.Int64(); code != 0 {
		spaPlan = &code
	}

	return &createReservation.Request{
		Identification: r.Identification.String(),
		CustomerName:   r.Name.String(),
		Email:          r.Email.String(),
		Phone:          r.Phone.Ptr(),
		Kind:           r.Kind.String(),
		CheckIn:        r.CheckIn.String(),
		CheckOut:       r.CheckOut.String(),
		Adults:         r.Adults.Int(),
		Children:       r.Children.Int(),
		Couples:        r.Couples.Int(),
		Room:           r.Room.Ptr(),
		Price:          r.Price.Decimal(),
		PromotionCode:  r.PromotionCode.Ptr(),
		SpaPlan:        spaPlan,
		SpaPersons:     r.SpaPersons.Int(),
		PicnicPlan:     r.PicnicPlan.Int64(),
	}
}
