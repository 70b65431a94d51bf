package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Тексты, подставляемые в уведомления при отсутствии значения
const (
	DescriptionNone          = "Ninguno"
	DescriptionNotApplicable = "N/A"
)

// DefaultTimeZone часовой пояс отеля, в котором определяется "сегодня" для промокодов
const DefaultTimeZone = "America/Bogota"

// Исходы обработки заявки (метка outcome в метриках)
const (
	OutcomeCreated            = "created"
	OutcomeValidationFailed   = "validation_failed"
	OutcomeNotAvailable       = "not_available"
	OutcomeInvalidPromotion   = "invalid_promotion"
	OutcomeStoreFailed        = "store_failed"
	OutcomeNotificationFailed = "notification_failed"
)
