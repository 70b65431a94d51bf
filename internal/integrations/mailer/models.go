package mailer

// Config параметры SMTP-сервера
type Config struct {
	Host     string
	Port     int
	Secure   bool // SMTPS (неявный TLS), обычно порт 465
	Username string
	Password string
	From     string
}

// InlineImage картинка, встроенная в HTML письма и доступная как cid:<ContentID>
type InlineImage struct {
	Name        string
	ContentID   string
	ContentType string
	Data        []byte
}

// Message письмо для отправки
type Message struct {
	To       string
	Subject  string
	HTMLBody string
	Inline   []InlineImage
}
