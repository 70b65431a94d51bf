package mailer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gopkg.in/gomail.v2"
)

// Dialer отправитель писем (*gomail.Dialer)
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client SMTP-клиент. Каждое письмо отправляется в отдельном соединении.
type Client struct {
	dialer Dialer
	from   string
	log    Logger
}

// NewClient создает клиент для SMTP-сервера из cfg
func NewClient(cfg Config, log Logger) *Client {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.Secure

	return NewClientWithDialer(d, cfg.From, log)
}

func NewClientWithDialer(dialer Dialer, from string, log Logger) *Client {
	return &Client{
		dialer: dialer,
		from:   from,
		log:    log,
	}
}

// Send отправляет письмо и блокируется до ответа SMTP-сервера
func (c *Client) Send(ctx context.Context, msg *Message) error {
	if strings.TrimSpace(msg.To) == "" {
		return fmt.Errorf("%w: empty recipient", ErrInvalidMessage)
	}
	if strings.TrimSpace(msg.Subject) == "" {
		return fmt.Errorf("%w: empty subject", ErrInvalidMessage)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	m := c.buildMessage(msg)

	if err := c.dialer.DialAndSend(m); err != nil {
		c.log.Error("Send: failed to send %q to %s: %v", msg.Subject, msg.To, err)
		return fmt.Errorf("%w: to=%s: %v", ErrSend, msg.To, err)
	}

	c.log.Info("Send: sent %q to %s", msg.Subject, msg.To)
	return nil
}

func (c *Client) buildMessage(msg *Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	for _, img := range msg.Inline {
		data := img.Data
		m.Embed(img.Name,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type":        {img.ContentType},
				"Content-ID":          {"<" + img.ContentID + ">"},
				"Content-Disposition": {"inline"},
			}),
		)
	}

	return m
}
