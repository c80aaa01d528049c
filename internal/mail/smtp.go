package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"
)

// SMTPConfig describes the relay a SMTPTransport submits to
type SMTPConfig struct {
	Host     string
	Port     int
	Secure   bool
	Username string
	Password string
	// TLSConfig overrides the TLS settings used for implicit TLS and STARTTLS
	TLSConfig *tls.Config
}

// SMTPTransport submits messages to an SMTP relay, one connection per message
type SMTPTransport struct {
	cfg SMTPConfig
	now func() time.Time
}

func NewSMTPTransport(cfg SMTPConfig) *SMTPTransport {
	return &SMTPTransport{cfg: cfg, now: time.Now}
}

func (t *SMTPTransport) Name() string {
	return "smtp"
}

func (t *SMTPTransport) addr() string {
	return net.JoinHostPort(t.cfg.Host, strconv.Itoa(t.cfg.Port))
}

func (t *SMTPTransport) tlsConfig() *tls.Config {
	if t.cfg.TLSConfig != nil {
		return t.cfg.TLSConfig
	}
	return &tls.Config{ServerName: t.cfg.Host, MinVersion: tls.VersionTLS12}
}

// Send performs one SMTP transaction. The connection is torn down as soon as
// ctx is done, so a stalled relay cannot hold the caller past its deadline.
func (t *SMTPTransport) Send(ctx context.Context, msg *Message) error {
	if t.cfg.Host == "" {
		return errors.New("smtp host is not configured")
	}

	raw, err := Build(msg, t.now())
	if err != nil {
		return err
	}
	from, err := envelopeAddress(msg.From)
	if err != nil {
		return err
	}
	to, err := envelopeAddress(msg.To)
	if err != nil {
		return err
	}

	conn, err := t.dial(ctx)
	if err != nil {
		return err
	}
	stop := context.AfterFunc(ctx, func() {
		conn.Close()
	})
	defer stop()

	err = t.transact(conn, from, to, raw)
	if err != nil && ctx.Err() != nil {
		return fmt.Errorf("smtp send to %s aborted: %w", t.addr(), ctx.Err())
	}
	return err
}

func (t *SMTPTransport) dial(ctx context.Context) (net.Conn, error) {
	dialer := &net.Dialer{}
	if t.cfg.Secure {
		tlsDialer := &tls.Dialer{NetDialer: dialer, Config: t.tlsConfig()}
		conn, err := tlsDialer.DialContext(ctx, "tcp", t.addr())
		if err != nil {
			return nil, fmt.Errorf("SMTP connect to %s: %w", t.addr(), err)
		}
		return conn, nil
	}

	conn, err := dialer.DialContext(ctx, "tcp", t.addr())
	if err != nil {
		return nil, fmt.Errorf("SMTP connect to %s: %w", t.addr(), err)
	}
	return conn, nil
}

func (t *SMTPTransport) transact(conn net.Conn, from, to string, raw []byte) error {
	client, err := smtp.NewClient(conn, t.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("SMTP client: %w", err)
	}
	defer client.Close()

	if !t.cfg.Secure {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(t.tlsConfig()); err != nil {
				return fmt.Errorf("STARTTLS: %w", err)
			}
		}
	}

	if t.cfg.Username != "" {
		if ok, _ := client.Extension("AUTH"); !ok {
			return errors.New("SMTP server does not support AUTH")
		}
		auth := smtp.PlainAuth("", t.cfg.Username, t.cfg.Password, t.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("AUTH: %w", err)
		}
	}

	if err := client.Mail(from); err != nil {
		return fmt.Errorf("MAIL FROM: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("RCPT TO: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("DATA close: %w", err)
	}
	return client.Quit()
}
