package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	unsetEnv(t, "PAYMENT_UPI_ID", "PAYMENT_MERCHANT_NAME", "MAIL_TRANSPORT", "SMTP_FROM_EMAIL", "SMTP_TIMEOUT", "MAX_UPLOAD_BYTES")
	t.Setenv("SMTP_USER", "bookings@example.com")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "astrosharma74@ptyes", cfg.PaymentUPIID)
	assert.Equal(t, "AstroSharma", cfg.PaymentMerchantName)
	assert.Equal(t, TransportSMTP, cfg.MailTransport)
	assert.Equal(t, int64(5*1024*1024), cfg.MaxUploadBytes)
	assert.Equal(t, 20*time.Second, cfg.SMTPTimeout)
	assert.Equal(t, "bookings@example.com", cfg.FromAddress())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("MAIL_TRANSPORT", "SES")
	t.Setenv("SMTP_FROM_EMAIL", "noreply@example.com")
	t.Setenv("SMTP_USER", "user@example.com")
	t.Setenv("SMTP_TIMEOUT", "3s")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.ListenAddr())
	assert.Equal(t, TransportSES, cfg.MailTransport)
	assert.Equal(t, "noreply@example.com", cfg.FromAddress())
	assert.Equal(t, 3*time.Second, cfg.SMTPTimeout)
}

func TestParseRejectsUnknownTransport(t *testing.T) {
	t.Setenv("MAIL_TRANSPORT", "carrier-pigeon")

	_, err := Parse()
	assert.Error(t, err)
}

// unsetEnv removes keys for the duration of the test
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
