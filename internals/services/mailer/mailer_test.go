package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentConfirmation(t *testing.T) {
	msg := PaymentConfirmation("Budi", "budi@gmail.com", 1500.50, "USD", "TXN_123_ABCDEF", "2026-03-14")

	assert.Equal(t, "Budi", msg.ToName)
	assert.Equal(t, "budi@gmail.com", msg.ToEmail)
	assert.Contains(t, msg.Text, "TXN_123_ABCDEF")
	assert.Contains(t, msg.Text, "USD 1500.50")
	assert.Contains(t, msg.HTML, "TXN_123_ABCDEF")
	assert.NotEmpty(t, msg.Subject)
}

func TestConsoleMailerSend(t *testing.T) {
	m := ConsoleMailer{}
	err := m.Send(context.Background(), Message{ToEmail: "x@y.com", Subject: "tes"})
	assert.NoError(t, err)
}
