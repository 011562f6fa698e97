package mailer

import (
	"context"
	"fmt"
	"log"

	"sanggarku_backend/internals/configs"
)

// Message satu email keluar (plain + html).
type Message struct {
	ToName  string
	ToEmail string
	Subject string
	Text    string
	HTML    string
}

// Mailer is any service that can send a single message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// New pilih backend berdasarkan ENV: sendgrid kalau key ada,
// console mailer kalau tidak (dev).
func New() Mailer {
	if configs.SendgridAPIKey != "" {
		return NewSendgridMailer(configs.SendgridAPIKey)
	}
	log.Println("[INFO] mailer: pakai console backend")
	return ConsoleMailer{}
}

// ConsoleMailer tulis email ke log, untuk dev/test.
type ConsoleMailer struct{}

func (ConsoleMailer) Send(_ context.Context, msg Message) error {
	log.Printf("[MAIL] to=%s <%s> subject=%q\n%s", msg.ToName, msg.ToEmail, msg.Subject, msg.Text)
	return nil
}

// PaymentConfirmation bangun email konfirmasi pembayaran.
func PaymentConfirmation(toName, toEmail string, amount float64, currency, transactionID, paymentDate string) Message {
	subject := "Pembayaran dikonfirmasi - Sanggarku"
	text := fmt.Sprintf(
		"Halo %s,\n\nPembayaran kamu sudah kami terima dan konfirmasi.\n\n"+
			"Jumlah       : %s %.2f\nTransaksi    : %s\nTanggal      : %s\n\n"+
			"Terima kasih!\nTim Sanggarku",
		toName, currency, amount, transactionID, paymentDate,
	)
	html := fmt.Sprintf(
		`<h2>Halo %s,</h2><p>Pembayaran kamu sudah kami terima dan konfirmasi.</p>`+
			`<table><tr><td>Jumlah</td><td><b>%s %.2f</b></td></tr>`+
			`<tr><td>Transaksi</td><td><code>%s</code></td></tr>`+
			`<tr><td>Tanggal</td><td>%s</td></tr></table>`+
			`<p>Terima kasih!<br>Tim Sanggarku</p>`,
		toName, currency, amount, transactionID, paymentDate,
	)
	return Message{ToName: toName, ToEmail: toEmail, Subject: subject, Text: text, HTML: html}
}
