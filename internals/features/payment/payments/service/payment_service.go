// internals/features/payment/payments/service/payment_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sanggarku_backend/internals/features/payment/payments/model"
	userModel "sanggarku_backend/internals/features/users/user/model"
	"sanggarku_backend/internals/services/mailer"
)

const notifyTimeout = 10 * time.Second

var (
	ErrInvalidStatus = errors.New("payment: status tidak dikenal")
	ErrStatusFinal   = errors.New("payment: status success bersifat final")
)

// CheckTransition valid-kan perpindahan status. success adalah status
// terminal: sekali dikonfirmasi, payment tidak bisa digeser lagi.
func CheckTransition(previous, next string) error {
	if !model.ValidStatus(next) {
		return ErrInvalidStatus
	}
	if previous == model.StatusSuccess && next != model.StatusSuccess {
		return ErrStatusFinal
	}
	return nil
}

// NewTransactionID id referensi untuk ditampilkan/dicocokkan manual,
// bukan ledger key: timestamp + suffix acak sudah cukup.
func NewTransactionID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("TXN_%d_%s", time.Now().UnixNano(), suffix)
}

// CreatePending insert payment baru milik ownerID dengan status pending.
// Verifikasi transfernya sendiri terjadi di luar sistem.
func CreatePending(db *gorm.DB, ownerID uuid.UUID, amount float64, currency, paymentType string) (model.PaymentModel, error) {
	if currency == "" {
		currency = "USD"
	}
	payment := model.PaymentModel{
		UserID:        ownerID,
		Amount:        amount,
		Currency:      strings.ToUpper(currency),
		Type:          paymentType,
		Status:        model.StatusPending,
		TransactionID: NewTransactionID(),
	}
	if err := db.Create(&payment).Error; err != nil {
		return model.PaymentModel{}, err
	}
	return payment, nil
}

// SetStatus geser status payment (admin). Urutannya penting:
// perubahan status di-commit dulu; email konfirmasi menyusul
// best-effort dan TIDAK PERNAH membatalkan perubahan status.
func SetStatus(db *gorm.DB, m mailer.Mailer, paymentID uuid.UUID, status string) (model.PaymentModel, error) {
	var payment model.PaymentModel
	if err := db.First(&payment, "id = ?", paymentID).Error; err != nil {
		return model.PaymentModel{}, err
	}

	previous := payment.Status
	if err := CheckTransition(previous, status); err != nil {
		return model.PaymentModel{}, err
	}
	if err := db.Model(&payment).Update("status", status).Error; err != nil {
		return model.PaymentModel{}, err
	}
	payment.Status = status

	if status == model.StatusSuccess && previous != model.StatusSuccess {
		NotifySuccess(db, m, payment)
	}

	return payment, nil
}

// NotifySuccess kirim email konfirmasi sekali; gagal → log saja.
func NotifySuccess(db *gorm.DB, m mailer.Mailer, payment model.PaymentModel) {
	var owner userModel.UserModel
	if err := db.Select("user_name", "email").First(&owner, "id = ?", payment.UserID).Error; err != nil {
		log.Printf("[ERROR] payment notify: ambil owner gagal: %v", err)
		return
	}
	if owner.Email == "" {
		return
	}

	msg := mailer.PaymentConfirmation(
		owner.UserName, owner.Email,
		payment.Amount, payment.Currency,
		payment.TransactionID,
		payment.CreatedAt.Format("2 January 2006 15:04"),
	)

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()
	if err := m.Send(ctx, msg); err != nil {
		log.Printf("[ERROR] payment notify: kirim email gagal (tx=%s): %v", payment.TransactionID, err)
	}
}
