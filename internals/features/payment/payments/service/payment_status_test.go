package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sanggarku_backend/internals/features/payment/payments/model"
	"sanggarku_backend/internals/services/mailer"
)

type countingMailer struct {
	calls int
	err   error
}

func (m *countingMailer) Send(_ context.Context, _ mailer.Message) error {
	m.calls++
	return m.err
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)
	return db, mock
}

func paymentRow(id, userID uuid.UUID, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "amount", "currency", "type", "status", "transaction_id", "created_at",
	}).AddRow(id.String(), userID.String(), 150.0, "USD", model.TypeCourseFee, status, "TXN_1_ABCDEF", time.Now())
}

func TestCheckTransition(t *testing.T) {
	assert.NoError(t, CheckTransition(model.StatusPending, model.StatusSuccess))
	assert.NoError(t, CheckTransition(model.StatusPending, model.StatusFailed))
	assert.NoError(t, CheckTransition(model.StatusFailed, model.StatusSuccess))
	assert.NoError(t, CheckTransition(model.StatusSuccess, model.StatusSuccess))

	// success final
	assert.ErrorIs(t, CheckTransition(model.StatusSuccess, model.StatusPending), ErrStatusFinal)
	assert.ErrorIs(t, CheckTransition(model.StatusSuccess, model.StatusFailed), ErrStatusFinal)

	assert.ErrorIs(t, CheckTransition(model.StatusPending, "refunded"), ErrInvalidStatus)
	assert.ErrorIs(t, CheckTransition(model.StatusPending, ""), ErrInvalidStatus)
}

// Status tetap ter-commit dan email dicoba tepat satu kali meskipun
// mailer-nya error.
func TestSetStatusMailerFailureDoesNotRollBack(t *testing.T) {
	db, mock := newMockDB(t)
	paymentID, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "payments"`).
		WillReturnRows(paymentRow(paymentID, userID, model.StatusPending))
	mock.ExpectExec(`UPDATE "payments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT "user_name","email" FROM "profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_name", "email"}).
			AddRow("Budi", "budi@gmail.com"))

	m := &countingMailer{err: errors.New("smtp down")}
	payment, err := SetStatus(db, m, paymentID, model.StatusSuccess)

	require.NoError(t, err)
	assert.Equal(t, model.StatusSuccess, payment.Status)
	assert.Equal(t, 1, m.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetStatusSuccessIsFinal(t *testing.T) {
	db, mock := newMockDB(t)
	paymentID, userID := uuid.New(), uuid.New()

	// hanya SELECT; UPDATE tidak boleh pernah terjadi
	mock.ExpectQuery(`SELECT \* FROM "payments"`).
		WillReturnRows(paymentRow(paymentID, userID, model.StatusSuccess))

	m := &countingMailer{}
	_, err := SetStatus(db, m, paymentID, model.StatusPending)

	assert.ErrorIs(t, err, ErrStatusFinal)
	assert.Equal(t, 0, m.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetStatusNoResendOnRepeatedSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	paymentID, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "payments"`).
		WillReturnRows(paymentRow(paymentID, userID, model.StatusSuccess))
	mock.ExpectExec(`UPDATE "payments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	m := &countingMailer{}
	payment, err := SetStatus(db, m, paymentID, model.StatusSuccess)

	require.NoError(t, err)
	assert.Equal(t, model.StatusSuccess, payment.Status)
	assert.Equal(t, 0, m.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
