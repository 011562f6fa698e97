package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

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

// Riwayat kosong harus 404, bukan laporan bernilai nol.
func TestLatestEmptyHistoryIs404(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "analytics_reports"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ctrl := NewAnalyticsController(db)
	app := fiber.New()
	app.Get("/analytics/reports/latest", ctrl.Latest)

	resp, err := app.Test(httptest.NewRequest("GET", "/analytics/reports/latest", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLatestReturnsNewestReport(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "analytics_reports"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "total_revenue", "total_transactions"}).
			AddRow("7e6a0ac2-6b0b-4ab1-9c06-0a9f2f5f3a11", 125.0, 4))
	mock.ExpectQuery(`SELECT \* FROM "teacher_performance"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ctrl := NewAnalyticsController(db)
	app := fiber.New()
	app.Get("/analytics/reports/latest", ctrl.Latest)

	resp, err := app.Test(httptest.NewRequest("GET", "/analytics/reports/latest", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
