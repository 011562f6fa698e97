package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sanggarku_backend/internals/features/analytics/model"
	analyticsService "sanggarku_backend/internals/features/analytics/service"
	helper "sanggarku_backend/internals/helpers"
)

type AnalyticsController struct {
	DB *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

// POST /api/a/analytics/reports — generate snapshot baru.
func (ctrl *AnalyticsController) Generate(c *fiber.Ctx) error {
	report, err := analyticsService.Generate(ctrl.DB)
	if err != nil {
		log.Println("[ERROR] Gagal generate laporan analytics:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat laporan analytics")
	}
	return helper.JsonCreated(c, "Laporan analytics dibuat", report)
}

// GET /api/a/analytics/reports/latest — snapshot paling baru.
// Belum pernah ada laporan = 404, bukan laporan kosong.
func (ctrl *AnalyticsController) Latest(c *fiber.Ctx) error {
	var report model.AnalyticsReportModel
	err := ctrl.DB.Preload("TeacherPerformance").
		Order("report_date DESC, created_at DESC").
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Belum ada laporan analytics")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}
	return helper.Success(c, "OK", report)
}

// GET /api/a/analytics/reports — riwayat laporan, terbaru dulu.
func (ctrl *AnalyticsController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.AnalyticsReportModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}

	var reports []model.AnalyticsReportModel
	if err := ctrl.DB.Order("report_date DESC, created_at DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&reports).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}

	return helper.Success(c, "OK", fiber.Map{
		"reports":    reports,
		"pagination": helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}
