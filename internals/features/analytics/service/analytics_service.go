package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollModel "sanggarku_backend/internals/features/academy/enrollments/model"
	teacherModel "sanggarku_backend/internals/features/academy/teachers/model"
	analyticsModel "sanggarku_backend/internals/features/analytics/model"
	paymentModel "sanggarku_backend/internals/features/payment/payments/model"
	userModel "sanggarku_backend/internals/features/users/user/model"
)

// TeacherStats metrik turunan satu pengajar dari enrollment yang di-tag.
type TeacherStats struct {
	TotalStudents  int
	CompletionRate float64
}

// ComputeTeacherStats hitung distinct student & tingkat kelulusan
// (completed / total enrollment, ×100) untuk satu pengajar.
func ComputeTeacherStats(teacherID uuid.UUID, enrollments []enrollModel.EnrollmentModel) TeacherStats {
	students := make(map[uuid.UUID]struct{})
	total, completed := 0, 0
	for _, e := range enrollments {
		if e.TaggedTeacherID == nil || *e.TaggedTeacherID != teacherID {
			continue
		}
		students[e.StudentID] = struct{}{}
		total++
		if e.Status == enrollModel.StatusCompleted {
			completed++
		}
	}
	stats := TeacherStats{TotalStudents: len(students)}
	if total > 0 {
		stats.CompletionRate = float64(completed) / float64(total) * 100
	}
	return stats
}

// BucketStudents kelompokkan tiap student ke tepat satu bucket.
// Student bisa punya banyak enrollment dengan status campur, prioritasnya
// completed > dropped > active. Tanpa enrollment hanya masuk hitungan total.
func BucketStudents(studentIDs []uuid.UUID, enrollments []enrollModel.EnrollmentModel) (total, active, dropped, completed int) {
	byStudent := make(map[uuid.UUID][]string)
	for _, e := range enrollments {
		byStudent[e.StudentID] = append(byStudent[e.StudentID], e.Status)
	}

	total = len(studentIDs)
	for _, id := range studentIDs {
		statuses := byStudent[id]
		hasActive, hasDropped, hasCompleted := false, false, false
		for _, s := range statuses {
			switch s {
			case enrollModel.StatusCompleted:
				hasCompleted = true
			case enrollModel.StatusDropped:
				hasDropped = true
			case enrollModel.StatusActive:
				hasActive = true
			}
		}
		switch {
		case hasCompleted:
			completed++
		case hasDropped:
			dropped++
		case hasActive:
			active++
		}
	}
	return total, active, dropped, completed
}

// BuildReport susun snapshot lengkap dari data mentah. Pure, tanpa DB,
// supaya gampang diuji. Revenue hanya menjumlah payment success,
// total_transactions menghitung semua baris.
func BuildReport(
	now time.Time,
	payments []paymentModel.PaymentModel,
	teachers []teacherModel.TeacherProfileModel,
	teacherNames map[uuid.UUID]string,
	studentIDs []uuid.UUID,
	enrollments []enrollModel.EnrollmentModel,
) analyticsModel.AnalyticsReportModel {
	report := analyticsModel.AnalyticsReportModel{
		ReportDate:        now,
		TotalTransactions: len(payments),
	}
	for _, p := range payments {
		if p.Status == paymentModel.StatusSuccess {
			report.TotalRevenue += p.Amount
		}
	}

	report.TotalStudents, report.ActiveStudents, report.DroppedStudents, report.CompletedStudents =
		BucketStudents(studentIDs, enrollments)

	for _, t := range teachers {
		stats := ComputeTeacherStats(t.ID, enrollments)
		report.TeacherPerformance = append(report.TeacherPerformance, analyticsModel.TeacherPerformanceModel{
			TeacherID:      t.ID,
			TeacherName:    teacherNames[t.UserID],
			AverageRating:  t.AverageRating,
			TotalStudents:  stats.TotalStudents,
			CompletionRate: stats.CompletionRate,
		})
	}
	return report
}

// Generate ambil seluruh data sumber, susun laporan, lalu simpan laporan
// beserta baris teacher_performance dalam satu transaksi. Completion rate
// pengajar di-refresh ke teacher_profiles dulu supaya snapshot tidak
// mengutip angka basi; gagal di mana pun berarti tidak ada laporan sama sekali.
func Generate(db *gorm.DB) (analyticsModel.AnalyticsReportModel, error) {
	var payments []paymentModel.PaymentModel
	if err := db.Find(&payments).Error; err != nil {
		return analyticsModel.AnalyticsReportModel{}, err
	}

	var teachers []teacherModel.TeacherProfileModel
	if err := db.Find(&teachers).Error; err != nil {
		return analyticsModel.AnalyticsReportModel{}, err
	}

	teacherNames := make(map[uuid.UUID]string)
	if len(teachers) > 0 {
		userIDs := make([]uuid.UUID, 0, len(teachers))
		for _, t := range teachers {
			userIDs = append(userIDs, t.UserID)
		}
		var users []userModel.UserModel
		if err := db.Select("id", "user_name").Where("id IN ?", userIDs).Find(&users).Error; err != nil {
			return analyticsModel.AnalyticsReportModel{}, err
		}
		for _, u := range users {
			teacherNames[u.ID] = u.UserName
		}
	}

	var studentIDs []uuid.UUID
	if err := db.Model(&userModel.UserModel{}).
		Where("role = ?", userModel.RoleStudent).
		Pluck("id", &studentIDs).Error; err != nil {
		return analyticsModel.AnalyticsReportModel{}, err
	}

	var enrollments []enrollModel.EnrollmentModel
	if err := db.Find(&enrollments).Error; err != nil {
		return analyticsModel.AnalyticsReportModel{}, err
	}

	report := BuildReport(time.Now(), payments, teachers, teacherNames, studentIDs, enrollments)

	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range report.TeacherPerformance {
			perf := report.TeacherPerformance[i]
			if err := tx.Model(&teacherModel.TeacherProfileModel{}).
				Where("id = ?", perf.TeacherID).
				Update("student_completion_rate", perf.CompletionRate).Error; err != nil {
				return err
			}
		}
		return tx.Create(&report).Error
	})
	if err != nil {
		return analyticsModel.AnalyticsReportModel{}, err
	}
	return report, nil
}
