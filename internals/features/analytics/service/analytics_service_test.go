package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enrollModel "sanggarku_backend/internals/features/academy/enrollments/model"
	teacherModel "sanggarku_backend/internals/features/academy/teachers/model"
	paymentModel "sanggarku_backend/internals/features/payment/payments/model"
)

func TestBuildReportRevenue(t *testing.T) {
	now := time.Now()
	payments := []paymentModel.PaymentModel{
		{Amount: 100, Status: paymentModel.StatusSuccess},
		{Amount: 50, Status: paymentModel.StatusPending},
		{Amount: 75, Status: paymentModel.StatusFailed},
		{Amount: 25, Status: paymentModel.StatusSuccess},
	}

	report := BuildReport(now, payments, nil, nil, nil, nil)

	// revenue hanya dari success, tapi semua baris ikut hitungan transaksi
	assert.Equal(t, 125.0, report.TotalRevenue)
	assert.Equal(t, 4, report.TotalTransactions)
	assert.Equal(t, now, report.ReportDate)
}

func TestBucketStudents(t *testing.T) {
	s1, s2, s3, s4 := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	enrollments := []enrollModel.EnrollmentModel{
		// s1: campur, completed menang
		{StudentID: s1, Status: enrollModel.StatusActive},
		{StudentID: s1, Status: enrollModel.StatusCompleted},
		{StudentID: s1, Status: enrollModel.StatusDropped},
		// s2: dropped menang atas active
		{StudentID: s2, Status: enrollModel.StatusDropped},
		{StudentID: s2, Status: enrollModel.StatusActive},
		// s3: hanya active
		{StudentID: s3, Status: enrollModel.StatusActive},
		// s4: tidak punya enrollment, hanya masuk total
	}

	total, active, dropped, completed := BucketStudents([]uuid.UUID{s1, s2, s3, s4}, enrollments)

	assert.Equal(t, 4, total)
	assert.Equal(t, 1, active)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, 1, completed)
	// tiap student masuk maksimal satu bucket
	assert.LessOrEqual(t, active+dropped+completed, total)
}

func TestComputeTeacherStats(t *testing.T) {
	teacherID := uuid.New()
	otherID := uuid.New()
	s1, s2 := uuid.New(), uuid.New()

	enrollments := []enrollModel.EnrollmentModel{
		{StudentID: s1, TaggedTeacherID: &teacherID, Status: enrollModel.StatusCompleted},
		{StudentID: s1, TaggedTeacherID: &teacherID, Status: enrollModel.StatusActive},
		{StudentID: s2, TaggedTeacherID: &teacherID, Status: enrollModel.StatusCompleted},
		{StudentID: s2, TaggedTeacherID: &otherID, Status: enrollModel.StatusDropped},
		{StudentID: s2, Status: enrollModel.StatusActive},
	}

	stats := ComputeTeacherStats(teacherID, enrollments)

	// s1 & s2 distinct, 2 dari 3 enrollment miliknya completed
	assert.Equal(t, 2, stats.TotalStudents)
	assert.InDelta(t, 66.66, stats.CompletionRate, 0.01)

	empty := ComputeTeacherStats(uuid.New(), enrollments)
	assert.Equal(t, 0, empty.TotalStudents)
	assert.Equal(t, 0.0, empty.CompletionRate)
}

func TestBuildReportTeacherSnapshot(t *testing.T) {
	teacherUser := uuid.New()
	teacher := teacherModel.TeacherProfileModel{
		ID:            uuid.New(),
		UserID:        teacherUser,
		AverageRating: 4.5,
	}
	student := uuid.New()
	enrollments := []enrollModel.EnrollmentModel{
		{StudentID: student, TaggedTeacherID: &teacher.ID, Status: enrollModel.StatusCompleted},
	}
	names := map[uuid.UUID]string{teacherUser: "Bu Rina"}

	report := BuildReport(time.Now(), nil,
		[]teacherModel.TeacherProfileModel{teacher}, names,
		[]uuid.UUID{student}, enrollments)

	require.Len(t, report.TeacherPerformance, 1)
	perf := report.TeacherPerformance[0]
	assert.Equal(t, teacher.ID, perf.TeacherID)
	assert.Equal(t, "Bu Rina", perf.TeacherName)
	assert.Equal(t, 4.5, perf.AverageRating)
	assert.Equal(t, 1, perf.TotalStudents)
	assert.Equal(t, 100.0, perf.CompletionRate)
}
