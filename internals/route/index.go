package route

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sanggarku_backend/internals/configs"
	attendanceRoute "sanggarku_backend/internals/features/academy/attendance/route"
	courseRoute "sanggarku_backend/internals/features/academy/courses/route"
	enrollmentRoute "sanggarku_backend/internals/features/academy/enrollments/route"
	subscriptionRoute "sanggarku_backend/internals/features/academy/subscriptions/route"
	teacherRoute "sanggarku_backend/internals/features/academy/teachers/route"
	aiRoute "sanggarku_backend/internals/features/ai/route"
	aiService "sanggarku_backend/internals/features/ai/service"
	analyticsRoute "sanggarku_backend/internals/features/analytics/route"
	configRoute "sanggarku_backend/internals/features/payment/config/route"
	paymentRoute "sanggarku_backend/internals/features/payment/payments/route"
	authRoute "sanggarku_backend/internals/features/users/auth/route"
	userRoute "sanggarku_backend/internals/features/users/user/route"
	authMiddleware "sanggarku_backend/internals/middlewares/auth"
	"sanggarku_backend/internals/realtime"
	"sanggarku_backend/internals/services/mailer"
)

// SetupRoutes rakit seluruh endpoint dalam tiga grup:
// /api/public tanpa token, /api/u butuh login, /api/a login + cek role
// per endpoint (OnlyRoles dipasang masing-masing route).
func SetupRoutes(app *fiber.App, db *gorm.DB, hub *realtime.Hub) {
	startTime = time.Now()

	BaseRoutes(app)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	public := app.Group("/api/public")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db))

	m := mailer.New()
	gemini := aiService.NewGeminiClient(configs.GeminiAPIKey)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(user, admin, db)

	log.Println("[INFO] Setting up CourseRoutes...")
	courseRoute.CourseRoutes(public, admin, db, hub)

	log.Println("[INFO] Setting up EnrollmentRoutes...")
	enrollmentRoute.EnrollmentRoutes(user, admin, db, hub)

	log.Println("[INFO] Setting up SubscriptionRoutes...")
	subscriptionRoute.SubscriptionRoutes(user, admin, db)

	log.Println("[INFO] Setting up AttendanceRoutes...")
	attendanceRoute.AttendanceRoutes(user, admin, db)

	log.Println("[INFO] Setting up TeacherRoutes...")
	teacherRoute.TeacherRoutes(public, user, admin, db)

	log.Println("[INFO] Setting up PaymentRoutes...")
	paymentRoute.PaymentRoutes(user, admin, db, m)
	configRoute.ConfigRoutes(public, admin, db)

	log.Println("[INFO] Setting up AnalyticsRoutes...")
	analyticsRoute.AnalyticsRoutes(admin, db)

	log.Println("[INFO] Setting up AIRoutes...")
	aiRoute.AIRoutes(user, gemini)

	// live update lewat websocket, token dicek dari query (?token=)
	app.Get("/ws/live", hub.UpgradeGuard(), hub.Handler())
}
