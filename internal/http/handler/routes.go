package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"medportal/internal/backend"
	"medportal/internal/notify"
	"medportal/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic.
func RegisterRoutes(
	app *fiber.App,
	api backend.Client,
	records service.RecordService,
	uploads service.UploadService,
	profiles service.ProfileService,
	center *notify.Center,
	gatherer prometheus.Gatherer,
) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", OpenAPISpec())
	app.Get("/docs", Docs())

	// Health: backend reachability and a plain liveness probe
	app.Get("/health", HealthCheck(api))
	app.Get("/healthz", LivenessProbe())
	app.Get("/metrics", Metrics(gatherer))

	// Patient records
	patients := app.Group("/patients/:id")
	patients.Get("/dashboard", Dashboard(records))
	patients.Get("/consultations", ListConsultations(records))
	patients.Delete("/consultations/:consultationID", DeleteConsultation(records))
	patients.Get("/medications", ListMedications(records))
	patients.Delete("/medications/:medicationID", DeleteMedication(records))
	patients.Get("/exams", ListExams(records))
	// preview must be registered before the :examID routes so the literal
	// segment wins
	patients.Get("/exams/preview", PreviewAttachment(records))
	patients.Get("/exams/:examID", ExamDetail(records))
	patients.Delete("/exams/:examID", DeleteExam(records))
	patients.Post("/exams/:examID/files", UploadExamFiles(uploads, center))
	patients.Get("/family", ListFamily(records))
	patients.Delete("/family/:memberID", DeleteFamilyMember(records))

	// Account profile and Telegram linking
	app.Get("/telegram/status", TelegramStatus(profiles))
	app.Post("/telegram/link", LinkTelegram(profiles))
	app.Put("/profile/personal", UpdatePersonalProfile(profiles))
	app.Put("/profile/notifications", UpdateNotificationSetting(profiles))

	// Notification shell
	app.Get("/notifications", ListNotifications(center))
	app.Delete("/notifications/:id", DismissNotification(center))
}
