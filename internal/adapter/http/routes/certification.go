package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/adapter/http/handlers"
)

const (
	PathApplications = "/applications"
	PathInspections  = "/inspections"
	PathCertificates = "/certificates"
)

func addCertificationRoutes(
	rg *gin.RouterGroup,
	applicationHandler *handlers.ApplicationHandler,
	inspectionHandler *handlers.InspectionHandler,
	certificateHandler *handlers.CertificateHandler,
) {
	applications := rg.Group(PathApplications)
	{
		applications.POST("", applicationHandler.CreateApplication)
		applications.GET("", applicationHandler.ListApplications)
		applications.GET("/:id", applicationHandler.GetApplication)
		applications.GET("/:id/missing-documents", applicationHandler.GetMissingDocuments)
		applications.POST("/:id/consent", applicationHandler.RecordConsent)
		applications.POST("/:id/documents", applicationHandler.AddDocument)
		applications.PATCH("/:id/documents/:document_id/review", applicationHandler.ReviewDocument)
		applications.PATCH("/:id/submit", applicationHandler.SubmitApplication)
		applications.PATCH("/:id/payment/slip", applicationHandler.AttachPaymentSlip)
		applications.PATCH("/:id/payment/confirm", applicationHandler.ConfirmPayment)
		applications.PATCH("/:id/payment/reject", applicationHandler.RejectPaymentSlip)
		applications.PATCH("/:id/approve", applicationHandler.ApproveApplication)
		applications.PATCH("/:id/reject", applicationHandler.RejectApplication)
		applications.PATCH("/:id/cancel", applicationHandler.CancelApplication)
	}

	inspections := rg.Group(PathInspections)
	{
		inspections.POST("", inspectionHandler.ScheduleInspection)
		inspections.GET("/:id", inspectionHandler.GetInspection)
		inspections.PATCH("/:id/confirm", inspectionHandler.ConfirmInspection)
		inspections.PATCH("/:id/start", inspectionHandler.StartInspection)
		inspections.PATCH("/:id/complete", inspectionHandler.CompleteInspection)
		inspections.PATCH("/:id/cancel", inspectionHandler.CancelInspection)
		inspections.PATCH("/:id/reschedule", inspectionHandler.RescheduleInspection)
		inspections.GET("/availability/:inspector_id", inspectionHandler.GetAvailability)
	}

	certificates := rg.Group(PathCertificates)
	{
		certificates.POST("", certificateHandler.IssueCertificate)
		certificates.GET("/expiring", certificateHandler.ListExpiringCertificates)
		certificates.GET("/verify/:number", certificateHandler.VerifyCertificate)
		certificates.GET("/:id", certificateHandler.GetCertificate)
		certificates.PATCH("/:id/suspend", certificateHandler.SuspendCertificate)
		certificates.PATCH("/:id/reinstate", certificateHandler.ReinstateCertificate)
		certificates.PATCH("/:id/revoke", certificateHandler.RevokeCertificate)
		certificates.POST("/:id/renew", certificateHandler.RenewCertificate)
	}
}
