package handler

import (
	"github.com/gofiber/fiber/v2"

	"medportal/internal/service"
)

// Dashboard returns the patient landing view: stats plus consultations.
func Dashboard(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := svc.Dashboard(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(d)
	}
}

func ListConsultations(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.Consultations(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"consultations": items})
	}
}

func ListMedications(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.Medications(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"medications": items})
	}
}

func ListExams(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.Exams(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"exams": items})
	}
}

func ListFamily(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.Family(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"family": items})
	}
}

// ExamDetail returns the full exam view with parsed attachments and the
// category summary.
func ExamDetail(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		detail, err := svc.ExamDetail(c.UserContext(), c.Params("id"), c.Params("examID"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(detail)
	}
}

// PreviewAttachment plans a preview for one attachment URL, fetching the
// content inline for text attachments.
func PreviewAttachment(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.ResolvePreview(c.UserContext(), c.Query("url"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// confirmed guards destructive endpoints: deletion proceeds only with the
// explicit confirm=true query, mirroring the confirmation modal.
func confirmed(c *fiber.Ctx) bool {
	return c.Query("confirm") == "true"
}

// DeleteRecord wraps one deletion flow: confirmation guard, the delete call,
// then the refreshed list and stats in the response.
func DeleteRecord(del func(c *fiber.Ctx, patientID, recordID string) (*service.DeletionRefresh, error), recordParam string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !confirmed(c) {
			return writeError(c, fiber.StatusBadRequest, "CONFIRMATION_REQUIRED", "deletion requires confirm=true")
		}
		refresh, err := del(c, c.Params("id"), c.Params(recordParam))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(refresh)
	}
}

func DeleteConsultation(svc service.RecordService) fiber.Handler {
	return DeleteRecord(func(c *fiber.Ctx, patientID, recordID string) (*service.DeletionRefresh, error) {
		return svc.DeleteConsultation(c.UserContext(), patientID, recordID)
	}, "consultationID")
}

func DeleteMedication(svc service.RecordService) fiber.Handler {
	return DeleteRecord(func(c *fiber.Ctx, patientID, recordID string) (*service.DeletionRefresh, error) {
		return svc.DeleteMedication(c.UserContext(), patientID, recordID)
	}, "medicationID")
}

func DeleteExam(svc service.RecordService) fiber.Handler {
	return DeleteRecord(func(c *fiber.Ctx, patientID, recordID string) (*service.DeletionRefresh, error) {
		return svc.DeleteExam(c.UserContext(), patientID, recordID)
	}, "examID")
}

func DeleteFamilyMember(svc service.RecordService) fiber.Handler {
	return DeleteRecord(func(c *fiber.Ctx, patientID, recordID string) (*service.DeletionRefresh, error) {
		return svc.DeleteFamilyMember(c.UserContext(), patientID, recordID)
	}, "memberID")
}
