package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"medportal/internal/notify"
	"medportal/internal/service"
)

// UploadExamFiles accepts a multipart batch (field name: files) and submits
// it as one upload. The whole batch is rejected when any file fails
// validation; otherwise per-file outcomes come back with the reconciled
// attachment state. Outcome toasts are queued on the notification center.
func UploadExamFiles(svc service.UploadService, center *notify.Center) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILES_REQUIRED", "multipart form with files is required")
		}

		headers := form.File["files"]
		if len(headers) == 0 {
			return writeError(c, fiber.StatusBadRequest, "FILES_REQUIRED", "at least one file is required")
		}

		files := make([]service.File, 0, len(headers))
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
			}
			defer f.Close()
			files = append(files, service.File{Name: fh.Filename, Size: fh.Size, Content: f})
		}

		res, err := svc.SubmitBatch(c.UserContext(), c.Params("id"), c.Params("examID"), files)
		if err != nil {
			return serviceError(c, err)
		}

		if res.Uploaded > 0 {
			center.Push(notify.LevelSuccess, fmt.Sprintf("%d file(s) uploaded", res.Uploaded))
		}
		for _, r := range res.Results {
			if !r.Success {
				center.Push(notify.LevelError, fmt.Sprintf("%s: %s", r.FileName, r.Error))
			}
		}

		return c.JSON(res)
	}
}
