package api

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetSummary(c *fiber.Ctx) error {
	userID, referenceDate, status, message := handler.userAndReferenceDate(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	summary, err := handler.analysis.HealthcareSummary(c.UserContext(), userID, referenceDate)
	if err != nil {
		return serviceError(c, err, "failed to build summary")
	}
	return c.JSON(summary)
}

func (handler *Handler) ExportSummaryCSV(c *fiber.Ctx) error {
	userID, referenceDate, status, message := handler.userAndReferenceDate(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	var output bytes.Buffer
	if err := handler.exports.WriteCSV(c.UserContext(), &output, userID, referenceDate); err != nil {
		return serviceError(c, err, "failed to build export")
	}

	setExportAttachmentHeaders(c, "text/csv", buildExportFilename(referenceDate, "csv"))
	return c.Send(output.Bytes())
}

func buildExportFilename(referenceDate time.Time, extension string) string {
	return fmt.Sprintf("cycle-summary-%s.%s", referenceDate.Format("2006-01-02"), extension)
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
