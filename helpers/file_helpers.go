package helpers

import (
	"mime/multipart"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// GetFileContentType возвращает тип содержимого файла из multipart заголовка,
// при его отсутствии определяет по расширению
func GetFileContentType(file *multipart.FileHeader) string {
	contentType := file.Header.Get(fiber.HeaderContentType)
	if contentType != "" {
		return contentType
	}

	switch filepath.Ext(file.Filename) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	}
	return fiber.MIMEOctetStream
}
