package handlers

import (
	"net/http"

	"boletera/backend/internal/http/middleware"
	"boletera/backend/internal/services"

	"github.com/gin-gonic/gin"
)

func docsService(c *gin.Context) services.DocsService {
	return services.DocsService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/reservations/:id/boarding-pass
func GetBoardingPassPDF(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	pdf, filename, err := docsService(c).GenerateBoardingPass(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/trips/:id/manifest
func GetTripManifestPDF(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	pdf, filename, err := docsService(c).GenerateManifest(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
