package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/claimmate/claimmate/internal/claims"
)

// UploadHandler accepts policy file uploads.
type UploadHandler struct {
	service *claims.Service
}

func NewUploadHandler(service *claims.Service) *UploadHandler {
	return &UploadHandler{service: service}
}

func (h *UploadHandler) Register(e *echo.Echo) {
	e.POST("/uploads/policy", h.Upload)
}

// UploadResponse reports the generated upload id and where the file landed.
type UploadResponse struct {
	UploadID string `json:"upload_id"`
	SavedAs  string `json:"saved_as"`
}

// Upload godoc
// @Summary Upload a policy file
// @Description Accepts any file type (no MIME validation) and returns the upload id used to start a claim
// @Tags uploads
// @Accept multipart/form-data
// @Param policy formData file true "Policy file"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /uploads/policy [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	file, err := c.FormFile("policy")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "policy file is required")
	}
	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer src.Close()

	rec, err := h.service.CreateUpload(c.Request().Context(), file.Filename, src)
	if err != nil {
		return claimsError(err)
	}
	return c.JSON(http.StatusOK, UploadResponse{UploadID: rec.ID, SavedAs: rec.Path})
}
