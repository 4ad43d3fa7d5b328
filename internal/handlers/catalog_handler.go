package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/quiz-service/internal/services"
	"github.com/SAP-F-2025/quiz-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	BaseHandler
	catalogService services.CatalogService
	importService  services.ImportService
}

func NewCatalogHandler(
	catalogService services.CatalogService,
	importService services.ImportService,
	logger utils.Logger,
) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    NewBaseHandler(logger),
		catalogService: catalogService,
		importService:  importService,
	}
}

// ListTests returns all tests with their question counts
// @Router /tests [get]
func (h *CatalogHandler) ListTests(c *gin.Context) {
	tests, err := h.catalogService.ListTests(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tests)
}

// GetTest returns a single test
// @Router /tests/{id} [get]
func (h *CatalogHandler) GetTest(c *gin.Context) {
	id := h.parseUintParam(c, "id")
	if id == 0 {
		return
	}

	test, err := h.catalogService.GetTest(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, test)
}

// ImportTest creates a test plus its questions from an uploaded .xlsx or
// .csv file
// @Router /tests/import [post]
func (h *CatalogHandler) ImportTest(c *gin.Context) {
	title := c.PostForm("title")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Missing file upload",
			Details: err.Error(),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Failed to open uploaded file",
			Details: err.Error(),
		})
		return
	}
	defer file.Close()

	h.LogRequest(c, "Importing catalog file", "filename", fileHeader.Filename, "title", title)

	result, err := h.importService.ImportTestFromFile(c.Request.Context(), file, fileHeader.Filename, title)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Message: "Import finished",
		Data:    result,
	})
}
