package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	exportUC "github.com/khoahotran/resume-builder/internal/application/usecase/export"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

type ExportHandler struct {
	documentUseCase *exportUC.DocumentUseCase
	previewUseCase  *exportUC.PreviewUseCase
	exportUseCase   *exportUC.ExportUseCase
	logger          logger.Logger
}

func NewExportHandler(documentUC *exportUC.DocumentUseCase, previewUC *exportUC.PreviewUseCase, exportUseCase *exportUC.ExportUseCase, log logger.Logger) *ExportHandler {
	return &ExportHandler{
		documentUseCase: documentUC,
		previewUseCase:  previewUC,
		exportUseCase:   exportUseCase,
		logger:          log,
	}
}

// requestFromQuery reads ?template=&primaryColor=&secondaryColor=&fontFamily=.
func requestFromQuery(c *gin.Context) (exportUC.Request, bool) {
	ownerID, id, ok := ownerAndID(c)
	if !ok {
		return exportUC.Request{}, false
	}
	req := exportUC.Request{ResumeID: id, OwnerID: ownerID, Template: c.Query("template")}
	theme := resume.Theme{
		PrimaryColor:   c.Query("primaryColor"),
		SecondaryColor: c.Query("secondaryColor"),
		FontFamily:     c.Query("fontFamily"),
	}
	if theme != (resume.Theme{}) {
		req.Theme = &theme
	}
	return req, true
}

func (h *ExportHandler) Document(c *gin.Context) {
	req, ok := requestFromQuery(c)
	if !ok {
		return
	}

	output, err := h.documentUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Document)
}

func (h *ExportHandler) Preview(c *gin.Context) {
	req, ok := requestFromQuery(c)
	if !ok {
		return
	}

	output, err := h.previewUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(output.HTML))
}

func (h *ExportHandler) Export(c *gin.Context) {
	ownerID, id, ok := ownerAndID(c)
	if !ok {
		return
	}

	// An empty body, chunked or not, means no overrides.
	var body exportRequest
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	output, err := h.exportUseCase.Execute(c.Request.Context(), exportUC.Request{
		ResumeID: id,
		OwnerID:  ownerID,
		Template: body.Template,
		Theme:    body.Theme,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, output.FileName))
	if output.Cached {
		c.Header("X-Export-Cache", "hit")
	} else {
		c.Header("X-Export-Cache", "miss")
	}
	c.Data(http.StatusOK, "application/pdf", output.PDF)
}
