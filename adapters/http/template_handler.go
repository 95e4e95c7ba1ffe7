package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	selectionUC "github.com/khoahotran/resume-builder/internal/application/usecase/selection"
	"github.com/khoahotran/resume-builder/internal/compose"
	"github.com/khoahotran/resume-builder/internal/domain/selection"
	"github.com/khoahotran/resume-builder/pkg/apperror"
)

type TemplateHandler struct {
	selectionUseCase *selectionUC.SelectionUseCase
}

func NewTemplateHandler(selectionUseCase *selectionUC.SelectionUseCase) *TemplateHandler {
	return &TemplateHandler{selectionUseCase: selectionUseCase}
}

func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, ToTemplateDTOs(compose.Templates()))
}

func (h *TemplateHandler) GetSelection(c *gin.Context) {
	userID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("owner not found in context", nil))
		return
	}

	sel, err := h.selectionUseCase.Get(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSelectionDTO(sel))
}

func (h *TemplateHandler) SetSelection(c *gin.Context) {
	userID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("owner not found in context", nil))
		return
	}

	var req SelectionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("'template' is required", err))
		return
	}

	sel, err := h.selectionUseCase.Set(c.Request.Context(), userID, selection.Selection{Template: req.Template, Theme: req.Theme})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSelectionDTO(sel))
}
