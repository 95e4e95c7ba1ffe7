package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	resumeUC "github.com/khoahotran/resume-builder/internal/application/usecase/resume"
	"github.com/khoahotran/resume-builder/internal/editor"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

type ResumeHandler struct {
	createUseCase  *resumeUC.CreateResumeUseCase
	listUseCase    *resumeUC.ListResumesUseCase
	getUseCase     *resumeUC.GetResumeUseCase
	updateUseCase  *resumeUC.UpdateResumeUseCase
	deleteUseCase  *resumeUC.DeleteResumeUseCase
	actionsUseCase *resumeUC.ApplyActionsUseCase
	parseUseCase   *resumeUC.ParseResumeUseCase
	maxUploadSize  int64
	logger         logger.Logger
}

func NewResumeHandler(
	createUC *resumeUC.CreateResumeUseCase,
	listUC *resumeUC.ListResumesUseCase,
	getUC *resumeUC.GetResumeUseCase,
	updateUC *resumeUC.UpdateResumeUseCase,
	deleteUC *resumeUC.DeleteResumeUseCase,
	actionsUC *resumeUC.ApplyActionsUseCase,
	parseUC *resumeUC.ParseResumeUseCase,
	maxUploadSize int64,
	log logger.Logger,
) *ResumeHandler {
	return &ResumeHandler{
		createUseCase:  createUC,
		listUseCase:    listUC,
		getUseCase:     getUC,
		updateUseCase:  updateUC,
		deleteUseCase:  deleteUC,
		actionsUseCase: actionsUC,
		parseUseCase:   parseUC,
		maxUploadSize:  maxUploadSize,
		logger:         log,
	}
}

// bindResume validates the raw body against the resume schema before decoding it.
func bindResume(c *gin.Context) (*ResumeRequest, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Error(apperror.NewInvalidInput("cannot read request body", err))
		return nil, false
	}
	if err := validateResumePayload(body); err != nil {
		c.Error(err)
		return nil, false
	}
	var req ResumeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return nil, false
	}
	return &req, true
}

func (h *ResumeHandler) ListResumes(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("owner not found in context", nil))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	output, err := h.listUseCase.Execute(c.Request.Context(), resumeUC.ListResumesInput{
		OwnerID: ownerID,
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		c.Error(err)
		return
	}

	records := make([]ResumeRecordDTO, len(output.Resumes))
	for i, r := range output.Resumes {
		records[i] = ToResumeRecordDTO(r)
	}
	c.JSON(http.StatusOK, records)
}

func (h *ResumeHandler) CreateResume(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("owner not found in context", nil))
		return
	}
	req, ok := bindResume(c)
	if !ok {
		return
	}

	input := resumeUC.CreateResumeInput{
		OwnerID:  ownerID,
		Title:    req.Title,
		Data:     req.Data,
		Template: req.Template,
	}
	if req.Theme != nil {
		input.Theme = *req.Theme
	}

	output, err := h.createUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToResumeRecordDTO(output.Resume))
}

func (h *ResumeHandler) GetResume(c *gin.Context) {
	ownerID, id, ok := ownerAndID(c)
	if !ok {
		return
	}

	output, err := h.getUseCase.Execute(c.Request.Context(), resumeUC.GetResumeInput{ResumeID: id, OwnerID: ownerID})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToResumeRecordDTO(output.Resume))
}

func (h *ResumeHandler) UpdateResume(c *gin.Context) {
	ownerID, id, ok := ownerAndID(c)
	if !ok {
		return
	}
	req, ok := bindResume(c)
	if !ok {
		return
	}

	output, err := h.updateUseCase.Execute(c.Request.Context(), resumeUC.UpdateResumeInput{
		ResumeID: id,
		OwnerID:  ownerID,
		Title:    req.Title,
		Data:     req.Data,
		Template: req.Template,
		Theme:    req.Theme,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToResumeRecordDTO(output.Resume))
}

func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	ownerID, id, ok := ownerAndID(c)
	if !ok {
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), resumeUC.DeleteResumeInput{ResumeID: id, OwnerID: ownerID}); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Resume deleted successfully"})
}

func (h *ResumeHandler) ApplyActions(c *gin.Context) {
	ownerID, id, ok := ownerAndID(c)
	if !ok {
		return
	}

	var req struct {
		Actions []editor.Envelope `json:"actions" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("'actions' must be an array of {type, payload}", err))
		return
	}

	output, err := h.actionsUseCase.Execute(c.Request.Context(), resumeUC.ApplyActionsInput{
		ResumeID: id,
		OwnerID:  ownerID,
		Actions:  req.Actions,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToResumeRecordDTO(output.Resume))
}

// ParseResume accepts a PDF or DOCX upload and answers with best-effort resume data.
func (h *ResumeHandler) ParseResume(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'file' is required", err))
		return
	}

	switch fileHeader.Header.Get("Content-Type") {
	case mimePDF, mimeDOCX:
	default:
		c.Error(apperror.NewInvalidInput("only PDF or DOCX files are supported", nil))
		return
	}
	if h.maxUploadSize > 0 && fileHeader.Size > h.maxUploadSize {
		c.Error(apperror.NewInvalidInput("uploaded file is too large", nil))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open file", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperror.NewInternal("failed to read file", err))
		return
	}

	output, err := h.parseUseCase.Execute(c.Request.Context(), resumeUC.ParseResumeInput{
		File: bytes.NewReader(data),
		Size: int64(len(data)),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Data)
}
