package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	programUsecases "github.com/coachfit-inc/coachfit/internal/application/program/usecases"
	"github.com/coachfit-inc/coachfit/internal/domain/program"
	"github.com/coachfit-inc/coachfit/internal/interfaces/http/middleware"
	"github.com/coachfit-inc/coachfit/internal/shared/logger"
	"github.com/coachfit-inc/coachfit/internal/shared/utils"
)

type ProgramHandler struct {
	createProgramUC *programUsecases.CreateProgramUseCase
	updateProgramUC *programUsecases.UpdateProgramUseCase
	publishUC       *programUsecases.PublishProgramUseCase
	setSaleStatusUC *programUsecases.SetSaleStatusUseCase
	getProgramUC    *programUsecases.GetProgramUseCase
	listProgramsUC  *programUsecases.ListProgramsUseCase
	logger          logger.Interface
}

func NewProgramHandler(
	createProgramUC *programUsecases.CreateProgramUseCase,
	updateProgramUC *programUsecases.UpdateProgramUseCase,
	publishUC *programUsecases.PublishProgramUseCase,
	setSaleStatusUC *programUsecases.SetSaleStatusUseCase,
	getProgramUC *programUsecases.GetProgramUseCase,
	listProgramsUC *programUsecases.ListProgramsUseCase,
	logger logger.Interface,
) *ProgramHandler {
	return &ProgramHandler{
		createProgramUC: createProgramUC,
		updateProgramUC: updateProgramUC,
		publishUC:       publishUC,
		setSaleStatusUC: setSaleStatusUC,
		getProgramUC:    getProgramUC,
		listProgramsUC:  listProgramsUC,
		logger:          logger,
	}
}

type ProgramResponse struct {
	ProgramID      string  `json:"program_id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Price          int64   `json:"price"`
	Thumbnail      *string `json:"thumbnail,omitempty"`
	IsActive       bool    `json:"is_active"`
	OnSale         bool    `json:"on_sale"`
	SaleStopReason *string `json:"sale_stop_reason,omitempty"`
}

func toProgramResponse(p *program.Program) ProgramResponse {
	return ProgramResponse{
		ProgramID:      p.ID(),
		Title:          p.Title(),
		Description:    p.Description(),
		Price:          p.Price(),
		Thumbnail:      p.Thumbnail(),
		IsActive:       p.IsActive(),
		OnSale:         p.OnSale(),
		SaleStopReason: p.SaleStopReason(),
	}
}

// ListPublic returns the published catalog. No auth required.
func (h *ProgramHandler) ListPublic(c *gin.Context) {
	items, err := h.listProgramsUC.ListPublic(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// GetProgram returns the public detail page with the description rendered to
// sanitized HTML. Drafts answer 404.
func (h *ProgramHandler) GetProgram(c *gin.Context) {
	detail, err := h.getProgramUC.Execute(c.Request.Context(), programUsecases.GetProgramQuery{
		ProgramID: c.Param("programID"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", detail)
}

type CreateProgramRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Description  string `json:"description"`
	Price        int64  `json:"price" binding:"min=0"`
	ThumbnailURL string `json:"thumbnail_url"`
}

func (h *ProgramHandler) CreateProgram(c *gin.Context) {
	var req CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	cmd := programUsecases.CreateProgramCommand{
		CoachID:      middleware.UserIDFromContext(c),
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		ThumbnailURL: req.ThumbnailURL,
	}

	created, err := h.createProgramUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toProgramResponse(created))
}

type UpdateProgramRequest struct {
	Title        string  `json:"title" binding:"required,max=200"`
	Description  string  `json:"description"`
	Price        int64   `json:"price" binding:"min=0"`
	ThumbnailURL *string `json:"thumbnail_url"`
}

func (h *ProgramHandler) UpdateProgram(c *gin.Context) {
	var req UpdateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	cmd := programUsecases.UpdateProgramCommand{
		CoachID:      middleware.UserIDFromContext(c),
		ProgramID:    c.Param("programID"),
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		ThumbnailURL: req.ThumbnailURL,
	}

	updated, err := h.updateProgramUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toProgramResponse(updated))
}

type PublishProgramRequest struct {
	Publish *bool `json:"publish" binding:"required"`
}

func (h *ProgramHandler) PublishProgram(c *gin.Context) {
	var req PublishProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	cmd := programUsecases.PublishProgramCommand{
		CoachID:   middleware.UserIDFromContext(c),
		ProgramID: c.Param("programID"),
		Publish:   *req.Publish,
	}

	updated, err := h.publishUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toProgramResponse(updated))
}

type SetSaleStatusRequest struct {
	OnSale     *bool  `json:"on_sale" binding:"required"`
	StopReason string `json:"stop_reason" binding:"max=500"`
}

func (h *ProgramHandler) SetSaleStatus(c *gin.Context) {
	var req SetSaleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	cmd := programUsecases.SetSaleStatusCommand{
		CoachID:    middleware.UserIDFromContext(c),
		ProgramID:  c.Param("programID"),
		OnSale:     *req.OnSale,
		StopReason: req.StopReason,
	}

	updated, err := h.setSaleStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toProgramResponse(updated))
}

// ListMyPrograms returns all of the coach's programs including drafts.
func (h *ProgramHandler) ListMyPrograms(c *gin.Context) {
	items, err := h.listProgramsUC.ListByCoach(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}
