package handlers

import (
	"net/http"

	"employee-roster/internal/database/models"
	"employee-roster/internal/state"

	"github.com/gin-gonic/gin"
)

// ViewHandler handles HTTP requests for the view state
type ViewHandler struct {
	store     *state.Store
	localizer *Localizer
}

// NewViewHandler creates a new view handler
func NewViewHandler(store *state.Store, localizer *Localizer) *ViewHandler {
	return &ViewHandler{
		store:     store,
		localizer: localizer,
	}
}

// StateResponse is the view state without the employee collection
type StateResponse struct {
	ViewMode         models.ViewMode  `json:"viewMode"`
	CurrentPage      int              `json:"currentPage"`
	ItemsPerPage     int              `json:"itemsPerPage"`
	SortBy           models.SortField `json:"sortBy"`
	SortOrder        models.SortOrder `json:"sortOrder"`
	Language         string           `json:"language"`
	TotalPages       int              `json:"totalPages"`
	Total            int              `json:"total"`
	PageSizeOptions  []int            `json:"pageSizeOptions"`
	SelectedEmployee *models.Employee `json:"selectedEmployee"`
	Loading          bool             `json:"loading"`
	Saving           bool             `json:"saving"`
	LastError        string           `json:"lastError,omitempty"`
}

// SetSortRequest selects the sort field
type SetSortRequest struct {
	SortBy models.SortField `json:"sortBy" binding:"required"`
}

// SetPageRequest selects the current page
type SetPageRequest struct {
	Page int `json:"page" binding:"required"`
}

// SetItemsPerPageRequest selects the page size
type SetItemsPerPageRequest struct {
	ItemsPerPage int `json:"itemsPerPage" binding:"required"`
}

// SetViewModeRequest selects the view mode
type SetViewModeRequest struct {
	ViewMode models.ViewMode `json:"viewMode" binding:"required"`
}

// SetLanguageRequest selects the language
type SetLanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

// GetState returns the current view state
// @Summary Get view state
// @Tags view
// @Produce json
// @Success 200 {object} StateResponse "View state"
// @Router /view [get]
func (h *ViewHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.snapshot())
}

// SetSort sorts by a field, toggling the order when it is already sorted ascending
// @Summary Sort employees
// @Tags view
// @Accept json
// @Produce json
// @Param request body SetSortRequest true "Sort field"
// @Success 200 {object} StateResponse "View state"
// @Failure 400 {object} ErrorResponse "Unknown sort field"
// @Router /view/sort [put]
func (h *ViewHandler) SetSort(c *gin.Context) {
	var req SetSortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.localizer.BadRequest(c, err)
		return
	}
	if err := h.store.SetSort(c.Request.Context(), req.SortBy); err != nil {
		h.localizer.BadRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.snapshot())
}

// SetPage moves to a page
// @Summary Change page
// @Tags view
// @Accept json
// @Produce json
// @Param request body SetPageRequest true "Page number"
// @Success 200 {object} StateResponse "View state"
// @Failure 400 {object} ErrorResponse "Page out of range"
// @Router /view/page [put]
func (h *ViewHandler) SetPage(c *gin.Context) {
	var req SetPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.localizer.BadRequest(c, err)
		return
	}
	if err := h.store.SetPage(c.Request.Context(), req.Page); err != nil {
		h.localizer.BadRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.snapshot())
}

// SetItemsPerPage changes the page size
// @Summary Change page size
// @Tags view
// @Accept json
// @Produce json
// @Param request body SetItemsPerPageRequest true "Page size"
// @Success 200 {object} StateResponse "View state"
// @Failure 400 {object} ErrorResponse "Page size must be positive"
// @Router /view/items-per-page [put]
func (h *ViewHandler) SetItemsPerPage(c *gin.Context) {
	var req SetItemsPerPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.localizer.BadRequest(c, err)
		return
	}
	if err := h.store.SetItemsPerPage(c.Request.Context(), req.ItemsPerPage); err != nil {
		h.localizer.BadRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.snapshot())
}

// SetViewMode switches between table and list
// @Summary Change view mode
// @Tags view
// @Accept json
// @Produce json
// @Param request body SetViewModeRequest true "View mode"
// @Success 200 {object} StateResponse "View state"
// @Failure 400 {object} ErrorResponse "Unknown view mode"
// @Router /view/mode [put]
func (h *ViewHandler) SetViewMode(c *gin.Context) {
	var req SetViewModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.localizer.BadRequest(c, err)
		return
	}
	if err := h.store.SetViewMode(c.Request.Context(), req.ViewMode); err != nil {
		h.localizer.BadRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.snapshot())
}

// SetLanguage changes the language
// @Summary Change language
// @Tags view
// @Accept json
// @Produce json
// @Param request body SetLanguageRequest true "Language code"
// @Success 200 {object} StateResponse "View state"
// @Failure 400 {object} ErrorResponse "Unsupported language"
// @Router /view/language [put]
func (h *ViewHandler) SetLanguage(c *gin.Context) {
	var req SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.localizer.BadRequest(c, err)
		return
	}
	if err := h.store.SetLanguage(c.Request.Context(), req.Language); err != nil {
		h.localizer.BadRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.snapshot())
}

func (h *ViewHandler) snapshot() StateResponse {
	st := h.store.GetState()
	return StateResponse{
		ViewMode:         st.ViewMode,
		CurrentPage:      st.CurrentPage,
		ItemsPerPage:     st.ItemsPerPage,
		SortBy:           st.SortBy,
		SortOrder:        st.SortOrder,
		Language:         st.Language,
		TotalPages:       state.TotalPages(len(st.SortedEmployees), st.ItemsPerPage),
		Total:            len(st.Employees),
		PageSizeOptions:  models.PageSizeOptions,
		SelectedEmployee: st.SelectedEmployee,
		Loading:          st.Loading,
		Saving:           st.Saving,
		LastError:        st.Error,
	}
}
