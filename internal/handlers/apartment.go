package handlers

import (
	"errors"
	"net/http"
	"strconv"

	dom "github.com/DoaaAltair/Elite-Home/internal/domain"
	"github.com/DoaaAltair/Elite-Home/internal/dto"
	"github.com/DoaaAltair/Elite-Home/internal/service"

	"github.com/gin-gonic/gin"
)

type ApartmentHandler struct {
	svc *service.ListingService
}

func NewApartmentHandler(svc *service.ListingService) *ApartmentHandler {
	return &ApartmentHandler{svc: svc}
}

// List godoc
// @Summary      List all apartments
// @Tags         apartments
// @Produce      json
// @Success      200  {array}   dto.ApartmentResponse
// @Failure      500  {object}  map[string]string
// @Router       /apartments [get]
func (h *ApartmentHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, apartmentsToResponses(list))
}

// GetByID godoc
// @Summary      Get an apartment by ID
// @Tags         apartments
// @Produce      json
// @Param        id   path      int  true  "Apartment ID"
// @Success      200  {object}  dto.ApartmentResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /apartments/{id} [get]
func (h *ApartmentHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	a, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "apartment not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, apartmentToResponse(a))
}

// Create godoc
// @Summary      Create an apartment
// @Tags         apartments
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateApartmentRequest  true  "Apartment body"
// @Success      201   {object}  dto.CreateApartmentResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /apartments [post]
func (h *ApartmentHandler) Create(c *gin.Context) {
	var req dto.CreateApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "missing required fields"})
		return
	}
	a, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrMissingRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "missing required fields"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateApartmentResponse{ID: a.ID, Message: "apartment created"})
}

// Update godoc
// @Summary      Partially update an apartment
// @Description  Only supplied fields are overwritten; omitted fields keep their value.
// @Tags         apartments
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Apartment ID"
// @Param        body  body      dto.UpdateApartmentRequest  true  "Partial update"
// @Success      200   {object}  dto.ApartmentResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /apartments/{id} [put]
func (h *ApartmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	a, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFieldsToUpdate):
			c.JSON(http.StatusBadRequest, gin.H{"message": "no valid fields to update"})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "apartment not found"})
		default:
			serverError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, apartmentToResponse(a))
}

// Delete godoc
// @Summary      Delete an apartment
// @Tags         apartments
// @Produce      json
// @Param        id   path      int  true  "Apartment ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /apartments/{id} [delete]
func (h *ApartmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "apartment not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "apartment deleted"})
}

// HouseholdDone godoc
// @Summary      Toggle the household done mark
// @Tags         apartments
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Apartment ID"
// @Param        body  body      dto.HouseholdDoneRequest  true  "Done flag"
// @Success      200   {object}  dto.ApartmentResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /apartments/{id}/household-done [patch]
func (h *ApartmentHandler) HouseholdDone(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.HouseholdDoneRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Done == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "missing done flag"})
		return
	}
	a, err := h.svc.SetHouseholdDone(c.Request.Context(), id, *req.Done)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "apartment not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, apartmentToResponse(a))
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return 0, false
	}
	return id, true
}

// serverError hides store detail from the client; the request logger picks
// the attached error up from c.Errors.
func serverError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
}

func apartmentToResponse(a dom.Apartment) dto.ApartmentResponse {
	return dto.ApartmentResponse{
		ID:          a.ID,
		Type:        a.Type,
		Agent:       a.Agent,
		Number:      a.Number,
		Description: a.Description,
		Status:      a.Status,
		Household:   a.Household,
		Photo:       a.Photo,
	}
}

func apartmentsToResponses(list []dom.Apartment) []dto.ApartmentResponse {
	out := make([]dto.ApartmentResponse, len(list))
	for i := range list {
		out[i] = apartmentToResponse(list[i])
	}
	return out
}
