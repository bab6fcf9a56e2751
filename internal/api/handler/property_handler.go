package handler

import (
	"encoding/json"
	"net/http"
	"realestate_crud/internal/app/service"
	"realestate_crud/internal/common"
	"realestate_crud/internal/domain/repository"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type PropertyHandler struct {
	propertyService *service.PropertyService
}

func NewPropertyHandler(ps *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: ps}
}

func (h *PropertyHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listProperties)          // GET /api/properties
	r.Get("/search", h.searchProperties)  // GET /api/properties/search
	r.Get("/{propertyID}", h.getProperty) // GET /api/properties/42
	r.Post("/", h.createProperty)
	r.Put("/{propertyID}", h.updateProperty)
	r.Delete("/{propertyID}", h.deleteProperty)
}

// parsePageParams reads page and size with the frontend's defaults:
// page 0, size 5.
func parsePageParams(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 0 {
		page = 0
	}
	size, err := strconv.Atoi(r.URL.Query().Get("size"))
	if err != nil || size <= 0 {
		size = 5
	}
	return page, size
}

func parsePropertyID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "propertyID"), 10, 64)
}

func (h *PropertyHandler) listProperties(w http.ResponseWriter, r *http.Request) {
	page, size := parsePageParams(r)

	result, err := h.propertyService.GetAll(r.Context(), page, size)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, result)
}

func (h *PropertyHandler) searchProperties(w http.ResponseWriter, r *http.Request) {
	page, size := parsePageParams(r)

	var filter repository.PropertyFilter
	if q := r.URL.Query().Get("query"); q != "" {
		filter.Query = &q
	}
	if s := r.URL.Query().Get("maxPrice"); s != "" {
		maxPrice, err := strconv.ParseFloat(s, 64)
		if err != nil {
			common.RespondWithError(w, http.StatusBadRequest, "Invalid maxPrice: "+s)
			return
		}
		filter.MaxPrice = &maxPrice
	}
	if s := r.URL.Query().Get("maxSize"); s != "" {
		maxSize, err := strconv.ParseFloat(s, 64)
		if err != nil {
			common.RespondWithError(w, http.StatusBadRequest, "Invalid maxSize: "+s)
			return
		}
		filter.MaxSize = &maxSize
	}

	result, err := h.propertyService.Search(r.Context(), filter, page, size)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, result)
}

func (h *PropertyHandler) getProperty(w http.ResponseWriter, r *http.Request) {
	id, err := parsePropertyID(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	property, err := h.propertyService.GetByID(r.Context(), id)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	if property == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) createProperty(w http.ResponseWriter, r *http.Request) {
	var details service.PropertyDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	property, err := h.propertyService.Create(r.Context(), details)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) updateProperty(w http.ResponseWriter, r *http.Request) {
	id, err := parsePropertyID(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	var details service.PropertyDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	property, err := h.propertyService.Update(r.Context(), id, details)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) deleteProperty(w http.ResponseWriter, r *http.Request) {
	id, err := parsePropertyID(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	if err := h.propertyService.Delete(r.Context(), id); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
