package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"prepwise/internal/model"
	"prepwise/internal/service"
	"prepwise/internal/transport/rest/middleware"
)

// TemplateHandler handles interview template endpoints
type TemplateHandler struct {
	templateSvc *service.TemplateService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateSvc *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateSvc: templateSvc}
}

// CreateTemplateRequest is the request body for creating or updating a template
type CreateTemplateRequest struct {
	CompanyName string        `json:"companyName"`
	LogoURL     string        `json:"logoUrl,omitempty"`
	Description string        `json:"description,omitempty"`
	Rounds      []model.Round `json:"rounds"`
	IsActive    bool          `json:"isActive"`
}

// Create handles POST /v1/templates
func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tmpl := &model.InterviewTemplate{
		CompanyName: req.CompanyName,
		LogoURL:     req.LogoURL,
		Description: req.Description,
		Rounds:      req.Rounds,
		IsActive:    req.IsActive,
	}

	id, err := h.templateSvc.Create(r.Context(), tmpl)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"templateId": id})
}

// List handles GET /v1/templates. Non-admins only see active templates.
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	includeInactive := middleware.IsAdmin(r.Context())

	templates, err := h.templateSvc.List(r.Context(), includeInactive)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"templates": templates})
}

// Get handles GET /v1/templates/{templateId}
func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	templateID := mux.Vars(r)["templateId"]
	includeInactive := middleware.IsAdmin(r.Context())

	tmpl, err := h.templateSvc.GetByID(r.Context(), templateID, includeInactive)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tmpl)
}

// Update handles PUT /v1/templates/{templateId}
func (h *TemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	templateID := mux.Vars(r)["templateId"]

	var req CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tmpl := &model.InterviewTemplate{
		ID:          templateID,
		CompanyName: req.CompanyName,
		LogoURL:     req.LogoURL,
		Description: req.Description,
		Rounds:      req.Rounds,
		IsActive:    req.IsActive,
	}

	if err := h.templateSvc.Update(r.Context(), tmpl); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tmpl)
}

// Delete handles DELETE /v1/templates/{templateId}
func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	templateID := mux.Vars(r)["templateId"]

	if err := h.templateSvc.Delete(r.Context(), templateID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
