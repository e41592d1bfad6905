package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"prepwise/internal/model"
	"prepwise/internal/service"
)

// QuestionBankHandler handles question bank endpoints
type QuestionBankHandler struct {
	bankSvc *service.QuestionBankService
}

// NewQuestionBankHandler creates a new question bank handler
func NewQuestionBankHandler(bankSvc *service.QuestionBankService) *QuestionBankHandler {
	return &QuestionBankHandler{bankSvc: bankSvc}
}

// Create handles POST /v1/questionbanks
func (h *QuestionBankHandler) Create(w http.ResponseWriter, r *http.Request) {
	var bank model.QuestionBank
	if err := json.NewDecoder(r.Body).Decode(&bank); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.bankSvc.Create(r.Context(), &bank)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"bankId": id})
}

// List handles GET /v1/questionbanks
func (h *QuestionBankHandler) List(w http.ResponseWriter, r *http.Request) {
	banks, err := h.bankSvc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"questionBanks": banks})
}

// Get handles GET /v1/questionbanks/{bankId}
func (h *QuestionBankHandler) Get(w http.ResponseWriter, r *http.Request) {
	bankID := mux.Vars(r)["bankId"]

	bank, err := h.bankSvc.GetByID(r.Context(), bankID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bank)
}
