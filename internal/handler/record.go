package handler

import (
	"encoding/json"
	"net/http"

	"github.com/clawguinness/clawboard/internal/ctxkeys"
	"github.com/clawguinness/clawboard/internal/service"
	"github.com/clawguinness/clawboard/internal/validation"
)

type RecordHandler struct {
	recordService *service.RecordService
	limits        Limits
}

func NewRecordHandler(recordService *service.RecordService, limits Limits) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
		limits:        limits,
	}
}

func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, h.limits)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid limit")
		return
	}

	category := r.URL.Query().Get("category")
	records, err := h.recordService.Records(r.Context(), category, limit)
	if err != nil {
		writeInternalError(w, r, err, "failed to list records", "category", category)
		return
	}

	writeSuccess(w, "records", records)
}

type createRecordRequest struct {
	Category    string          `json:"category"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Value       json.RawMessage `json:"value"`
	Unit        *string         `json:"unit"`
	ProofURL    *string         `json:"proof_url"`
}

func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	agent := ctxkeys.Agent(r.Context())

	var req createRecordRequest
	err := decodeJSON(w, r, &req, false)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	value, err := validation.ParseRecordValue(req.Value)
	if err != nil {
		writeValidationError(w, r, err)
		return
	}

	record, err := h.recordService.Create(r.Context(), agent.ID, service.RecordInput{
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		Value:       value,
		Unit:        req.Unit,
		ProofURL:    req.ProofURL,
	})
	if err != nil {
		writeValidationError(w, r, err)
		return
	}

	writeSuccess(w, "record", record)
}
