package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"commission-calculator/domain"
	"commission-calculator/logger"
	"commission-calculator/service"
)

type CommissionHandler struct {
	service *service.CommissionService
}

func NewCommissionHandler(service *service.CommissionService) *CommissionHandler {
	return &CommissionHandler{service: service}
}

type compareResponse struct {
	Result  domain.ComparisonResult `json:"result"`
	Summary service.Summary         `json:"summary"`
}

type feeResponse struct {
	SalePrice float64 `json:"sale_price"`
	Fee       float64 `json:"fee"`
	HighValue bool    `json:"high_value"`
	Notice    string  `json:"notice,omitempty"`
}

func (h *CommissionHandler) Compare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.Inputs
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logger.L.Debug("error decoding request body", "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Compare(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSplit) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.L.Error("error comparing commissions", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, compareResponse{Result: result, Summary: service.Present(result)})
}

func (h *CommissionHandler) SplitOptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, h.service.SplitOptions())
}

func (h *CommissionHandler) TransactionFee(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	price, err := strconv.ParseFloat(r.URL.Query().Get("sale_price"), 64)
	if err != nil {
		http.Error(w, "invalid sale_price", http.StatusBadRequest)
		return
	}

	resp := feeResponse{
		SalePrice: price,
		Fee:       service.PerTransactionFee(price),
		HighValue: service.IsHighValue(price),
	}
	if resp.HighValue {
		resp.Notice = service.HighValueNotice
	}
	writeJSON(w, resp)
}

func (h *CommissionHandler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	records, err := h.service.History(r.Context(), limit)
	if err != nil {
		logger.L.Error("error loading history", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, records)
}

func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// writeJSON encodes into a buffer first so a failed encode can still report 500.
func writeJSON(w http.ResponseWriter, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.L.Error("error encoding response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		logger.L.Warn("error writing response", "error", err)
	}
}
