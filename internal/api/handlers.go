package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ceugb69-B/yen-tracker2/internal/core"
	applog "github.com/ceugb69-B/yen-tracker2/internal/log"
	"github.com/ceugb69-B/yen-tracker2/internal/services"
)

// maxReceiptBytes bounds uploaded receipt images.
const maxReceiptBytes = 10 << 20

type entryRequest struct {
	Date        string          `json:"date"`
	Item        string          `json:"item"`
	Amount      json.RawMessage `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

type entryResponse struct {
	Date        string `json:"date"`
	Item        string `json:"item"`
	Amount      int64  `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

func toEntryResponse(e core.Entry) entryResponse {
	return entryResponse{
		Date:        e.Date.String(),
		Item:        e.Item,
		Amount:      e.Amount.Yen,
		Category:    e.Category.String(),
		Description: e.Description,
	}
}

// coerceAmount accepts both a JSON number and a formatted string ("1,200").
func coerceAmount(raw json.RawMessage) int64 {
	if len(raw) == 0 {
		return 0
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if v, err := n.Int64(); err == nil {
			return v
		}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := core.ParseYen(s); err == nil {
			return v
		}
	}
	return 0
}

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	// A date that fails to parse stays zero and is reported by validation
	// as a missing field together with anything else that is wrong.
	var date core.Date
	if d, err := core.ParseDate(req.Date); err == nil {
		date = d
	}

	// Request fields are overrides on the default draft, so a submission
	// that leaves the category blank lands on the same default the scan
	// flow preselects.
	category := core.Category(strings.TrimSpace(req.Category)).Canonical()
	draft := core.DefaultDraft().Merge(strings.TrimSpace(req.Item), coerceAmount(req.Amount), category)
	entry := draft.Entry(date, strings.TrimSpace(req.Description))

	ref, err := s.ledger.Append(r.Context(), entry)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":  "validation failed",
				"fields": verr.Fields,
			})
			return
		}
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Entry append failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save entry")
		return
	}

	s.overviewCache.Purge()
	s.structured.LogEntryAppended(r.Context(), entry.Item, entry.Amount.Yen, entry.Category.String(), ref)
	writeJSON(w, http.StatusCreated, map[string]any{
		"ref":   ref,
		"entry": toEntryResponse(entry),
	})
}

type reportResponse struct {
	Spent          int64   `json:"spent"`
	Budget         int64   `json:"budget"`
	Remaining      int64   `json:"remaining"`
	PercentSpent   float64 `json:"percent_spent"`
	DaysRemaining  int     `json:"days_remaining"`
	DailyAllowance int64   `json:"daily_allowance"`
	OverBudget     bool    `json:"over_budget"`
}

type monthTotalResponse struct {
	Period string `json:"period"`
	Total  int64  `json:"total"`
}

type categoryTotalResponse struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

type overviewResponse struct {
	Report         reportResponse          `json:"report"`
	MonthTotals    []monthTotalResponse    `json:"month_totals"`
	CategoryTotals []categoryTotalResponse `json:"category_totals"`
	Recent         []entryResponse         `json:"recent"`
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// "at" pins the evaluation instant, mostly useful for inspecting past
	// months. Default is now.
	now := time.Now()
	if v := strings.TrimSpace(r.URL.Query().Get("at")); v != "" {
		d, err := core.ParseDate(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid 'at' date")
			return
		}
		now = d.Time
	}

	// Cached per evaluation day: the report's day-sensitive fields make a
	// coarser key wrong.
	key := core.DateOf(now).String()
	ov, cached := s.overviewCache.Get(key)
	if !cached {
		var err error
		ov, err = s.ledger.Overview(r.Context(), now)
		if err != nil {
			applog.FromContext(r.Context()).ErrorContext(r.Context(), "Overview failed", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to load overview")
			return
		}
		s.overviewCache.Set(key, ov)
	}

	resp := overviewResponse{
		Report: reportResponse{
			Spent:          ov.Report.Spent.Yen,
			Budget:         ov.Report.Budget.Yen,
			Remaining:      ov.Report.Remaining.Yen,
			PercentSpent:   ov.Report.PercentSpent,
			DaysRemaining:  ov.Report.DaysRemaining,
			DailyAllowance: ov.Report.DailyAllowance.Yen,
			OverBudget:     ov.Report.OverBudget,
		},
		MonthTotals:    make([]monthTotalResponse, 0, len(ov.MonthTotals)),
		CategoryTotals: make([]categoryTotalResponse, 0, len(ov.CategoryTotals)),
		Recent:         make([]entryResponse, 0, len(ov.Recent)),
	}
	for _, mt := range ov.MonthTotals {
		resp.MonthTotals = append(resp.MonthTotals, monthTotalResponse{
			Period: mt.Period.String(),
			Total:  mt.Total.Yen,
		})
	}
	for _, ct := range ov.CategoryTotals {
		resp.CategoryTotals = append(resp.CategoryTotals, categoryTotalResponse{
			Category: ct.Category.String(),
			Amount:   ct.Amount.Yen,
		})
	}
	for _, e := range ov.Recent {
		resp.Recent = append(resp.Recent, toEntryResponse(e))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBudget(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		budget, err := s.ledger.Budget(r.Context())
		if err != nil {
			applog.FromContext(r.Context()).ErrorContext(r.Context(), "Budget read failed", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to read budget")
			return
		}
		writeJSON(w, http.StatusOK, map[string]int64{"budget": budget})

	case http.MethodPut:
		var req struct {
			Budget int64 `json:"budget"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		if err := s.ledger.SetBudget(r.Context(), req.Budget); err != nil {
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				writeError(w, http.StatusUnprocessableEntity, "budget must be positive")
				return
			}
			applog.FromContext(r.Context()).ErrorContext(r.Context(), "Budget write failed", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to write budget")
			return
		}
		s.overviewCache.Purge()
		writeJSON(w, http.StatusOK, map[string]int64{"budget": req.Budget})

	default:
		w.Header().Set("Allow", "GET, PUT")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	cats := core.Categories()
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.String())
	}
	writeJSON(w, http.StatusOK, map[string][]string{"categories": names})
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.scanner == nil || !s.scanner.Enabled() {
		writeError(w, http.StatusServiceUnavailable, "receipt scanning is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxReceiptBytes)
	if err := r.ParseMultipartForm(maxReceiptBytes); err != nil {
		writeError(w, http.StatusBadRequest, "expected multipart form with a 'receipt' file")
		return
	}
	file, _, err := r.FormFile("receipt")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing 'receipt' file")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read receipt file")
		return
	}
	if len(image) == 0 {
		writeError(w, http.StatusBadRequest, "empty receipt file")
		return
	}

	draft := s.scanner.Suggest(r.Context(), image)
	writeJSON(w, http.StatusOK, map[string]any{
		"item":     draft.Item,
		"amount":   draft.Amount,
		"category": draft.Category.String(),
	})
}

func (s *Server) handleRewrite(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	rows, err := s.ledger.Rewrite(r.Context())
	if err != nil {
		s.structured.LogError(r.Context(), "Ledger rewrite failed", err,
			applog.ComponentLedger, applog.OpRewrite, applog.NewFields())
		writeError(w, http.StatusInternalServerError, "failed to rewrite ledger")
		return
	}
	s.overviewCache.Purge()
	writeJSON(w, http.StatusOK, map[string]int{"rows": rows})
}
