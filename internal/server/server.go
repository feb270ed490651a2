package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/iwvelando/finance-calculators/internal/catalog"
	"github.com/iwvelando/finance-calculators/internal/config"
	"github.com/iwvelando/finance-calculators/pkg/calculator"
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger      *zap.Logger
	ads         config.AdsConfig
	maxFormSize int64
	version     string
	pages       map[string]*page
}

// NewHandler constructs the HTTP handler that serves the calculator pages,
// the JSON calculation API, and the static assets.
func NewHandler(logger *zap.Logger, ads config.AdsConfig, maxFormSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxFormSize <= 0 {
		maxFormSize = constants.DefaultMaxFormSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	pages, err := loadPages()
	if err != nil {
		panic(fmt.Sprintf("failed to parse embedded templates: %v", err))
	}

	h := &handler{
		logger:      logger,
		ads:         ads,
		maxFormSize: maxFormSize,
		version:     trimmedVersion,
		pages:       pages,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/api/version", h.handleVersion)
	mux.HandleFunc("/api/calculate/{name}", h.handleCalculate)

	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(sub))))

	mux.HandleFunc("/{$}", h.handleIndex)
	for _, category := range catalog.Categories() {
		mux.HandleFunc(category.Path, h.handleCategory(category))
	}
	for _, calc := range catalog.Calculators() {
		mux.HandleFunc(calc.Path, h.handleCalculator(calc))
	}

	return withRequestLogging(logger, mux)
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculate"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	name := r.PathValue("name")
	calc, ok := catalog.Lookup(name)
	if !ok || !calc.Implemented() {
		h.respondErrorWithOp(w, http.StatusNotFound, fmt.Sprintf("unknown calculator %q", name), op)
		return
	}

	if status, err := h.parseForm(w, r); err != nil {
		h.respondErrorWithOp(w, status, err.Error(), op)
		return
	}

	view, err := calc.Compute(r.PostForm)
	if err != nil {
		if errors.Is(err, calculator.ErrValidation) {
			h.logValidation(op, calc.Name, err)
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": calculator.ErrValidation.Error()})
			return
		}
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
		return
	}

	h.writeJSON(w, http.StatusOK, view)
}

// parseForm reads a size-limited form body. The returned status is only
// meaningful when err is non-nil.
func (h *handler) parseForm(w http.ResponseWriter, r *http.Request) (int, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFormSize)
	if err := r.ParseForm(); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return http.StatusRequestEntityTooLarge, fmt.Errorf("form exceeds limit of %d bytes", h.maxFormSize)
		}
		return http.StatusBadRequest, fmt.Errorf("failed to parse form: %w", err)
	}
	return http.StatusOK, nil
}

func (h *handler) logValidation(op, name string, err error) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("calculator", name),
	}
	var vErr *calculator.ValidationError
	if errors.As(err, &vErr) {
		fields = append(fields, zap.String("field", vErr.Field), zap.String("reason", vErr.Reason))
	}
	h.logger.Debug("rejected calculator input", fields...)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("calculator request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
