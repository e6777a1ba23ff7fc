// Package server exposes the plan computation over a JSON HTTP API.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/rehab-plan/internal/config"
	"github.com/iwvelando/rehab-plan/internal/metrics"
	"github.com/iwvelando/rehab-plan/internal/plan"
	"github.com/iwvelando/rehab-plan/pkg/constants"
	"github.com/iwvelando/rehab-plan/pkg/output"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the plan API and the
// Prometheus metrics.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Plan API endpoint (file upload)
	mux.HandleFunc("/api/plan", instrument("/api/plan", h.handlePlan))

	// Plan API endpoint for editor-driven updates
	mux.HandleFunc("/api/editor/plan", instrument("/api/editor/plan", h.handlePlanEditor))

	// Case file serialization endpoint for editor downloads
	mux.HandleFunc("/api/editor/export", instrument("/api/editor/export", h.handleConfigExport))

	mux.HandleFunc("/api/version", h.handleVersion)

	mux.Handle("/metrics", promhttp.Handler())

	return withRequestID(mux)
}

type planResponse struct {
	Plans      []plan.Plan            `json:"plans"`
	CSV        string                 `json:"csv"`
	Warnings   []string               `json:"warnings,omitempty"`
	Duration   string                 `json:"duration"`
	Config     map[string]interface{} `json:"config,omitempty"`
	ConfigYAML string                 `json:"configYaml,omitempty"`
}

type requestIDKey struct{}

// withRequestID tags every request with an ID, reusing the caller's
// X-Request-ID when present, and echoes it in the response.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(constants.RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(constants.RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func instrument(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		metrics.PlanRequests.WithLabelValues(endpoint, strconv.Itoa(rec.status)).Inc()
	}
}

func (h *handler) requestLogger(r *http.Request) *zap.Logger {
	return h.logger.With(zap.String("requestId", requestID(r.Context())))
}

func (h *handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePlan"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		if isTooLarge(err) {
			h.respondTooLarge(w, r, op)
			return
		}
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), op)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, "missing case file", op)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.requestLogger(r).Warn("failed to close uploaded file",
				zap.String("op", op),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to read case file: %v", err), op)
		return
	}

	configBytes := buf.Bytes()
	configMap, err := decodeYAMLToMap(configBytes)
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("error reading config data, %v", err), op)
		return
	}

	h.runPlan(w, r, configBytes, configMap, start, op, "/api/plan")
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

// decodeEditorPayload reads a JSON case file, optionally wrapped in
// {"config": {...}}.
func decodeEditorPayload(r io.Reader) (map[string]interface{}, error) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode case file: %w", err)
	}
	if payload == nil {
		return make(map[string]interface{}), nil
	}

	rawConfig, ok := payload["config"]
	if !ok {
		return payload, nil
	}
	cfgMap, ok := rawConfig.(map[string]interface{})
	if !ok {
		return nil, errors.New("invalid config payload: expected object")
	}
	return cfgMap, nil
}

func (h *handler) handlePlanEditor(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePlanEditor"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	configPayload, err := decodeEditorPayload(r.Body)
	if err != nil {
		h.respondDecodeError(w, r, err, op)
		return
	}

	configBytes, err := yaml.Marshal(configPayload)
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to encode case file: %v", err), op)
		return
	}

	configMap, err := decodeYAMLToMap(configBytes)
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to parse case file: %v", err), op)
		return
	}

	h.runPlan(w, r, configBytes, configMap, start, op, "/api/editor/plan")
}

func (h *handler) handleConfigExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleConfigExport"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	payload, err := decodeEditorPayload(r.Body)
	if err != nil {
		h.respondDecodeError(w, r, err, op)
		return
	}

	yamlBytes, err := marshalOrderedConfigYAML(payload)
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to encode case file: %v", err), op)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
}

// marshalOrderedConfigYAML writes logging and output first, then cases, then
// any other key in alphabetical order.
func marshalOrderedConfigYAML(payload map[string]interface{}) ([]byte, error) {
	items := make([]orderedItem, 0, len(payload))
	seen := make(map[string]struct{})

	for _, key := range []string{"logging", "output", "cases"} {
		if value, ok := payload[key]; ok {
			items = append(items, orderedItem{key: key, value: value})
			seen[key] = struct{}{}
		}
	}

	remainingKeys := make([]string, 0, len(payload))
	for key := range payload {
		if _, already := seen[key]; !already {
			remainingKeys = append(remainingKeys, key)
		}
	}
	sort.Strings(remainingKeys)
	for _, key := range remainingKeys {
		items = append(items, orderedItem{key: key, value: payload[key]})
	}

	return yaml.Marshal(orderedConfig{items: items})
}

type orderedConfig struct {
	items []orderedItem
}

type orderedItem struct {
	key   string
	value interface{}
}

func (o orderedConfig) MarshalYAML() (interface{}, error) {
	mapNode := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, item := range o.items {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: item.key}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(item.value); err != nil {
			return nil, err
		}
		mapNode.Content = append(mapNode.Content, keyNode, valueNode)
	}

	return mapNode, nil
}

func (h *handler) runPlan(w http.ResponseWriter, r *http.Request, configBytes []byte, configMap map[string]interface{}, start time.Time, op, endpoint string) {
	logger := h.requestLogger(r)

	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(configBytes))
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	if err := cfg.ValidateConfiguration(); err != nil {
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid case file: %v", err), op)
		return
	}

	results, err := plan.GetPlans(logger, *cfg)
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to compute plans: %v", err), op)
		return
	}

	var warnings []string
	for _, p := range results {
		metrics.PlansComputed.WithLabelValues(p.Variant).Inc()
		warnings = append(warnings, p.Warnings...)
	}
	metrics.PlanWarnings.Add(float64(len(warnings)))

	elapsed := time.Since(start)
	metrics.PlanDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())

	if configMap == nil {
		configMap = make(map[string]interface{})
	}

	response := planResponse{
		Plans:      results,
		CSV:        output.CsvString(results),
		Warnings:   warnings,
		Duration:   elapsed.String(),
		Config:     configMap,
		ConfigYAML: string(configBytes),
	}

	logger.Info("plans computed",
		zap.String("op", op),
		zap.Int("plans", len(results)),
		zap.Int("warnings", len(warnings)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func decodeYAMLToMap(data []byte) (map[string]interface{}, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return make(map[string]interface{}), nil
	}

	var result map[string]interface{}
	if err := yaml.Unmarshal(trimmed, &result); err != nil {
		return nil, err
	}
	if result == nil {
		result = make(map[string]interface{})
	}
	return result, nil
}

func isTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}

func (h *handler) respondTooLarge(w http.ResponseWriter, r *http.Request, op string) {
	h.respondError(w, r, http.StatusRequestEntityTooLarge,
		fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
}

// respondDecodeError answers 413 when the body hit the upload limit and 400
// for any other malformed editor payload.
func (h *handler) respondDecodeError(w http.ResponseWriter, r *http.Request, err error, op string) {
	if isTooLarge(err) {
		h.respondTooLarge(w, r, op)
		return
	}
	h.respondError(w, r, http.StatusBadRequest, err.Error(), op)
}

func (h *handler) respondError(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.requestLogger(r).Error("plan request failed",
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
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
