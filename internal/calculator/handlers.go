// Package calculator serves the tip calculator over HTTP.
package calculator

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"tiptime/internal/currency"
	"tiptime/internal/handlers"
	"tiptime/internal/observability"
	"tiptime/internal/tip"
)

// tracer is the tip calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("tip")

const opName = "calculate"

// Handler serves the /tip endpoints.
type Handler struct {
	defaultLocale   language.Tag
	defaultCurrency string
	validate        *validator.Validate
}

// NewHandler returns a Handler formatting with defaultLocale and
// defaultCurrency when a request names neither. An empty defaultCurrency
// means the locale's own currency.
func NewHandler(defaultLocale, defaultCurrency string) (*Handler, error) {
	f, err := currency.NewForLocale(defaultLocale, defaultCurrency)
	if err != nil {
		return nil, fmt.Errorf("default format: %w", err)
	}

	return &Handler{
		defaultLocale:   f.Tag(),
		defaultCurrency: defaultCurrency,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

// Calculate handles POST /tip/calculate.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	h.handleCalculate(w, r, "body", func() (CalculateRequest, error) {
		var req CalculateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, err
		}
		return req, nil
	})
}

// CalculateQuery handles GET /tip/calculate, reading inputs from the query
// string so a form can recompute on every keystroke.
func (h *Handler) CalculateQuery(w http.ResponseWriter, r *http.Request) {
	h.handleCalculate(w, r, "query", func() (CalculateRequest, error) {
		q := r.URL.Query()
		return CalculateRequest{
			BillAmount:  RawInput(q.Get("bill_amount")),
			TipPercent:  RawInput(q.Get("tip_percent")),
			PeopleCount: RawInput(q.Get("people_count")),
			RoundUp:     parseFlag(q.Get("round_up")),
			Locale:      q.Get("locale"),
			Currency:    q.Get("currency"),
		}, nil
	})
}

// Presets handles GET /tip/presets.
func (h *Handler) Presets(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, PresetsResponse{Presets: tip.Presets()})
}

// handleCalculate is the shared implementation of both calculate endpoints.
// Bill, percent and people never cause an error; only a malformed body or an
// unusable locale/currency does.
func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request, source string, decode func() (CalculateRequest, error)) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "tip.calculate",
		trace.WithAttributes(
			attribute.String("tip.source", source),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	req, err := decode()
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid locale or currency", err, http.StatusBadRequest, w)
		return
	}

	f, err := h.formatter(req, r.Header.Get("Accept-Language"))
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "unsupported locale or currency", err, http.StatusBadRequest, w)
		return
	}

	start := time.Now()
	result := tip.Calculate(tip.Input{
		BillAmount:  string(req.BillAmount),
		TipPercent:  string(req.TipPercent),
		PeopleCount: string(req.PeopleCount),
		RoundUp:     req.RoundUp,
	})
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if !finite(result.Tip, result.Total, result.PerPerson) {
		err := fmt.Errorf("bill=%g percent=%g", result.BillAmount, result.TipPercent)
		observability.RecordError(ctx, span, logger, errorCounter, opName, "amount out of range", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.Float64("tip.bill_amount", result.BillAmount),
		attribute.Float64("tip.percent", result.TipPercent),
		attribute.Int("tip.people_count", result.PeopleCount),
		attribute.Bool("tip.round_up", result.RoundUp),
		attribute.String("tip.locale", f.Tag().String()),
		attribute.String("tip.currency", f.Unit().String()),
	)

	attrs := metric.WithAttributes(
		attribute.Bool("round_up", result.RoundUp),
		attribute.String("source", source),
	)
	calcCounter.Add(ctx, 1, attrs)
	calcHistogram.Record(ctx, elapsed, attrs)
	perPersonHistogram.Record(ctx, result.PerPerson, metric.WithAttributes(
		attribute.String("currency", f.Unit().String()),
	))

	span.AddEvent("calculation.complete", trace.WithAttributes(
		attribute.Float64("tip", result.Tip),
		attribute.Float64("total", result.Total),
		attribute.Float64("per_person", result.PerPerson),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("tip calculated",
		zap.String("source", source),
		zap.Float64("bill_amount", result.BillAmount),
		zap.Float64("tip_percent", result.TipPercent),
		zap.Int("people_count", result.PeopleCount),
		zap.Bool("round_up", result.RoundUp),
		zap.Float64("tip", result.Tip),
		zap.Float64("total", result.Total),
		zap.Float64("per_person", result.PerPerson),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, CalculateResponse{
		BillAmount:  result.BillAmount,
		TipPercent:  result.TipPercent,
		PeopleCount: result.PeopleCount,
		RoundUp:     result.RoundUp,
		Tip:         result.Tip,
		Total:       result.Total,
		PerPerson:   result.PerPerson,
		Formatted:   f.Amounts(result),
		Display:     f.Lines(result),
		Locale:      f.Tag().String(),
		Currency:    f.Unit().String(),
	})
}

// formatter picks the locale from the request, then Accept-Language, then
// the configured default. The configured currency applies only with the
// default locale.
func (h *Handler) formatter(req CalculateRequest, acceptLanguage string) (*currency.Formatter, error) {
	if req.Locale != "" {
		return currency.NewForLocale(req.Locale, req.Currency)
	}

	tag := currency.Match(acceptLanguage, h.defaultLocale)
	code := req.Currency
	if code == "" && tag == h.defaultLocale {
		code = h.defaultCurrency
	}
	return currency.NewForTag(tag, code)
}

func parseFlag(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
