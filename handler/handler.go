package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"bodyshop-chat/internal/domain"
	"bodyshop-chat/internal/usecase"
	"bodyshop-chat/pkg/logging"
)

const (
	correlationHeader = "X-Correlation-Id"

	chatPath     = "/api/chat"
	bookingsPath = "/api/bookings"
)

// Messages shown to end users. Error codes and reasons stay in the logs.
const (
	msgInvalidRequest = "Invalid request"
	msgNotFound       = "Not found"
	msgProcessing     = "Error processing your request"
)

type ChatUseCase interface {
	Chat(ctx context.Context, in usecase.ChatInput) (domain.Outcome, error)
}

type BookingUseCase interface {
	Submit(ctx context.Context, form usecase.BookingForm) (string, error)
	Get(ctx context.Context, id string) (domain.BookingRequest, error)
}

// Handler serves the chat and booking API for both API Gateway and net/http.
type Handler struct {
	chat     ChatUseCase
	bookings BookingUseCase
	logger   *logging.Logger
}

// NewHandler requires a chat use case. bookings may be nil, in which case the
// booking routes answer 404.
func NewHandler(chat ChatUseCase, bookings BookingUseCase, logger *logging.Logger) (*Handler, error) {
	if chat == nil {
		return nil, errors.New("handler: chat use case must not be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{chat: chat, bookings: bookings, logger: logger}, nil
}

type chatRequest struct {
	Messages    []domain.ChatMessage `json:"messages"`
	SessionID   string               `json:"sessionId,omitempty"`
	Attachments []json.RawMessage    `json:"attachments,omitempty"`
}

type chatResponse struct {
	Message       string `json:"message"`
	UsingFallback bool   `json:"usingFallback,omitempty"`
	Reason        string `json:"reason,omitempty"`
	SessionID     string `json:"sessionId"`
}

type bookingRequest struct {
	Name          string `json:"name"`
	Contact       string `json:"contact"`
	Service       string `json:"service"`
	Vehicle       string `json:"vehicle"`
	VIN           string `json:"vin,omitempty"`
	PreferredDate string `json:"preferredDate,omitempty"`
	PreferredTime string `json:"preferredTime,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type bookingCreated struct {
	ID string `json:"id"`
}

type bookingResponse struct {
	ID            string `json:"id"`
	Source        string `json:"source"`
	SessionID     string `json:"sessionId,omitempty"`
	Name          string `json:"name,omitempty"`
	Contact       string `json:"contact,omitempty"`
	ContactMethod string `json:"contactMethod,omitempty"`
	Service       string `json:"service"`
	Timeframe     string `json:"timeframe,omitempty"`
	PreferredDate string `json:"preferredDate,omitempty"`
	DayOfWeek     string `json:"dayOfWeek,omitempty"`
	TimeOfDay     string `json:"timeOfDay,omitempty"`
	SpecificTime  string `json:"specificTime,omitempty"`
	Vehicle       string `json:"vehicle,omitempty"`
	VIN           string `json:"vin,omitempty"`
	VehicleInfo   string `json:"vehicleInfo,omitempty"`
	Notes         string `json:"notes,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handle is the API Gateway proxy entrypoint.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	correlationID := headerValue(req.Headers, correlationHeader)
	if correlationID == "" {
		correlationID = newUUID()
	}

	status, body := h.route(ctx, correlationID, req.HTTPMethod, req.Path, []byte(req.Body))
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":    "application/json",
			correlationHeader: correlationID,
		},
		Body: string(body),
	}, nil
}

func (h *Handler) route(ctx context.Context, correlationID, method, path string, body []byte) (int, []byte) {
	path = strings.TrimSuffix(path, "/")
	switch {
	case path == chatPath && method == http.MethodPost:
		return h.chatTurn(ctx, correlationID, body)
	case path == bookingsPath && method == http.MethodPost:
		return h.submitBooking(ctx, correlationID, body)
	case strings.HasPrefix(path, bookingsPath+"/") && method == http.MethodGet:
		return h.getBooking(ctx, correlationID, strings.TrimPrefix(path, bookingsPath+"/"))
	case path == chatPath || path == bookingsPath || strings.HasPrefix(path, bookingsPath+"/"):
		return encode(http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
	default:
		return encode(http.StatusNotFound, errorResponse{Error: msgNotFound})
	}
}

func (h *Handler) chatTurn(ctx context.Context, correlationID string, body []byte) (int, []byte) {
	var req chatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.logger.Warn("invalid chat body", "correlation_id", correlationID, "err", err)
		return encode(http.StatusBadRequest, errorResponse{Error: msgInvalidRequest})
	}

	out, err := h.chat.Chat(ctx, usecase.ChatInput{
		Messages:    req.Messages,
		SessionID:   req.SessionID,
		Attachments: len(req.Attachments),
	})
	if err != nil {
		return h.errorResponse(correlationID, err)
	}

	h.logger.Info("chat reply",
		"correlation_id", correlationID,
		"session_id", out.SessionID,
		"source", string(out.Source),
		"reason", string(out.Reason),
	)
	return encode(http.StatusOK, chatResponse{
		Message:       out.Message,
		UsingFallback: out.UsingFallback(),
		Reason:        string(out.Reason),
		SessionID:     out.SessionID,
	})
}

func (h *Handler) submitBooking(ctx context.Context, correlationID string, body []byte) (int, []byte) {
	if h.bookings == nil {
		return encode(http.StatusNotFound, errorResponse{Error: msgNotFound})
	}
	var req bookingRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.logger.Warn("invalid booking body", "correlation_id", correlationID, "err", err)
		return encode(http.StatusBadRequest, errorResponse{Error: msgInvalidRequest})
	}

	id, err := h.bookings.Submit(ctx, usecase.BookingForm{
		Name:          req.Name,
		Contact:       req.Contact,
		Service:       req.Service,
		Vehicle:       req.Vehicle,
		VIN:           req.VIN,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Notes:         req.Notes,
	})
	if err != nil {
		return h.errorResponse(correlationID, err)
	}
	return encode(http.StatusCreated, bookingCreated{ID: id})
}

func (h *Handler) getBooking(ctx context.Context, correlationID, id string) (int, []byte) {
	if h.bookings == nil {
		return encode(http.StatusNotFound, errorResponse{Error: msgNotFound})
	}
	b, err := h.bookings.Get(ctx, id)
	if err != nil {
		return h.errorResponse(correlationID, err)
	}
	return encode(http.StatusOK, bookingResponse{
		ID:            b.ID,
		Source:        b.Source,
		SessionID:     b.SessionID,
		Name:          b.Name,
		Contact:       b.Contact,
		ContactMethod: b.ContactMethod,
		Service:       b.Service,
		Timeframe:     b.Timeframe,
		PreferredDate: b.PreferredDate,
		DayOfWeek:     b.DayOfWeek,
		TimeOfDay:     b.TimeOfDay,
		SpecificTime:  b.SpecificTime,
		Vehicle:       b.Vehicle,
		VIN:           b.VIN,
		VehicleInfo:   b.VehicleInfo,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
	})
}

func (h *Handler) errorResponse(correlationID string, err error) (int, []byte) {
	code := usecase.ErrorInternal
	reason := "unexpected_error"
	var usecaseErr *usecase.Error
	if errors.As(err, &usecaseErr) {
		code = usecaseErr.Code
		reason = usecaseErr.Reason
	}

	switch code {
	case usecase.ErrorInvalidInput:
		h.logger.Warn("request rejected", "correlation_id", correlationID, "code", string(code), "reason", reason)
		return encode(http.StatusBadRequest, errorResponse{Error: msgInvalidRequest})
	case usecase.ErrorNotFound:
		return encode(http.StatusNotFound, errorResponse{Error: msgNotFound})
	default:
		h.logger.Error("request failed", "correlation_id", correlationID, "code", string(code), "reason", reason, "err", err)
		return encode(http.StatusInternalServerError, errorResponse{Error: msgProcessing})
	}
}

func encode(status int, v any) (int, []byte) {
	b, err := json.Marshal(v)
	if err != nil {
		return http.StatusInternalServerError, []byte(`{"error":"` + msgProcessing + `"}`)
	}
	return status, b
}

func headerValue(headers map[string]string, key string) string {
	for k, v := range headers {
		if strings.EqualFold(k, key) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

var newUUID = func() string {
	return uuid.NewString()
}
