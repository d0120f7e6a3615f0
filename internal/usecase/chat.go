package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"bodyshop-chat/internal/booking"
	"bodyshop-chat/internal/domain"
	"bodyshop-chat/internal/metrics"
	"bodyshop-chat/internal/responder"
	"bodyshop-chat/internal/vin"
	"bodyshop-chat/pkg/logging"
)

const (
	defaultMaxHistory = 20
	maxMessageLen     = 2000
)

const attachmentReply = "Thanks for sending photos! Every repair is different, so the best way to give you an accurate answer " +
	"is an in-person assessment. Estimates are free and take about 15 minutes.\n\n" +
	"[book: Book an Assessment]\n[phone: Call Us]"

// LLMClient generates a reply from the conversation history.
type LLMClient interface {
	Chat(ctx context.Context, system string, history []domain.ChatMessage) (string, error)
	Provider() string
}

// SessionStore keeps in-progress booking dialogues.
type SessionStore interface {
	Get(ctx context.Context, id string) (booking.Session, bool, error)
	Set(ctx context.Context, s booking.Session) error
	Delete(ctx context.Context, id string) error
}

// BookingRecorder persists completed booking requests.
type BookingRecorder interface {
	SaveBookingRequest(ctx context.Context, req domain.BookingRequest) error
}

// ChatService answers one chat turn. Rules are tried in a fixed order and
// the model is consulted only when none of them match.
type ChatService struct {
	responder    *responder.Responder
	sessions     SessionStore
	llm          LLMClient
	recorder     BookingRecorder
	metrics      *metrics.ChatMetrics
	logger       *logging.Logger
	systemPrompt string
	maxHistory   int
}

type ChatOption func(*ChatService)

// WithLLM enables the model path. Without it every unmatched message gets the
// keyword fallback with reason api_key_not_configured.
func WithLLM(llm LLMClient) ChatOption {
	return func(s *ChatService) {
		s.llm = llm
	}
}

func WithBookingRecorder(r BookingRecorder) ChatOption {
	return func(s *ChatService) {
		s.recorder = r
	}
}

func WithMetrics(m *metrics.ChatMetrics) ChatOption {
	return func(s *ChatService) {
		s.metrics = m
	}
}

func WithLogger(l *logging.Logger) ChatOption {
	return func(s *ChatService) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewChatService(r *responder.Responder, sessions SessionStore, opts ...ChatOption) (*ChatService, error) {
	if r == nil {
		return nil, errors.New("usecase: responder must not be nil")
	}
	if sessions == nil {
		return nil, errors.New("usecase: session store must not be nil")
	}
	s := &ChatService{
		responder:  r,
		sessions:   sessions,
		logger:     logging.Default(),
		maxHistory: defaultMaxHistory,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.systemPrompt = buildSystemPrompt(r.Profile())
	return s, nil
}

type ChatInput struct {
	Messages    []domain.ChatMessage
	SessionID   string
	Attachments int
}

// Chat answers the last user message. Errors are *Error values; failures of
// the model never surface here and are reported through the outcome instead.
//
// Uploaded photos always get the in-person assessment reply, whatever the
// message history holds.
func (s *ChatService) Chat(ctx context.Context, in ChatInput) (domain.Outcome, error) {
	if in.Attachments <= 0 {
		if err := validateMessages(in.Messages); err != nil {
			return domain.Outcome{}, err
		}
	}
	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		sessionID = newUUID()
	}

	var out domain.Outcome
	if in.Attachments > 0 {
		out = rulesOutcome(attachmentReply)
	} else {
		var err error
		if out, err = s.respond(ctx, in, sessionID); err != nil {
			return domain.Outcome{}, err
		}
	}
	out.SessionID = sessionID
	s.metrics.ObserveResponse(string(out.Source), string(out.Reason))
	return out, nil
}

func (s *ChatService) respond(ctx context.Context, in ChatInput, sessionID string) (domain.Outcome, error) {
	message := strings.TrimSpace(domain.LastUserMessage(in.Messages))
	if message == "" {
		return domain.Outcome{}, newError(ErrorInvalidInput, "no_user_message", nil)
	}
	if len(message) > maxMessageLen {
		return domain.Outcome{}, newError(ErrorInvalidInput, "message_too_long", nil)
	}

	if text, ok := s.responder.Shortcut(message); ok {
		return rulesOutcome(text), nil
	}

	if text, ok, err := s.continueBooking(ctx, sessionID, message); err != nil {
		return domain.Outcome{}, err
	} else if ok {
		return rulesOutcome(text), nil
	}

	if reply, ok := s.responder.Match(message); ok {
		if reply.VIN != nil {
			s.metrics.ObserveVINDecode(reply.VIN.Make != vin.Unknown)
		}
		return rulesOutcome(s.responder.Enrich(message, reply.Text)), nil
	}

	if s.llm == nil {
		return s.fallback(message, domain.ReasonAPIKeyNotConfigured), nil
	}

	start := time.Now()
	text, err := s.llm.Chat(ctx, s.systemPrompt, s.recentHistory(in.Messages))
	s.metrics.ObserveLLM(s.llm.Provider(), err == nil, time.Since(start).Seconds())
	if err != nil {
		attrs := []any{"provider", s.llm.Provider(), "err", err}
		if status, ok := upstreamStatusCode(err); ok {
			attrs = append(attrs, "status", status)
		}
		s.logger.Warn("llm request failed, using keyword fallback", attrs...)
		return s.fallback(message, domain.ReasonAPIError), nil
	}
	return domain.Outcome{
		Message: s.responder.Enrich(message, strings.TrimSpace(text)),
		Source:  domain.SourceLLM,
	}, nil
}

// continueBooking starts or advances the booking dialogue. It reports false
// when the message is neither the trigger phrase nor part of an active
// dialogue.
func (s *ChatService) continueBooking(ctx context.Context, sessionID, message string) (string, bool, error) {
	if booking.IsTrigger(message) {
		sess, prompt := booking.Start(sessionID)
		if err := s.sessions.Set(ctx, sess); err != nil {
			return "", false, newError(ErrorInternal, "session_write_error", err)
		}
		s.metrics.ObserveSession("started")
		return prompt, true, nil
	}

	sess, ok, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return "", false, newError(ErrorInternal, "session_read_error", err)
	}
	if !ok {
		return "", false, nil
	}

	next, reply := booking.Advance(sess, message)
	if !next.Done() {
		if err := s.sessions.Set(ctx, next); err != nil {
			return "", false, newError(ErrorInternal, "session_write_error", err)
		}
		return reply, true, nil
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Error("failed to delete completed booking session", "session_id", sessionID, "err", err)
	}
	s.metrics.ObserveSession("completed")
	s.recordBooking(ctx, next)
	return reply, true, nil
}

func (s *ChatService) recordBooking(ctx context.Context, sess booking.Session) {
	if s.recorder == nil {
		return
	}
	req := domain.BookingRequest{
		ID:            newUUID(),
		Source:        domain.BookingSourceChat,
		SessionID:     sess.ID,
		Contact:       sess.Contact,
		ContactMethod: sess.ContactMethod,
		Service:       sess.Service,
		Timeframe:     sess.Timeframe,
		DayOfWeek:     sess.DayOfWeek,
		TimeOfDay:     sess.TimeOfDay,
		SpecificTime:  sess.SpecificTime,
		Vehicle:       sess.Vehicle,
		VIN:           sess.VIN,
		VehicleInfo:   vehicleInfo(sess.VIN),
		Notes:         sess.AdditionalInfo,
	}
	if err := s.recorder.SaveBookingRequest(ctx, req); err != nil {
		s.logger.Error("failed to record booking request", "session_id", sess.ID, "booking_id", req.ID, "err", err)
		return
	}
	s.logger.Info("booking request recorded", "session_id", sess.ID, "booking_id", req.ID)
}

func (s *ChatService) fallback(message string, reason domain.DegradedReason) domain.Outcome {
	reply := s.responder.Fallback(message)
	return domain.Outcome{
		Message: s.responder.Enrich(message, reply.Text),
		Source:  domain.SourceFallback,
		Reason:  reason,
	}
}

func (s *ChatService) recentHistory(messages []domain.ChatMessage) []domain.ChatMessage {
	if len(messages) <= s.maxHistory {
		return messages
	}
	return messages[len(messages)-s.maxHistory:]
}

func rulesOutcome(text string) domain.Outcome {
	return domain.Outcome{Message: text, Source: domain.SourceRules}
}

func validateMessages(messages []domain.ChatMessage) error {
	if len(messages) == 0 {
		return newError(ErrorInvalidInput, "empty_messages", nil)
	}
	for _, m := range messages {
		switch m.Role {
		case domain.RoleUser, domain.RoleAssistant, domain.RoleSystem:
		default:
			return newError(ErrorInvalidInput, "invalid_role", nil)
		}
	}
	return nil
}

// vehicleInfo describes a VIN for staff, or returns "" when the make is not
// recognised.
func vehicleInfo(v string) string {
	r := vin.Decode(v)
	if r == nil || r.Make == vin.Unknown {
		return ""
	}
	info := r.Vehicle()
	if paint := r.Paint(); paint != "" {
		info += ", " + paint
	}
	return info
}

type httpStatusCoder interface {
	HTTPStatusCode() int
}

func upstreamStatusCode(err error) (int, bool) {
	var statusErr httpStatusCoder
	if !errors.As(err, &statusErr) {
		return 0, false
	}
	return statusErr.HTTPStatusCode(), true
}

var newUUID = func() string {
	return uuid.NewString()
}
