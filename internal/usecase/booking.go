package usecase

import (
	"context"
	"errors"
	"strings"

	"bodyshop-chat/internal/domain"
	"bodyshop-chat/internal/vin"
	"bodyshop-chat/pkg/logging"
)

const maxFormFieldLen = 1000

// BookingStore reads and writes booking requests.
type BookingStore interface {
	BookingRecorder
	GetBookingRequest(ctx context.Context, id string) (domain.BookingRequest, bool, error)
}

// BookingService handles the web booking form.
type BookingService struct {
	store  BookingStore
	logger *logging.Logger
}

func NewBookingService(store BookingStore, logger *logging.Logger) (*BookingService, error) {
	if store == nil {
		return nil, errors.New("usecase: booking store must not be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &BookingService{store: store, logger: logger}, nil
}

// BookingForm is a booking submitted outside the chat dialogue.
type BookingForm struct {
	Name          string
	Contact       string
	Service       string
	Vehicle       string
	VIN           string
	PreferredDate string
	PreferredTime string
	Notes         string
}

// Submit validates and stores a form booking and returns its id.
func (s *BookingService) Submit(ctx context.Context, form BookingForm) (string, error) {
	form = trimForm(form)
	if form.Name == "" || form.Contact == "" || form.Service == "" {
		return "", newError(ErrorInvalidInput, "missing_required_field", nil)
	}
	for _, v := range []string{form.Name, form.Contact, form.Service, form.Vehicle, form.PreferredDate, form.PreferredTime, form.Notes} {
		if len(v) > maxFormFieldLen {
			return "", newError(ErrorInvalidInput, "field_too_long", nil)
		}
	}
	if form.VIN != "" && !vin.IsVIN(form.VIN) {
		return "", newError(ErrorInvalidInput, "invalid_vin", nil)
	}

	req := domain.BookingRequest{
		ID:            newUUID(),
		Source:        domain.BookingSourceForm,
		Name:          form.Name,
		Contact:       form.Contact,
		Service:       form.Service,
		Vehicle:       form.Vehicle,
		VIN:           strings.ToUpper(form.VIN),
		VehicleInfo:   vehicleInfo(form.VIN),
		PreferredDate: form.PreferredDate,
		SpecificTime:  form.PreferredTime,
		Notes:         form.Notes,
	}
	if err := s.store.SaveBookingRequest(ctx, req); err != nil {
		return "", newError(ErrorInternal, "dynamodb_write_error", err)
	}
	s.logger.Info("booking form recorded", "booking_id", req.ID)
	return req.ID, nil
}

// Get returns a stored booking request.
func (s *BookingService) Get(ctx context.Context, id string) (domain.BookingRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.BookingRequest{}, newError(ErrorInvalidInput, "missing_id", nil)
	}
	req, ok, err := s.store.GetBookingRequest(ctx, id)
	if err != nil {
		return domain.BookingRequest{}, newError(ErrorInternal, "dynamodb_read_error", err)
	}
	if !ok {
		return domain.BookingRequest{}, newError(ErrorNotFound, "booking_not_found", nil)
	}
	return req, nil
}

func trimForm(f BookingForm) BookingForm {
	return BookingForm{
		Name:          strings.TrimSpace(f.Name),
		Contact:       strings.TrimSpace(f.Contact),
		Service:       strings.TrimSpace(f.Service),
		Vehicle:       strings.TrimSpace(f.Vehicle),
		VIN:           strings.TrimSpace(f.VIN),
		PreferredDate: strings.TrimSpace(f.PreferredDate),
		PreferredTime: strings.TrimSpace(f.PreferredTime),
		Notes:         strings.TrimSpace(f.Notes),
	}
}
