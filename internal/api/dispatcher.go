package api

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sectorem/tarificateur/internal/models"
	"github.com/sectorem/tarificateur/internal/scraper"
)

// Client errors surfaced as 400 responses. Supplier-side failures never
// take this path; they ride inside the returned record.
var (
	ErrEmptyReference  = errors.New("reference is required")
	ErrUnknownSupplier = errors.New(`unsupported supplier: use "luxior" or "ami3f"`)
)

// Dispatcher validates lookup requests and routes them to the matching
// supplier adapter.
type Dispatcher struct {
	adapters map[string]scraper.Adapter
	validate *validator.Validate
}

func NewDispatcher(adapters ...scraper.Adapter) *Dispatcher {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("supplier", func(fl validator.FieldLevel) bool {
		switch normalizeSupplier(fl.Field().String()) {
		case models.SupplierLuxior, models.SupplierAmi3f:
			return true
		}
		return false
	})

	byName := make(map[string]scraper.Adapter, len(adapters))
	for _, a := range adapters {
		byName[a.Name()] = a
	}
	return &Dispatcher{adapters: byName, validate: v}
}

// Dispatch runs one validated lookup. A returned error is a client error;
// the record is passed through from the adapter unchanged.
func (d *Dispatcher) Dispatch(ctx context.Context, req models.LookupRequest) (models.ProductRecord, error) {
	if err := d.validate.Struct(req); err != nil {
		return models.ProductRecord{}, clientError(err)
	}
	adapter, ok := d.adapters[normalizeSupplier(req.Supplier)]
	if !ok {
		return models.ProductRecord{}, ErrUnknownSupplier
	}
	return adapter.Lookup(ctx, req.Reference), nil
}

// Adapter exposes a registered adapter by name for the raw probe
// endpoints, which bypass request validation.
func (d *Dispatcher) Adapter(name string) (scraper.Adapter, bool) {
	adapter, ok := d.adapters[name]
	return adapter, ok
}

func normalizeSupplier(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func clientError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			switch fe.Field() {
			case "Reference":
				return ErrEmptyReference
			case "Supplier":
				return ErrUnknownSupplier
			}
		}
	}
	return err
}
