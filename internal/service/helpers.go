package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-nutri-keeper/internal/store"
)

// Page bounds shared by every paginated listing.
const (
	defaultPageLimit = 50
	maxPageLimit     = 100
)

func normalizePage(limit, offset int) (int, int) {
	switch {
	case limit <= 0:
		limit = defaultPageLimit
	case limit > maxPageLimit:
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// fromStore translates repository sentinels into service errors. what names
// the entity in the resulting message ("meal", "mood log", ...).
func fromStore(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrUserNotFound):
		return fmt.Errorf("%s %w", what, ErrNotFound)
	case errors.Is(err, store.ErrAlreadyExists):
		return fmt.Errorf("%s %w", what, ErrAlreadyExists)
	case errors.Is(err, store.ErrAllergenInUse):
		return ErrAllergenInUse
	case errors.Is(err, store.ErrReferenceNotFound):
		return fmt.Errorf("referenced record %w", ErrNotFound)
	default:
		return err
	}
}
