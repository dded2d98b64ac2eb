package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-bridge/internal/validators"
	"github.com/MKhiriev/go-pass-bridge/models"
)

// BridgeItemValidationService rejects malformed input before it reaches the
// wrapped service. Reads pass through unchanged.
type BridgeItemValidationService struct {
	inner     BridgeItemService
	validator validators.Validator
	fields    []string
}

// NewBridgeItemValidationService validates every written batch for
// non-empty, unique ids. Display names are not required because remote sync
// may deliver unnamed items.
func NewBridgeItemValidationService() BridgeItemServiceWrapper {
	return &BridgeItemValidationService{
		validator: validators.NewBridgeItemValidator(),
		fields:    []string{validators.FieldItemID, validators.FieldUniqueIDs},
	}
}

func (v *BridgeItemValidationService) InsertItems(ctx context.Context, items []models.BridgeItem, userID string) error {
	if err := v.validate(ctx, items, userID); err != nil {
		return err
	}
	return v.inner.InsertItems(ctx, items, userID)
}

func (v *BridgeItemValidationService) ReplaceAllItems(ctx context.Context, items []models.BridgeItem, userID string) error {
	if err := v.validate(ctx, items, userID); err != nil {
		return err
	}
	return v.inner.ReplaceAllItems(ctx, items, userID)
}

func (v *BridgeItemValidationService) DeleteAllForUserID(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrNoUserID
	}
	return v.inner.DeleteAllForUserID(ctx, userID)
}

func (v *BridgeItemValidationService) FetchAllForUserID(ctx context.Context, userID string) ([]models.BridgeItem, error) {
	if userID == "" {
		return nil, ErrNoUserID
	}
	return v.inner.FetchAllForUserID(ctx, userID)
}

func (v *BridgeItemValidationService) AvailableItems(ctx context.Context, userID string) []models.BridgeItem {
	return v.inner.AvailableItems(ctx, userID)
}

func (v *BridgeItemValidationService) ItemsStream(ctx context.Context, userID string) (<-chan []models.BridgeItem, error) {
	if userID == "" {
		return nil, ErrNoUserID
	}
	return v.inner.ItemsStream(ctx, userID)
}

func (v *BridgeItemValidationService) EnsureKey(ctx context.Context) error {
	return v.inner.EnsureKey(ctx)
}

func (v *BridgeItemValidationService) ResetKey(ctx context.Context) error {
	return v.inner.ResetKey(ctx)
}

func (v *BridgeItemValidationService) Wrap(inner BridgeItemService) BridgeItemService {
	v.inner = inner
	return v
}

func (v *BridgeItemValidationService) validate(ctx context.Context, items []models.BridgeItem, userID string) error {
	if userID == "" {
		return ErrNoUserID
	}
	if err := v.validator.Validate(ctx, items, v.fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
