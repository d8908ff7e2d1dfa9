// Package services contains the FilePdf business operations. Services
// validate input and orchestrate store calls; they know nothing about HTTP.
package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/GeorgeBeta/rkt-regulador2-infra/apperrors"
	"github.com/GeorgeBeta/rkt-regulador2-infra/models"
	"github.com/GeorgeBeta/rkt-regulador2-infra/store"
	"github.com/google/uuid"
)

type FilePdfService interface {
	List(ctx context.Context, userID string) ([]models.FilePdf, error)
	Create(ctx context.Context, userID, filePdfName string) (*models.FilePdf, error)
	Delete(ctx context.Context, filePdfID string) (*models.FilePdfKey, error)
}

type FilePdfServiceImpl struct {
	filePdfStore store.FilePdfStore
}

func NewFilePdfServiceImpl(filePdfStore store.FilePdfStore) *FilePdfServiceImpl {
	return &FilePdfServiceImpl{
		filePdfStore: filePdfStore,
	}
}

func (svc *FilePdfServiceImpl) List(ctx context.Context, userID string) ([]models.FilePdf, error) {
	return svc.filePdfStore.ListByOwner(ctx, userID)
}

func (svc *FilePdfServiceImpl) Create(ctx context.Context, userID, filePdfName string) (*models.FilePdf, error) {
	if strings.TrimSpace(filePdfName) == "" {
		return nil, apperrors.NewValidationError("filePdfName", "must not be empty")
	}

	filePdf := models.FilePdf{
		UserID: userID,
		// Milliseconds-since-epoch string, matching existing items.
		CreatedAt:   strconv.FormatInt(time.Now().UnixMilli(), 10),
		FilePdfID:   uuid.NewString(),
		FilePdfName: filePdfName,
		Completed:   false,
	}

	if err := svc.filePdfStore.Create(ctx, filePdf); err != nil {
		return nil, err
	}

	return &filePdf, nil
}

// Delete resolves the record through the secondary index and removes it by
// primary key. The two steps are not transactional; the store's conditional
// delete keeps a concurrent reuse of the key slot from removing an
// unrelated record.
func (svc *FilePdfServiceImpl) Delete(ctx context.Context, filePdfID string) (*models.FilePdfKey, error) {
	filePdf, err := svc.filePdfStore.GetByFilePdfID(ctx, filePdfID)
	if err != nil {
		return nil, err
	}

	key := filePdf.Key()
	if err := svc.filePdfStore.Delete(ctx, key, filePdfID); err != nil {
		return nil, err
	}

	return &key, nil
}
