package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/GeorgeBeta/rkt-regulador2-infra/apperrors"
	"github.com/GeorgeBeta/rkt-regulador2-infra/models"
	"github.com/GeorgeBeta/rkt-regulador2-infra/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	created   []models.FilePdf
	deleted   []models.FilePdfKey
	getResult *models.FilePdf

	createErr error
	getErr    error
	deleteErr error
}

func (s *stubStore) ListByOwner(context.Context, string) ([]models.FilePdf, error) {
	return nil, nil
}

func (s *stubStore) Create(_ context.Context, f models.FilePdf) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, f)
	return nil
}

func (s *stubStore) GetByFilePdfID(context.Context, string) (*models.FilePdf, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.getResult, nil
}

func (s *stubStore) Delete(_ context.Context, key models.FilePdfKey, _ string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *stubStore) IsReady(context.Context) error { return nil }
func (s *stubStore) Name() string                  { return "stubStore" }

func TestCreatePopulatesRecord(t *testing.T) {
	st := &stubStore{}
	svc := services.NewFilePdfServiceImpl(st)

	created, err := svc.Create(context.Background(), "alice", "report.pdf")
	require.NoError(t, err)

	assert.Equal(t, "alice", created.UserID)
	assert.Equal(t, "report.pdf", created.FilePdfName)
	assert.False(t, created.Completed)

	_, err = uuid.Parse(created.FilePdfID)
	assert.NoError(t, err, "filePdfId must be a valid UUID")
	assert.Regexp(t, `^\d+$`, created.CreatedAt, "createdAt is a numeric millisecond string")

	require.Len(t, st.created, 1)
	assert.Equal(t, *created, st.created[0])
}

func TestCreateRejectsEmptyName(t *testing.T) {
	svc := services.NewFilePdfServiceImpl(&stubStore{})

	for _, name := range []string{"", "   ", "\t"} {
		_, err := svc.Create(context.Background(), "alice", name)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	}
}

func TestCreatePropagatesStoreError(t *testing.T) {
	storeErr := errors.New("put failed")
	svc := services.NewFilePdfServiceImpl(&stubStore{createErr: storeErr})

	_, err := svc.Create(context.Background(), "alice", "doc.pdf")
	assert.ErrorIs(t, err, storeErr)
}

func TestDeleteResolvesThenDeletes(t *testing.T) {
	record := &models.FilePdf{
		UserID:    "alice",
		CreatedAt: "1700000000000",
		FilePdfID: "id-1",
	}
	st := &stubStore{getResult: record}
	svc := services.NewFilePdfServiceImpl(st)

	key, err := svc.Delete(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, models.FilePdfKey{UserID: "alice", CreatedAt: "1700000000000"}, *key)
	assert.Equal(t, []models.FilePdfKey{*key}, st.deleted)
}

func TestDeleteUnknownIdSkipsDelete(t *testing.T) {
	st := &stubStore{getErr: apperrors.ErrFilePdfNotFound}
	svc := services.NewFilePdfServiceImpl(st)

	_, err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrFilePdfNotFound)
	assert.Empty(t, st.deleted, "no delete attempted when the lookup misses")
}
