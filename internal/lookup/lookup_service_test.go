package lookup_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/seyf-eddine19/HRM/internal/lookup"
	lookuperrors "github.com/seyf-eddine19/HRM/internal/lookup/errors"
	lookupMock "github.com/seyf-eddine19/HRM/internal/lookup/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   lookup.Service
	repo      *lookupMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	dbRedis, redisMock := redismock.NewClientMock()
	repo := lookupMock.NewMockRepository(ctrl)
	svc := lookup.NewService(repo, dbRedis)

	return &serviceDeps{
		service:   svc,
		repo:      repo,
		redismock: redisMock,
	}
}

func TestLookupService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success trims name and invalidates cache", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Create(ctx, lookup.KindDepartment, gomock.Any()).
			DoAndReturn(func(ctx context.Context, kind lookup.Kind, v *lookup.Value) error {
				assert.Equal(t, "Finance", v.Name)
				assert.NotEqual(t, uuid.Nil, v.ID)
				return nil
			})
		deps.redismock.ExpectDel(lookup.GetValuesKey(lookup.KindDepartment)).SetVal(1)

		resp, err := deps.service.Create(ctx, lookup.KindDepartment, lookup.CreateValueRequest{Name: "  Finance  "})
		assert.NoError(t, err)
		assert.Equal(t, "Finance", resp.Name)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("duplicate name maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Create(ctx, lookup.KindJobTitle, gomock.Any()).
			Return(errors.New("UNIQUE constraint failed: job_titles.name"))

		_, err := deps.service.Create(ctx, lookup.KindJobTitle, lookup.CreateValueRequest{Name: "Driver"})
		assert.ErrorIs(t, err, lookuperrors.ErrDuplicateName)
	})
}

func TestLookupService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss loads from repo and fills cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		cacheKey := lookup.GetValuesKey(lookup.KindVisaType)

		values := []lookup.Value{
			{ID: uuid.New(), Name: "Work"},
			{ID: uuid.New(), Name: "Visit"},
		}
		expected := []lookup.ValueResponse{
			{ID: values[0].ID.String(), Name: "Work"},
			{ID: values[1].ID.String(), Name: "Visit"},
		}
		jsonData, _ := json.Marshal(expected)

		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().
			FindAll(ctx, lookup.KindVisaType).
			Return(values, nil)
		deps.redismock.ExpectSet(cacheKey, jsonData, 1*time.Hour).SetVal("OK")

		resp, err := deps.service.GetAll(ctx, lookup.KindVisaType)
		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache hit skips repo", func(t *testing.T) {
		deps := setupServiceTest(t)
		cacheKey := lookup.GetValuesKey(lookup.KindPassportType)

		cached := []lookup.ValueResponse{{ID: uuid.NewString(), Name: "Ordinary"}}
		jsonData, _ := json.Marshal(cached)
		deps.redismock.ExpectGet(cacheKey).SetVal(string(jsonData))

		resp, err := deps.service.GetAll(ctx, lookup.KindPassportType)
		assert.NoError(t, err)
		assert.Equal(t, cached, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})
}

func TestLookupService_GetOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("existing name returns the stored row", func(t *testing.T) {
		deps := setupServiceTest(t)
		existing := &lookup.Value{ID: uuid.New(), Name: "Work"}

		deps.repo.EXPECT().
			FindByName(ctx, lookup.KindVisaType, "Work").
			Return(existing, nil)

		resp, err := deps.service.GetOrCreate(ctx, lookup.KindVisaType, " Work ")
		assert.NoError(t, err)
		assert.Equal(t, existing.ID.String(), resp.ID)
	})

	t.Run("missing name inserts a new row", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByName(ctx, lookup.KindPassportType, "Diplomatic").
			Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			Create(ctx, lookup.KindPassportType, gomock.Any()).
			Return(nil)
		deps.redismock.ExpectDel(lookup.GetValuesKey(lookup.KindPassportType)).SetVal(1)

		resp, err := deps.service.GetOrCreate(ctx, lookup.KindPassportType, "Diplomatic")
		assert.NoError(t, err)
		assert.Equal(t, "Diplomatic", resp.Name)
	})

	t.Run("lost insert race re-reads the winner", func(t *testing.T) {
		deps := setupServiceTest(t)
		winner := &lookup.Value{ID: uuid.New(), Name: "Special"}

		deps.repo.EXPECT().
			FindByName(ctx, lookup.KindPassportType, "Special").
			Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			Create(ctx, lookup.KindPassportType, gomock.Any()).
			Return(errors.New("UNIQUE constraint failed: passport_types.name"))
		deps.repo.EXPECT().
			FindByName(ctx, lookup.KindPassportType, "Special").
			Return(winner, nil)

		resp, err := deps.service.GetOrCreate(ctx, lookup.KindPassportType, "Special")
		assert.NoError(t, err)
		assert.Equal(t, winner.ID.String(), resp.ID)
	})
}

func TestLookupService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("missing row maps to not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()

		deps.repo.EXPECT().
			FindByID(ctx, lookup.KindDepartment, id).
			Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, lookup.KindDepartment, id)
		assert.ErrorIs(t, err, lookuperrors.ErrValueNotFound)
	})

	t.Run("referenced row maps to in-use conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()

		deps.repo.EXPECT().
			FindByID(ctx, lookup.KindDepartment, id).
			Return(&lookup.Value{ID: uuid.MustParse(id), Name: "Finance"}, nil)
		deps.repo.EXPECT().
			Delete(ctx, lookup.KindDepartment, id).
			Return(errors.New("FOREIGN KEY constraint failed"))

		err := deps.service.Delete(ctx, lookup.KindDepartment, id)
		assert.ErrorIs(t, err, lookuperrors.ErrValueInUse)
	})
}
