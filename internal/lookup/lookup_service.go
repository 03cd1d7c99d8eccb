package lookup

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const valuesKeyPrefix = "lookup:values:"

func GetValuesKey(kind Kind) string {
	return valuesKeyPrefix + string(kind)
}

//go:generate mockgen -source=lookup_service.go -destination=mock/lookup_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, kind Kind, req CreateValueRequest) (ValueResponse, error)
	GetAll(ctx context.Context, kind Kind) ([]ValueResponse, error)
	GetByID(ctx context.Context, kind Kind, id string) (ValueResponse, error)
	GetOrCreate(ctx context.Context, kind Kind, name string) (ValueResponse, error)
	Update(ctx context.Context, kind Kind, id string, req UpdateValueRequest) (ValueResponse, error)
	Delete(ctx context.Context, kind Kind, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("lookup.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("lookup.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, kind Kind, req CreateValueRequest) (ValueResponse, error) {
	s.logger.Debug("create lookup value requested",
		zap.String("kind", string(kind)),
		zap.String("name", req.Name),
	)

	value := &Value{
		ID:   uuid.New(),
		Name: strings.TrimSpace(req.Name),
	}
	if err := s.repo.Create(ctx, kind, value); err != nil {
		s.logger.Error("create lookup value persist failed", zap.Error(err))
		return ValueResponse{}, mapRepositoryError(err)
	}

	s.invalidate(ctx, kind)
	s.logger.Info("create lookup value success",
		zap.String("kind", string(kind)),
		zap.String("value_id", value.ID.String()),
	)
	return mapToResponse(*value), nil
}

func (s *service) GetAll(ctx context.Context, kind Kind) ([]ValueResponse, error) {
	cacheKey := GetValuesKey(kind)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []ValueResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		values, err := s.repo.FindAll(ctx, kind)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(values)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]ValueResponse), nil
}

func (s *service) GetByID(ctx context.Context, kind Kind, id string) (ValueResponse, error) {
	value, err := s.repo.FindByID(ctx, kind, id)
	if err != nil {
		s.logger.Error("get lookup value by id failed", zap.Error(err))
		return ValueResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*value), nil
}

// GetOrCreate resolves a name to its row, inserting it when absent. The
// spreadsheet importer leans on this for passport and visa types. A lost
// race on the unique name index falls back to re-reading the winner's row.
func (s *service) GetOrCreate(ctx context.Context, kind Kind, name string) (ValueResponse, error) {
	name = strings.TrimSpace(name)

	if existing, err := s.repo.FindByName(ctx, kind, name); err == nil {
		return mapToResponse(*existing), nil
	}

	value := &Value{
		ID:   uuid.New(),
		Name: name,
	}
	if err := s.repo.Create(ctx, kind, value); err != nil {
		if existing, ferr := s.repo.FindByName(ctx, kind, name); ferr == nil {
			return mapToResponse(*existing), nil
		}
		s.logger.Error("get or create lookup value failed",
			zap.String("kind", string(kind)),
			zap.String("name", name),
			zap.Error(err),
		)
		return ValueResponse{}, mapRepositoryError(err)
	}

	s.invalidate(ctx, kind)
	return mapToResponse(*value), nil
}

func (s *service) Update(ctx context.Context, kind Kind, id string, req UpdateValueRequest) (ValueResponse, error) {
	s.logger.Debug("update lookup value requested",
		zap.String("kind", string(kind)),
		zap.String("value_id", id),
	)

	value, err := s.repo.FindByID(ctx, kind, id)
	if err != nil {
		s.logger.Error("update lookup value fetch existing failed", zap.Error(err))
		return ValueResponse{}, mapRepositoryError(err)
	}

	value.Name = strings.TrimSpace(req.Name)
	if err := s.repo.Update(ctx, kind, value); err != nil {
		s.logger.Error("update lookup value persist failed", zap.Error(err))
		return ValueResponse{}, mapRepositoryError(err)
	}

	s.invalidate(ctx, kind)
	s.logger.Info("update lookup value success",
		zap.String("kind", string(kind)),
		zap.String("value_id", id),
	)
	return mapToResponse(*value), nil
}

func (s *service) Delete(ctx context.Context, kind Kind, id string) error {
	s.logger.Debug("delete lookup value requested",
		zap.String("kind", string(kind)),
		zap.String("value_id", id),
	)

	if _, err := s.repo.FindByID(ctx, kind, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.repo.Delete(ctx, kind, id); err != nil {
		s.logger.Error("delete lookup value failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidate(ctx, kind)
	s.logger.Info("delete lookup value success",
		zap.String("kind", string(kind)),
		zap.String("value_id", id),
	)
	return nil
}

func (s *service) invalidate(ctx context.Context, kind Kind) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetValuesKey(kind)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate lookup values cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func mapToResponse(v Value) ValueResponse {
	return ValueResponse{
		ID:   v.ID.String(),
		Name: v.Name,
	}
}

func mapToListResponse(values []Value) []ValueResponse {
	res := make([]ValueResponse, len(values))
	for i, v := range values {
		res[i] = mapToResponse(v)
	}
	return res
}
