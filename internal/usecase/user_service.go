package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/wb_microservices/internal/domain"
	"github.com/Gunvolt24/wb_microservices/internal/ports"
	"github.com/Gunvolt24/wb_microservices/pkg/validate"
)

// Проверка, что UserService удовлетворяет порту транспортного слоя.
var _ ports.UserService = (*UserService)(nil)

// UserService — прикладная логика пользователей.
// Чтение по идентификатору идёт через кэш; удаление инвалидирует запись,
// иначе чтение после удаления отдаст устаревшие данные.
type UserService struct {
	repo  ports.UserRepository
	cache ports.UserCache
	log   ports.Logger
}

// NewUserService — DI-конструктор.
func NewUserService(repo ports.UserRepository, cache ports.UserCache, log ports.Logger) *UserService {
	return &UserService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// GetUser — пользователь по идентификатору: сначала кэш, при промахе — БД.
func (s *UserService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	if err := validate.ID(userID); err != nil {
		return nil, err
	}

	if user, found := s.cache.Get(ctx, userID); found {
		return user, nil
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID failed user_id=%d err=%v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("user not found")
	}

	if setErr := s.cache.Set(ctx, user); setErr != nil {
		s.log.Warnf(ctx, "cache.Set failed user_id=%d err=%v", userID, setErr)
	}
	return user, nil
}

// CreateUser — создание пользователя: имя, затем email; оба должны пройти.
// Поля сохраняются как пришли в запросе (валидация триммит только копию).
func (s *UserService) CreateUser(ctx context.Context, req domain.UserRequest) (*domain.User, error) {
	if err := validate.UserName(req.Name); err != nil {
		return nil, err
	}
	if err := validate.Email(req.Email); err != nil {
		return nil, err
	}

	user := domain.NewUser(req.Name, req.Email)
	if err := s.repo.Save(ctx, user); err != nil {
		s.log.Errorf(ctx, "repo.Save failed err=%v", err)
		return nil, fmt.Errorf("save user: %w", err)
	}

	if setErr := s.cache.Set(ctx, user); setErr != nil {
		s.log.Warnf(ctx, "cache.Set failed user_id=%d err=%v", user.ID, setErr)
	}

	s.log.Infof(ctx, "user created id=%d", user.ID)
	return user, nil
}

// DeleteUser — удаление по идентификатору; отсутствие записи — не ошибка.
func (s *UserService) DeleteUser(ctx context.Context, userID int64) error {
	if err := validate.ID(userID); err != nil {
		return err
	}

	if err := s.repo.DeleteByID(ctx, userID); err != nil {
		s.log.Errorf(ctx, "repo.DeleteByID failed user_id=%d err=%v", userID, err)
		return err
	}

	s.cache.Delete(ctx, userID)
	return nil
}

// ListUsers — все пользователи без валидации (прямой проброс в репозиторий).
func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// WarmUpCache — прогрев кэша всеми пользователями из БД при старте.
func (s *UserService) WarmUpCache(ctx context.Context) error {
	start := time.Now()
	users, err := s.repo.List(ctx)
	if err != nil {
		s.log.Errorf(ctx, "repo.List failed err=%v", err)
		return err
	}
	if warmErr := s.cache.WarmUp(ctx, users); warmErr != nil {
		s.log.Warnf(ctx, "cache.WarmUp failed err=%v", warmErr)
	}
	s.log.Infof(ctx, "cache warmed with %d users in %s", len(users), time.Since(start))
	return nil
}
