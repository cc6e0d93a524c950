package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/case-service/internal/domain"
	"github.com/spec-kit/case-service/internal/repository"
	apperrors "github.com/spec-kit/case-service/pkg/util/errorutil"
)

const directoryCacheKey = "case-service:directory:users"

// DirectoryEntry is the cacheable, hash-free projection of a system user,
// used to populate assignee choices.
type DirectoryEntry struct {
	ID    string          `json:"id"`
	Email string          `json:"email"`
	Name  string          `json:"name"`
	Role  domain.UserRole `json:"role"`
}

// UserService serves the user directory and role administration.
type UserService struct {
	users    repository.UserRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewUserService constructs the service. cache may be nil; the directory
// then always hits the repository.
func NewUserService(users repository.UserRepository, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *UserService {
	return &UserService{users: users, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// Directory returns the current user list for assignee selection. Reads go
// through a short-TTL cache; a cache failure falls back to the repository.
func (s *UserService) Directory(ctx context.Context) ([]DirectoryEntry, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, directoryCacheKey).Bytes()
		if err == nil {
			var entries []DirectoryEntry
			if jsonErr := json.Unmarshal(cached, &entries); jsonErr == nil {
				return entries, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("directory cache read failed", zap.Error(err))
		}
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]DirectoryEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, DirectoryEntry{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		})
	}

	if s.cache != nil && s.cacheTTL > 0 {
		if payload, err := json.Marshal(entries); err == nil {
			if err := s.cache.Set(ctx, directoryCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("directory cache write failed", zap.Error(err))
			}
		}
	}
	return entries, nil
}

// UpdateRole changes a user's role and invalidates the directory cache.
func (s *UserService) UpdateRole(ctx context.Context, id string, role domain.UserRole) error {
	if role != domain.RoleAdmin && role != domain.RoleUser {
		return apperrors.NewValidationError("unknown role", map[string]any{"role": role})
	}
	if err := s.users.UpdateRole(ctx, id, role); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Del(ctx, directoryCacheKey).Err(); err != nil {
			s.logger.Warn("directory cache invalidation failed", zap.Error(err))
		}
	}
	return nil
}
