package session

import (
	"sync"

	"github.com/Behyna/sms-services/templateconsole/internal/config"
	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"go.uber.org/zap"
)

// Store keeps the principal the console acts as when a request names none.
type Store interface {
	Current() model.Principal
	Switch(role string) (model.Principal, error)
	SetUser(userID string) model.Principal
}

type store struct {
	mu        sync.RWMutex
	principal model.Principal
	logger    *zap.Logger
}

func NewStore(cfg *config.Config, logger *zap.Logger) Store {
	role, err := model.ParseRole(cfg.Session.DefaultRole)
	if err != nil {
		logger.Warn("Unknown default role, falling back to marketer",
			zap.String("role", cfg.Session.DefaultRole))
		role = model.RoleMarketer
	}

	return &store{
		principal: model.Principal{Role: role, UserID: cfg.Session.DefaultUser},
		logger:    logger,
	}
}

func (s *store) Current() model.Principal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal
}

func (s *store) Switch(value string) (model.Principal, error) {
	role, err := model.ParseRole(value)
	if err != nil {
		return s.Current(), err
	}

	s.mu.Lock()
	previous := s.principal.Role
	s.principal.Role = role
	current := s.principal
	s.mu.Unlock()

	if previous != role {
		s.logger.Info("Role switched", zap.String("from", string(previous)), zap.String("to", string(role)))
	}

	return current, nil
}

func (s *store) SetUser(userID string) model.Principal {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.principal.UserID = userID
	return s.principal
}
