package session_test

import (
	"sync"
	"testing"

	"github.com/Behyna/sms-services/templateconsole/internal/config"
	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/Behyna/sms-services/templateconsole/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newConfig(role, user string) *config.Config {
	return &config.Config{Session: config.Session{DefaultRole: role, DefaultUser: user}}
}

func TestStore(t *testing.T) {
	logger := zap.NewNop()

	t.Run("starts from configured defaults", func(t *testing.T) {
		s := session.NewStore(newConfig("manager", "sam"), logger)

		assert.Equal(t, model.Principal{Role: model.RoleManager, UserID: "sam"}, s.Current())
	})

	t.Run("unknown default falls back to marketer", func(t *testing.T) {
		s := session.NewStore(newConfig("admin", "sam"), logger)

		assert.Equal(t, model.RoleMarketer, s.Current().Role)
	})

	t.Run("switch keeps the user", func(t *testing.T) {
		s := session.NewStore(newConfig("MARKETER", "alex"), logger)

		p, err := s.Switch(" Manager ")

		require.NoError(t, err)
		assert.Equal(t, model.Principal{Role: model.RoleManager, UserID: "alex"}, p)
		assert.Equal(t, p, s.Current())
	})

	t.Run("invalid switch leaves role untouched", func(t *testing.T) {
		s := session.NewStore(newConfig("MARKETER", "alex"), logger)

		p, err := s.Switch("owner")

		assert.ErrorIs(t, err, model.ErrUnknownRole)
		assert.Equal(t, model.RoleMarketer, p.Role)
	})

	t.Run("concurrent switches are safe", func(t *testing.T) {
		s := session.NewStore(newConfig("MARKETER", "alex"), logger)

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				if i%2 == 0 {
					_, _ = s.Switch("MANAGER")
				} else {
					_ = s.Current()
				}
			}(i)
		}
		wg.Wait()

		assert.Equal(t, model.RoleManager, s.Current().Role)
	})

	t.Run("set user", func(t *testing.T) {
		s := session.NewStore(newConfig("MARKETER", "alex"), logger)

		assert.Equal(t, "jordan", s.SetUser("jordan").UserID)
	})
}
