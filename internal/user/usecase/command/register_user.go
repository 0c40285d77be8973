package command

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/AY-10/inventryy/internal/activity"
	activitydomain "github.com/AY-10/inventryy/internal/activity/domain"
	"github.com/AY-10/inventryy/internal/user/domain"
	"github.com/AY-10/inventryy/pkg/auth"
	"github.com/AY-10/inventryy/pkg/logger"
)

// RegisterUserCommand represents the command to register a user
type RegisterUserCommand struct {
	Username string
	Email    string
	Password string
	FullName string
	ActorID  uint
}

// RegisterUserHandler handles user registration
type RegisterUserHandler struct {
	users    domain.UserRepository
	recorder *activity.Recorder
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(users domain.UserRepository, recorder *activity.Recorder) *RegisterUserHandler {
	return &RegisterUserHandler{users: users, recorder: recorder}
}

// Handle executes the register user command
func (h *RegisterUserHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*domain.User, error) {
	if _, err := h.users.FindByUsername(ctx, cmd.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username: cmd.Username,
		Email:    cmd.Email,
		Password: string(hashed),
		FullName: cmd.FullName,
		Role:     auth.RoleAdmin,
	}

	if err := h.users.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info(ctx).Uint("user_id", user.ID).Str("username", user.Username).Msg("User registered")

	h.recorder.Record(ctx, cmd.ActorID, activitydomain.ActionCreate, "User", user.ID, map[string]interface{}{
		"username": user.Username,
		"role":     user.Role,
	})

	return user, nil
}
