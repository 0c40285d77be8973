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

// LoginUserCommand represents the command to log a user in
type LoginUserCommand struct {
	Username string
	Password string
}

// LoginResult carries the issued token and the authenticated user
type LoginResult struct {
	Token string
	User  *domain.User
}

// LoginUserHandler handles user login
type LoginUserHandler struct {
	users    domain.UserRepository
	recorder *activity.Recorder
}

// NewLoginUserHandler creates a new login user handler
func NewLoginUserHandler(users domain.UserRepository, recorder *activity.Recorder) *LoginUserHandler {
	return &LoginUserHandler{users: users, recorder: recorder}
}

// Handle executes the login command. Unknown usernames and wrong passwords
// return the same error.
func (h *LoginUserHandler) Handle(ctx context.Context, cmd LoginUserCommand) (*LoginResult, error) {
	user, err := h.users.FindByUsername(ctx, cmd.Username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(cmd.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx).Uint("user_id", user.ID).Str("username", user.Username).Msg("User logged in")

	h.recorder.Record(ctx, user.ID, activitydomain.ActionLogin, "User", user.ID, nil)

	return &LoginResult{Token: token, User: user}, nil
}
