package command

import (
	"context"
	"fmt"

	"github.com/AY-10/inventryy/internal/activity"
	activitydomain "github.com/AY-10/inventryy/internal/activity/domain"
	"github.com/AY-10/inventryy/internal/user/domain"
	"github.com/AY-10/inventryy/pkg/auth"
	"github.com/AY-10/inventryy/pkg/logger"
)

// ChangeRoleCommand represents the command to change a user's role
type ChangeRoleCommand struct {
	UserID  uint
	Role    string
	ActorID uint
}

// ChangeRoleHandler handles role changes
type ChangeRoleHandler struct {
	users    domain.UserRepository
	recorder *activity.Recorder
}

// NewChangeRoleHandler creates a new change role handler
func NewChangeRoleHandler(users domain.UserRepository, recorder *activity.Recorder) *ChangeRoleHandler {
	return &ChangeRoleHandler{users: users, recorder: recorder}
}

// Handle executes the change role command
func (h *ChangeRoleHandler) Handle(ctx context.Context, cmd ChangeRoleCommand) error {
	if cmd.Role != auth.RoleAdmin && cmd.Role != auth.RoleSuperAdmin {
		return fmt.Errorf("unknown role %q", cmd.Role)
	}

	if err := h.users.UpdateRole(ctx, cmd.UserID, cmd.Role); err != nil {
		return err
	}

	logger.Info(ctx).Uint("user_id", cmd.UserID).Str("role", cmd.Role).Msg("User role changed")

	h.recorder.Record(ctx, cmd.ActorID, activitydomain.ActionUpdate, "User", cmd.UserID, map[string]interface{}{
		"role": cmd.Role,
	})

	return nil
}
