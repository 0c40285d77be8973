package command

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/AY-10/inventryy/internal/user/domain"
	"github.com/AY-10/inventryy/pkg/auth"
)

type memUserRepo struct {
	mu     sync.Mutex
	users  map[uint]*domain.User
	nextID uint
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uint]*domain.User), nextID: 1}
}

func (r *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindAll(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return nil, nil
}

func (r *memUserRepo) UpdateRole(ctx context.Context, id uint, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.Role = role
	return nil
}

func (r *memUserRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func TestRegisterThenLogin(t *testing.T) {
	repo := newMemUserRepo()
	register := NewRegisterUserHandler(repo, nil)
	login := NewLoginUserHandler(repo, nil)

	user, err := register.Handle(context.Background(), RegisterUserCommand{
		Username: "cashier",
		Email:    "cashier@example.com",
		Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Password == "s3cret" {
		t.Fatal("password stored in plaintext")
	}
	if user.Role != auth.RoleAdmin {
		t.Errorf("role = %q, want %q", user.Role, auth.RoleAdmin)
	}

	result, err := login.Handle(context.Background(), LoginUserCommand{
		Username: "cashier",
		Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" {
		t.Error("no token issued")
	}
	if result.User.ID != user.ID {
		t.Errorf("user ID = %d, want %d", result.User.ID, user.ID)
	}
}

func TestLogin_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	repo := newMemUserRepo()
	register := NewRegisterUserHandler(repo, nil)
	login := NewLoginUserHandler(repo, nil)

	if _, err := register.Handle(context.Background(), RegisterUserCommand{
		Username: "cashier",
		Email:    "cashier@example.com",
		Password: "s3cret",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, wrongPass := login.Handle(context.Background(), LoginUserCommand{Username: "cashier", Password: "wrong"})
	_, unknown := login.Handle(context.Background(), LoginUserCommand{Username: "nobody", Password: "s3cret"})

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", wrongPass)
	}
	if !errors.Is(unknown, domain.ErrInvalidCredentials) {
		t.Errorf("unknown user err = %v, want ErrInvalidCredentials", unknown)
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := newMemUserRepo()
	register := NewRegisterUserHandler(repo, nil)

	cmd := RegisterUserCommand{Username: "cashier", Email: "a@example.com", Password: "s3cret"}
	if _, err := register.Handle(context.Background(), cmd); err != nil {
		t.Fatalf("register: %v", err)
	}

	cmd.Email = "b@example.com"
	if _, err := register.Handle(context.Background(), cmd); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("err = %v, want ErrUsernameTaken", err)
	}
}

func TestChangeRole(t *testing.T) {
	repo := newMemUserRepo()
	register := NewRegisterUserHandler(repo, nil)
	changeRole := NewChangeRoleHandler(repo, nil)

	user, err := register.Handle(context.Background(), RegisterUserCommand{
		Username: "manager",
		Email:    "manager@example.com",
		Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := changeRole.Handle(context.Background(), ChangeRoleCommand{
		UserID: user.ID,
		Role:   auth.RoleSuperAdmin,
	}); err != nil {
		t.Fatalf("change role: %v", err)
	}

	updated, _ := repo.FindByID(context.Background(), user.ID)
	if updated.Role != auth.RoleSuperAdmin {
		t.Errorf("role = %q, want %q", updated.Role, auth.RoleSuperAdmin)
	}

	if err := changeRole.Handle(context.Background(), ChangeRoleCommand{
		UserID: user.ID,
		Role:   "owner",
	}); err == nil {
		t.Fatal("unknown role accepted")
	}
}
