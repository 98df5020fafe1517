package auth

import (
	"context"
	"testing"
	"time"
)

// memoryRepository is an in-memory UserRepository for service tests.
type memoryRepository struct {
	byEmail map[string]*User
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{byEmail: make(map[string]*User)}
}

func (r *memoryRepository) Create(ctx context.Context, user *User) error {
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	r.byEmail[user.Email] = user
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *memoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, ErrUserNotFound
}

func newTestService() (*TokenService, *memoryRepository) {
	repo := newMemoryRepository()
	svc := NewTokenService(Config{SecretKey: "test-secret", TokenDuration: time.Hour}, repo)
	return svc, repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "Someone@Example.com", "correct horse")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "someone@example.com" {
		t.Errorf("email should be normalized, got %q", user.Email)
	}
	if user.PasswordHash == "correct horse" {
		t.Error("password must be stored hashed")
	}

	token, err := svc.Login(ctx, "someone@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Errorf("claims = %+v, want user %s", claims, user.ID)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@b.c", "password1"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(ctx, "a@b.c", "password2"); err != ErrUserExists {
		t.Errorf("expected ErrUserExists, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@b.c", "password1"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Login(ctx, "a@b.c", "password2"); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, "missing@b.c", "password1"); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.ValidateToken("not-a-token"); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateTokenRejectsOtherSecret(t *testing.T) {
	svc, _ := newTestService()
	other := NewTokenService(Config{SecretKey: "other-secret", TokenDuration: time.Hour}, newMemoryRepository())

	ctx := context.Background()
	if _, err := svc.Register(ctx, "a@b.c", "password1"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	token, err := svc.Login(ctx, "a@b.c", "password1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, err := other.ValidateToken(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken across secrets, got %v", err)
	}
}
