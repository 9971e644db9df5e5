package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"bloghub/internal/config"
	"bloghub/internal/model"
)

func authTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret",
		AccessTokenMaxAge: 3600,
	}
}

func TestAuthRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a user with a hashed password", func(t *testing.T) {
		userRepo := &mockUserRepo{}
		svc := NewAuthService(userRepo, authTestConfig())

		user, err := svc.Register(ctx, &model.RegisterRequest{
			Username: "  alice  ",
			Password: "correct-horse",
		})
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}

		if user.Username != "alice" {
			t.Errorf("Username = %q, want trimmed %q", user.Username, "alice")
		}
		if user.PasswordHashed == "correct-horse" || user.PasswordHashed == "" {
			t.Error("password must be stored hashed")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHashed), []byte("correct-horse")); err != nil {
			t.Errorf("stored hash does not match the password: %v", err)
		}
	})

	t.Run("blank username is rejected", func(t *testing.T) {
		svc := NewAuthService(&mockUserRepo{}, authTestConfig())

		_, err := svc.Register(ctx, &model.RegisterRequest{Username: "   ", Password: "correct-horse"})
		if !errors.Is(err, model.ErrUsernameRequired) {
			t.Errorf("Register() error = %v, want ErrUsernameRequired", err)
		}
	})

	t.Run("short password is rejected", func(t *testing.T) {
		svc := NewAuthService(&mockUserRepo{}, authTestConfig())

		_, err := svc.Register(ctx, &model.RegisterRequest{Username: "alice", Password: "short"})
		if !errors.Is(err, model.ErrPasswordTooShort) {
			t.Errorf("Register() error = %v, want ErrPasswordTooShort", err)
		}
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		userRepo := &mockUserRepo{
			existsByUsernameFn: func(ctx context.Context, username string) (bool, error) {
				return username == "alice", nil
			},
		}
		svc := NewAuthService(userRepo, authTestConfig())

		_, err := svc.Register(ctx, &model.RegisterRequest{Username: "alice", Password: "correct-horse"})
		if !errors.Is(err, model.ErrUsernameExists) {
			t.Errorf("Register() error = %v, want ErrUsernameExists", err)
		}
		if len(userRepo.createCalls) != 0 {
			t.Error("no user should be created for a taken username")
		}
	})
}

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	userRepo := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*model.User, error) {
			if username == "alice" {
				return &model.User{ID: 1, Username: "alice", PasswordHashed: string(hashed)}, nil
			}
			return nil, model.ErrUserNotFound
		},
	}

	t.Run("issues a signed token for valid credentials", func(t *testing.T) {
		svc := NewAuthService(userRepo, authTestConfig())

		resp, err := svc.Login(ctx, &model.LoginRequest{Username: "alice", Password: "correct-horse"})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		if resp.User == nil || resp.User.ID != 1 {
			t.Error("response should carry the authenticated user")
		}
		if resp.ExpiresIn != 3600 {
			t.Errorf("ExpiresIn = %d, want 3600", resp.ExpiresIn)
		}

		token, err := jwt.Parse(resp.AccessToken, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		if err != nil || !token.Valid {
			t.Fatalf("issued token does not verify: %v", err)
		}
		claims := token.Claims.(jwt.MapClaims)
		if uid, _ := claims["user_id"].(float64); int64(uid) != 1 {
			t.Errorf("user_id claim = %v, want 1", claims["user_id"])
		}
	})

	t.Run("wrong password yields invalid credentials", func(t *testing.T) {
		svc := NewAuthService(userRepo, authTestConfig())

		_, err := svc.Login(ctx, &model.LoginRequest{Username: "alice", Password: "wrong"})
		if !errors.Is(err, model.ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown username yields the same invalid credentials", func(t *testing.T) {
		svc := NewAuthService(userRepo, authTestConfig())

		_, err := svc.Login(ctx, &model.LoginRequest{Username: "ghost", Password: "correct-horse"})
		if !errors.Is(err, model.ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})
}
