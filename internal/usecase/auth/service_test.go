package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"career-compass/internal/domain/user"
)

type mockUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User

	createErr error

	// raceEmail makes the first exists check for that email answer false
	// even when a row is present, mimicking a concurrent insert landing
	// between the check and the Create.
	raceEmail   string
	raceChecked bool
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byID:    make(map[uuid.UUID]user.User),
		byEmail: make(map[string]user.User),
	}
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.byEmail[u.Email]; ok {
		return errors.New("unique violation")
	}
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if email == m.raceEmail && !m.raceChecked {
		m.raceChecked = true
		return false, nil
	}
	_, ok := m.byEmail[email]
	return ok, nil
}

var _ user.Repository = (*mockUserRepo)(nil)

func TestRegisterAndLogin(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterInput{Email: " Asha@Example.COM ", Password: "correct horse"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Email != "asha@example.com" {
		t.Fatalf("email not normalized: %q", created.Email)
	}
	if created.PasswordHash != "" {
		t.Fatalf("password hash must never leave the service")
	}

	got, err := svc.Login(ctx, LoginInput{Email: "asha@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("login returned a different user")
	}
	if got.PasswordHash != "" {
		t.Fatalf("password hash must never leave the service")
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(newMockUserRepo())
	ctx := context.Background()

	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"blank email", RegisterInput{Email: "   ", Password: "longenough"}},
		{"short password", RegisterInput{Email: "a@b.com", Password: "short"}},
		{"whitespace password", RegisterInput{Email: "a@b.com", Password: "        "}},
	}
	for _, tc := range cases {
		if _, err := svc.Register(ctx, tc.in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(newMockUserRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Email: "a@b.com", Password: "longenough"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Register(ctx, RegisterInput{Email: "A@B.com", Password: "longenough"}); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegisterLosesCreateRace(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)
	ctx := context.Background()

	// The exists check passes but the insert hits the unique index because
	// another request registered the email in between.
	repo.byEmail["a@b.com"] = user.User{Email: "a@b.com"}
	repo.raceEmail = "a@b.com"

	if _, err := svc.Register(ctx, RegisterInput{Email: "a@b.com", Password: "longenough"}); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}

	// A Create failure with no duplicate row is an internal error.
	repo.createErr = errors.New("connection reset")
	if _, err := svc.Register(ctx, RegisterInput{Email: "b@b.com", Password: "longenough"}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewService(newMockUserRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Email: "a@b.com", Password: "longenough"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Login(ctx, LoginInput{Email: "a@b.com", Password: "wrong password"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewService(newMockUserRepo())

	if _, err := svc.Login(context.Background(), LoginInput{Email: "ghost@b.com", Password: "whatever"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
