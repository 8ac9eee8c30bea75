package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/lyepez-glitch/VitalCore/internal/domain"
)

func TestUserRepoCreateDuplicateEmail(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewUserRepo(gdb)

	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'a@example.com' for key 'users.idx_users_email'"))

	err := r.Create(context.Background(), &domain.User{Email: "a@example.com", PasswordHash: "h"})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserRepoFindByEmail(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewUserRepo(gdb)

	rows := sqlmock.NewRows([]string{"id", "email", "password_hash"}).
		AddRow(1, "a@example.com", "hash")
	mock.ExpectQuery("SELECT (.+) FROM `users`").WithArgs("a@example.com", 1).WillReturnRows(rows)

	u, err := r.FindByEmail(context.Background(), "a@example.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if u.ID != 1 || u.PasswordHash != "hash" {
		t.Fatalf("unexpected user %+v", u)
	}
}

func TestUserRepoFindByEmailMissing(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewUserRepo(gdb)

	rows := sqlmock.NewRows([]string{"id", "email", "password_hash"})
	mock.ExpectQuery("SELECT (.+) FROM `users`").WillReturnRows(rows)

	_, err := r.FindByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
