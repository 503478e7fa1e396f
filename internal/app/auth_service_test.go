package app_test

import (
	"errors"
	"testing"
	"time"

	"github.com/DRITI2906/HealthMate/internal/app"
	"github.com/DRITI2906/HealthMate/internal/pkg/jwtutil"
)

func newAuthService(store *fakeUserStore) *app.AuthService {
	return app.NewAuthService(store, "test-secret", time.Minute)
}

func TestSignupAndSignin(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	user, err := svc.Signup(app.SignupInput{
		Username:    "alice",
		Email:       "Alice@Example.com",
		Password:    "correct-horse",
		FullName:    "Alice Liddell",
		DateOfBirth: "1990-04-01",
	})
	if err != nil {
		t.Fatalf("Signup err: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected assigned user id")
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email not lowercased: %q", user.Email)
	}
	if user.DateOfBirth == nil || user.DateOfBirth.Format("2006-01-02") != "1990-04-01" {
		t.Fatalf("date of birth not stored: %v", user.DateOfBirth)
	}
	if user.PasswordHash == "correct-horse" {
		t.Fatal("password stored in plain text")
	}

	result, err := svc.Signin(app.SigninInput{Username: "alice", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Signin err: %v", err)
	}
	claims, err := jwtutil.ParseToken("test-secret", result.Token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("token user id: got %d want %d", claims.UserID, user.ID)
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	if _, err := svc.Signup(app.SignupInput{Username: "bob", Email: "bob@example.com", Password: "secret-pass"}); err != nil {
		t.Fatalf("first signup err: %v", err)
	}

	_, err := svc.Signup(app.SignupInput{Username: "bob", Email: "other@example.com", Password: "secret-pass"})
	if !errors.Is(err, app.ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}
	if store.count() != 1 {
		t.Fatalf("conflicting signup mutated rows: count %d", store.count())
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	if _, err := svc.Signup(app.SignupInput{Username: "carol", Email: "carol@example.com", Password: "secret-pass"}); err != nil {
		t.Fatalf("first signup err: %v", err)
	}

	_, err := svc.Signup(app.SignupInput{Username: "carla", Email: "carol@example.com", Password: "secret-pass"})
	if !errors.Is(err, app.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestSignupInvalidDateOfBirthIgnored(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	user, err := svc.Signup(app.SignupInput{
		Username:    "dave",
		Email:       "dave@example.com",
		Password:    "secret-pass",
		DateOfBirth: "not-a-date",
	})
	if err != nil {
		t.Fatalf("Signup err: %v", err)
	}
	if user.DateOfBirth != nil {
		t.Fatalf("invalid dob should be dropped, got %v", user.DateOfBirth)
	}
}

func TestSigninWrongPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	if _, err := svc.Signup(app.SignupInput{Username: "erin", Email: "erin@example.com", Password: "right-password"}); err != nil {
		t.Fatalf("signup err: %v", err)
	}

	_, err := svc.Signin(app.SigninInput{Username: "erin", Password: "wrong-password"})
	if !errors.Is(err, app.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
}

func TestSigninUnknownUser(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	_, err := svc.Signin(app.SigninInput{Username: "ghost", Password: "whatever"})
	if !errors.Is(err, app.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	user, err := svc.Signup(app.SignupInput{Username: "fred", Email: "fred@example.com", Password: "secret-pass"})
	if err != nil {
		t.Fatalf("signup err: %v", err)
	}

	name := "Fred Flintstone"
	badDate := "31-12-1990"
	updated, err := svc.UpdateProfile(user.ID, app.ProfileUpdateInput{
		FullName:    &name,
		DateOfBirth: &badDate,
	})
	if err != nil {
		t.Fatalf("UpdateProfile err: %v", err)
	}
	if updated.FullName != name {
		t.Fatalf("full name not updated: %q", updated.FullName)
	}
	// Malformed dates are silently ignored, not rejected.
	if updated.DateOfBirth != nil {
		t.Fatalf("invalid dob should be ignored, got %v", updated.DateOfBirth)
	}

	goodDate := "1990-12-31"
	updated, err = svc.UpdateProfile(user.ID, app.ProfileUpdateInput{DateOfBirth: &goodDate})
	if err != nil {
		t.Fatalf("UpdateProfile err: %v", err)
	}
	if updated.DateOfBirth == nil || updated.DateOfBirth.Format("2006-01-02") != goodDate {
		t.Fatalf("dob not updated: %v", updated.DateOfBirth)
	}
	if updated.FullName != name {
		t.Fatalf("partial update clobbered full name: %q", updated.FullName)
	}
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	_, err := svc.GetProfile(99)
	if !errors.Is(err, app.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
