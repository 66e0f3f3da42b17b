package service

import (
	"context"
	"errors"
	"mathquiz_backend/internal/config"
	"mathquiz_backend/internal/model"
	"mathquiz_backend/internal/util"
	"testing"
	"time"
)

const testRegistrationCode = "test-code-123"

func newAuthFixture() (*AuthService, *fakeUsers) {
	users := newFakeUsers()
	svc := NewAuthService(users,
		config.JWTConfig{Secret: "unit-test-secret", ExpireTime: time.Hour},
		config.AuthConfig{TeacherRegistrationCode: testRegistrationCode, TeacherEmailSuffixes: []string{".edu", "school"}},
	)
	return svc, users
}

func TestAuthServiceRegisterStudent(t *testing.T) {
	svc, users := newAuthFixture()
	ctx := context.Background()

	u, err := svc.RegisterStudent(ctx, StudentSignupRequest{
		Email: " Asha@Example.com ", Password: "secret1", FullName: "Asha", Class: 9,
	})
	if err != nil {
		t.Fatalf("RegisterStudent() error = %v", err)
	}
	if u.Email != "asha@example.com" || u.Role != model.Student || *u.Class != 9 {
		t.Errorf("user = %+v", u)
	}
	stored, _ := users.FindByEmail(ctx, "asha@example.com")
	if stored.Password == "secret1" {
		t.Errorf("password stored in plain text")
	}

	tests := []struct {
		name    string
		req     StudentSignupRequest
		wantErr error
		kind    util.Kind
	}{
		{"duplicate email", StudentSignupRequest{Email: "asha@example.com", Password: "secret1", FullName: "A", Class: 8}, util.ErrEmailRegistered, util.KindConflict},
		{"bad class", StudentSignupRequest{Email: "b@example.com", Password: "secret1", FullName: "B", Class: 11}, nil, util.KindValidation},
		{"short password", StudentSignupRequest{Email: "c@example.com", Password: "123", FullName: "C", Class: 8}, nil, util.KindValidation},
		{"bad email", StudentSignupRequest{Email: "not-an-email", Password: "secret1", FullName: "D", Class: 8}, nil, util.KindValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterStudent(ctx, tt.req)
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if util.KindOf(err) != tt.kind {
				t.Errorf("kind = %v, want %v", util.KindOf(err), tt.kind)
			}
		})
	}
}

func TestAuthServiceRegisterTeacher(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	tests := []struct {
		name    string
		email   string
		code    string
		wantErr error
		kind    util.Kind
	}{
		{"wrong code", "rao@dps.edu", "guess", util.ErrBadRegistrationKey, util.KindForbidden},
		{"personal email", "rao@gmail.com", testRegistrationCode, nil, util.KindValidation},
		{"institutional suffix", "rao@dps.edu", testRegistrationCode, nil, -1},
		{"teacher in address", "maths.teacher@gmail.com", testRegistrationCode, nil, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := svc.RegisterTeacher(ctx, TeacherSignupRequest{
				Email: tt.email, Password: "secret1", FullName: "Ms. Rao", RegistrationCode: tt.code,
			})
			if tt.kind < 0 {
				if err != nil {
					t.Fatalf("RegisterTeacher() error = %v", err)
				}
				if u.Role != model.Teacher || u.Class != nil {
					t.Errorf("teacher = %+v", u)
				}
				return
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if util.KindOf(err) != tt.kind {
				t.Errorf("kind = %v, want %v", util.KindOf(err), tt.kind)
			}
		})
	}

	svc.SetAuthConfig(config.AuthConfig{})
	_, err := svc.RegisterTeacher(ctx, TeacherSignupRequest{
		Email: "new@dps.edu", Password: "secret1", FullName: "X", RegistrationCode: testRegistrationCode,
	})
	if !errors.Is(err, util.ErrTeacherSignupOff) {
		t.Errorf("disabled signup: got %v", err)
	}
}

func TestAuthServiceLogin(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	if _, err := svc.RegisterStudent(ctx, StudentSignupRequest{Email: "s@example.com", Password: "secret1", FullName: "S", Class: 8}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RegisterTeacher(ctx, TeacherSignupRequest{Email: "t@dps.edu", Password: "secret2", FullName: "T", RegistrationCode: testRegistrationCode}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		role     model.UserRole
		wantErr  error
	}{
		{"student ok", "S@example.com", "secret1", model.Student, nil},
		{"teacher ok", "t@dps.edu", "secret2", model.Teacher, nil},
		{"wrong password", "s@example.com", "nope", model.Student, util.ErrInvalidCredentials},
		{"unknown email", "x@example.com", "secret1", model.Student, util.ErrInvalidCredentials},
		{"student on teacher login", "s@example.com", "secret1", model.Teacher, util.ErrNotTeacher},
		{"teacher on student login", "t@dps.edu", "secret2", model.Student, util.ErrNotStudent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Login(ctx, LoginRequest{Email: tt.email, Password: tt.password}, tt.role)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				if resp != nil {
					t.Errorf("no token may be issued on failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			claims, err := util.ParseJWT(resp.Token, "unit-test-secret")
			if err != nil {
				t.Fatalf("issued token does not parse: %v", err)
			}
			if claims.UserID != resp.User.ID || claims.Role != tt.role {
				t.Errorf("claims = %+v", claims)
			}
		})
	}
}

func TestAuthServiceProfile(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()
	u, err := svc.RegisterStudent(ctx, StudentSignupRequest{Email: "p@example.com", Password: "secret1", FullName: "P", Class: 10})
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.Profile(ctx, u.ID)
	if err != nil || got.FullName != "P" {
		t.Errorf("Profile() = %+v, %v", got, err)
	}
	if _, err := svc.Profile(ctx, 999); !errors.Is(err, util.ErrUserNotFound) {
		t.Errorf("missing user: got %v", err)
	}
}
