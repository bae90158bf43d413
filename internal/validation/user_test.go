package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUserCreate(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		role     string
		wantErrs int
	}{
		{
			name:     "valid user",
			userName: "Jane Doe",
			email:    "jane@example.com",
			password: "Sup3rSecret!",
		},
		{
			name:     "password with special outside allowed set",
			userName: "Jane Doe",
			email:    "jane@example.com",
			password: "Sup3rSecret#",
			wantErrs: 1,
		},
		{
			name:     "valid admin",
			userName: "Jane Doe",
			email:    "jane@example.com",
			password: "Sup3rSecret@",
			role:     "admin",
		},
		{
			name:     "weak password",
			userName: "Jane Doe",
			email:    "jane@example.com",
			password: "abc",
			wantErrs: 1,
		},
		{
			name:     "password missing uppercase",
			userName: "Jane Doe",
			email:    "jane@example.com",
			password: "sup3rsecret@",
			wantErrs: 1,
		},
		{
			name:     "name with digits",
			userName: "Jane 2",
			email:    "jane@example.com",
			password: "Sup3rSecret@",
			wantErrs: 1,
		},
		{
			name:     "invalid email",
			userName: "Jane Doe",
			email:    "not-an-email",
			password: "Sup3rSecret@",
			wantErrs: 1,
		},
		{
			name:     "invalid role",
			userName: "Jane Doe",
			email:    "jane@example.com",
			password: "Sup3rSecret@",
			role:     "root",
			wantErrs: 1,
		},
		{
			name:     "everything wrong at once",
			userName: "J",
			email:    "nope",
			password: "weak",
			role:     "root",
			wantErrs: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateUserCreate(tt.userName, tt.email, tt.password, tt.role)
			assert.Len(t, errs, tt.wantErrs)
		})
	}
}

func TestValidateUserUpdate(t *testing.T) {
	strp := func(s string) *string { return &s }

	t.Run("nil fields are skipped", func(t *testing.T) {
		assert.Empty(t, ValidateUserUpdate(nil, nil, nil, nil))
	})

	t.Run("provided password must pass strength rule", func(t *testing.T) {
		errs := ValidateUserUpdate(nil, nil, nil, strp("abc"))
		assert.Len(t, errs, 1)
	})

	t.Run("role enum enforced", func(t *testing.T) {
		errs := ValidateUserUpdate(nil, nil, strp("superuser"), nil)
		assert.Len(t, errs, 1)
	})
}

func TestValidateRegister(t *testing.T) {
	t.Run("weak password rejected", func(t *testing.T) {
		errs := ValidateRegister("Jane Doe", "jane@example.com", "abc")
		assert.Len(t, errs, 1)
	})

	t.Run("valid registration", func(t *testing.T) {
		assert.Empty(t, ValidateRegister("Jane Doe", "jane@example.com", "Sup3rSecret@"))
	})
}

func TestValidateLogin(t *testing.T) {
	t.Run("email and password required", func(t *testing.T) {
		errs := ValidateLogin("", "")
		assert.Len(t, errs, 2)
	})

	t.Run("valid login", func(t *testing.T) {
		assert.Empty(t, ValidateLogin("jane@example.com", "anything"))
	})
}
