package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Sanitized(t *testing.T) {
	user := User{
		ID:           1,
		Email:        "ali@example.com",
		Password:     "Password1!",
		PasswordHash: "deadbeef",
		PasswordSalt: "cafebabe",
	}

	clean := user.Sanitized()

	assert.Empty(t, clean.Password)
	assert.Empty(t, clean.PasswordHash)
	assert.Empty(t, clean.PasswordSalt)
	assert.Equal(t, "ali@example.com", clean.Email)

	// Orijinal kopya değişmez
	assert.Equal(t, "deadbeef", user.PasswordHash)

	// omitempty: temiz kopyanın JSON'unda hassas alan adları hiç görünmez
	payload, err := json.Marshal(clean)
	assert.NoError(t, err)
	assert.NotContains(t, string(payload), "passwordHash")
	assert.NotContains(t, string(payload), "passwordSalt")
}

func TestCreateUserRequest_Validate(t *testing.T) {
	valid := CreateUserRequest{
		Name:     "Ayşe",
		Surname:  "Yılmaz",
		Email:    "ayse@example.com",
		Password: "Password1!",
		Phone:    "05321234567",
		Role:     "user",
	}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(r *CreateUserRequest)
	}{
		{"ad boş", func(r *CreateUserRequest) { r.Name = " " }},
		{"soyad boş", func(r *CreateUserRequest) { r.Surname = "" }},
		{"email geçersiz", func(r *CreateUserRequest) { r.Email = "ayse@" }},
		{"şifre kısa", func(r *CreateUserRequest) { r.Password = "Aa1!" }},
		{"şifre sembolsüz", func(r *CreateUserRequest) { r.Password = "Password11" }},
		{"şifre rakamsız", func(r *CreateUserRequest) { r.Password = "Password!!" }},
		{"telefon kısa", func(r *CreateUserRequest) { r.Phone = "532" }},
		{"telefon harfli", func(r *CreateUserRequest) { r.Phone = "0532ABC4567" }},
	}

	for _, tc := range cases {
		req := valid
		tc.mutate(&req)
		assert.Error(t, req.Validate(), tc.name)
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	valid := LoginRequest{Email: "ali@example.com", Password: "x"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&LoginRequest{Email: "bozuk", Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "ali@example.com"}).Validate())
}
