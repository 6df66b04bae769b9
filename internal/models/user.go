package models

import (
	"fmt"
	"regexp"
	"strings"
)

// User kullanıcı modelini temsil eder.
// PasswordHash ve PasswordSalt backend'den gelebilir ama hiçbir log
// açıklamasına yazılmaz (bkz. Sanitized).
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	Email        string `json:"email"`
	Password     string `json:"password,omitempty"`
	PasswordHash string `json:"passwordHash,omitempty"`
	PasswordSalt string `json:"passwordSalt,omitempty"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Role         string `json:"role"`
}

// Sanitized hassas alanları temizlenmiş bir kopya döner
func (u User) Sanitized() User {
	u.Password = ""
	u.PasswordHash = ""
	u.PasswordSalt = ""
	return u
}

var (
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRegex = regexp.MustCompile(`^\+?\d{10,15}$`)

	passwordLetter = regexp.MustCompile(`[A-Za-z]`)
	passwordDigit  = regexp.MustCompile(`\d`)
	passwordSymbol = regexp.MustCompile(`[@$!%*?&]`)
)

// CreateUserRequest kullanıcı oluşturma isteği
type CreateUserRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Role     string `json:"role"`
}

// Validate form kurallarını uygular
func (r *CreateUserRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("ad alanı zorunludur")
	}
	if strings.TrimSpace(r.Surname) == "" {
		return fmt.Errorf("soyad alanı zorunludur")
	}
	if !emailRegex.MatchString(r.Email) {
		return fmt.Errorf("geçerli bir email adresi girin")
	}
	if err := validatePassword(r.Password); err != nil {
		return err
	}
	if !phoneRegex.MatchString(r.Phone) {
		return fmt.Errorf("telefon numarası 10-15 haneli olmalıdır")
	}
	return nil
}

// UpdateUserRequest kullanıcı güncelleme isteği; şifre alanları opsiyonel
type UpdateUserRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Role    string `json:"role"`
}

// Validate güncelleme kurallarını uygular
func (r *UpdateUserRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("ad alanı zorunludur")
	}
	if strings.TrimSpace(r.Surname) == "" {
		return fmt.Errorf("soyad alanı zorunludur")
	}
	if !emailRegex.MatchString(r.Email) {
		return fmt.Errorf("geçerli bir email adresi girin")
	}
	if !phoneRegex.MatchString(r.Phone) {
		return fmt.Errorf("telefon numarası 10-15 haneli olmalıdır")
	}
	return nil
}

// validatePassword min 8 karakter, harf + rakam + sembol ister
func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("şifre en az 8 karakter olmalıdır")
	}
	if !passwordLetter.MatchString(password) || !passwordDigit.MatchString(password) || !passwordSymbol.MatchString(password) {
		return fmt.Errorf("şifre harf, rakam ve sembol içermelidir")
	}
	return nil
}

// LoginRequest giriş isteği
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate giriş alanlarını kontrol eder
func (r *LoginRequest) Validate() error {
	if !emailRegex.MatchString(r.Email) {
		return fmt.Errorf("geçerli bir email adresi girin")
	}
	if r.Password == "" {
		return fmt.Errorf("şifre alanı zorunludur")
	}
	return nil
}

// LoginResponse backend'in giriş yanıtı
type LoginResponse struct {
	Token string `json:"token"`
}
