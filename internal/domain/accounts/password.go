package accounts

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// commonPasswords es un subconjunto pragmático de la lista clásica de
// contraseñas filtradas. Comparación en minúsculas.
var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "passw0rd": {},
	"12345678": {}, "123456789": {}, "1234567890": {}, "87654321": {},
	"qwerty": {}, "qwertyuiop": {}, "qwerty123": {}, "asdfghjkl": {},
	"iloveyou": {}, "sunshine": {}, "princess": {}, "superman": {},
	"football": {}, "baseball": {}, "trustno1": {}, "welcome1": {},
	"letmein": {}, "letmein1": {}, "monkey123": {}, "dragon123": {},
	"abc12345": {}, "abcd1234": {}, "11111111": {}, "00000000": {},
	"changeme": {}, "whatever": {}, "internet": {}, "computer": {},
}

// ValidatePassword aplica la política de registro:
// mínimo 8, no totalmente numérica, no común, no parecida a los datos
// del propio usuario. Devuelve los mensajes de violación (vacío = ok).
func ValidatePassword(password string, profile ...string) []string {
	var out []string

	if len(password) < minPasswordLength {
		out = append(out, "This password is too short. It must contain at least 8 characters.")
	}
	if entirelyNumeric(password) {
		out = append(out, "This password is entirely numeric.")
	}
	if _, common := commonPasswords[strings.ToLower(password)]; common {
		out = append(out, "This password is too commonly used.")
	}
	if similarToProfile(password, profile) {
		out = append(out, "The password is too similar to your other personal information.")
	}

	return out
}

func entirelyNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// similarToProfile detecta contención (en cualquier dirección) entre la
// contraseña y los campos del perfil. Campos muy cortos se ignoran para
// no disparar falsos positivos.
func similarToProfile(password string, profile []string) bool {
	p := strings.ToLower(password)

	for _, field := range profile {
		field = strings.ToLower(strings.TrimSpace(field))
		// Para emails solo interesa la parte local.
		if at := strings.Index(field, "@"); at > 0 {
			field = field[:at]
		}
		if len(field) < 4 {
			continue
		}
		if strings.Contains(p, field) || strings.Contains(field, p) {
			return true
		}
	}
	return false
}

// HashPassword genera el hash bcrypt para almacenar.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword verifica una contraseña contra el hash almacenado.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
