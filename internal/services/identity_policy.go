package services

import (
	"regexp"
	"strings"
)

// Login token kinds. A token containing "@" is an email, exactly 16
// digits is a NIK, anything else is treated as a short handle.
const (
	LoginTokenEmail  = "email"
	LoginTokenNIK    = "nik"
	LoginTokenHandle = "handle"
)

var nikPattern = regexp.MustCompile(`^\d{16}$`)
var handlePattern = regexp.MustCompile(`^[a-z0-9]{3,8}$`)

// ClassifyLoginToken normalizes a raw login token and reports how it
// should be resolved to an account.
func ClassifyLoginToken(raw string) (string, string) {
	token := strings.TrimSpace(raw)
	if strings.Contains(token, "@") {
		return LoginTokenEmail, strings.ToLower(token)
	}
	if nikPattern.MatchString(token) {
		return LoginTokenNIK, token
	}
	return LoginTokenHandle, strings.ToLower(token)
}

func NormalizeHandle(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func ValidHandle(handle string) bool {
	return handlePattern.MatchString(handle)
}

func ValidNIK(nik string) bool {
	return nikPattern.MatchString(nik)
}
