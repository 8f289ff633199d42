// Package policy validates usernames and passwords.
//
// The password composition rule is fixed: 6–50 characters including at least
// one uppercase letter, one lowercase letter, one digit, and one special
// character from `!@#$%^&*(),.?":{}|<>`.
package policy

import (
	"regexp"

	"github.com/dmitrijs2005/authkeeper/internal/common"
)

const (
	UsernameMinLen = 3
	UsernameMaxLen = 20
	PasswordMinLen = 6
	PasswordMaxLen = 50
)

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	upperRe    = regexp.MustCompile(`[A-Z]`)
	lowerRe    = regexp.MustCompile(`[a-z]`)
	digitRe    = regexp.MustCompile(`[0-9]`)
	specialRe  = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// ValidateUsername returns common.ErrInvalidUsername unless the candidate is
// 3–20 characters of letters, digits, and underscores.
func ValidateUsername(candidate string) error {
	if len(candidate) < UsernameMinLen || len(candidate) > UsernameMaxLen {
		return common.ErrInvalidUsername
	}
	if !usernameRe.MatchString(candidate) {
		return common.ErrInvalidUsername
	}
	return nil
}

// ValidatePassword returns common.ErrWeakPassword unless the candidate
// satisfies the composition rule documented on the package.
func ValidatePassword(candidate string) error {
	if len(candidate) < PasswordMinLen || len(candidate) > PasswordMaxLen {
		return common.ErrWeakPassword
	}
	for _, re := range []*regexp.Regexp{upperRe, lowerRe, digitRe, specialRe} {
		if !re.MatchString(candidate) {
			return common.ErrWeakPassword
		}
	}
	return nil
}

// Strength rates a password as "Weak", "Medium", or "Strong". It is advisory
// only; ValidatePassword is what gates registration.
func Strength(candidate string) string {
	score := 0
	if len(candidate) >= 8 {
		score++
	}
	for _, re := range []*regexp.Regexp{upperRe, lowerRe, digitRe, specialRe} {
		if re.MatchString(candidate) {
			score++
		}
	}
	switch {
	case score == 5:
		return "Strong"
	case score >= 3:
		return "Medium"
	default:
		return "Weak"
	}
}
