package utils

import (
	"fmt"
	"log/slog"
)

// SendPasswordResetEmail stands in for a real mail provider: the reset
// link is written to the log instead of being delivered.
func SendPasswordResetEmail(log *slog.Logger, email, token string) error {
	resetLink := fmt.Sprintf("http://localhost:3000/reset-password?token=%s", token)
	log.Info("password reset email (simulated)",
		"to", email,
		"subject", "Reset Your Password",
		"link", resetLink,
	)
	return nil
}
