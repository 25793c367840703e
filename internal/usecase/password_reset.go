package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/viniciusbarbosa/agendabarber-api/internal/config"
	"github.com/viniciusbarbosa/agendabarber-api/internal/mailer"
	"github.com/viniciusbarbosa/agendabarber-api/internal/repository"
	"github.com/viniciusbarbosa/agendabarber-api/internal/security"
)

// PasswordResetUsecase defines the business logic for the reset-token
// lifecycle: issue a single-use, time-limited token and consume it exactly
// once.
type PasswordResetUsecase interface {
	// RequestReset issues a fresh token for the account with the given email
	// and mails a reset link. A new token replaces any previous one.
	RequestReset(ctx context.Context, email string) error

	// ResetPassword consumes a token and stores the new password. The token
	// is cleared atomically, so a second call with the same token fails.
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// MailSender is the slice of the mailer needed by this usecase.
type MailSender interface {
	Send(email mailer.Email) error
}

var (
	ErrInvalidResetToken = errors.New("invalid password reset token")
	ErrResetTokenExpired = errors.New("password reset token has expired")
)

// Reset tokens carry 32 random bytes, hex encoded.
const resetTokenBytes = 32

type passwordResetUsecase struct {
	userRepo repository.UserRepository
	mail     MailSender
	cfg      *config.Config
}

// NewPasswordResetUsecase creates a new instance of PasswordResetUsecase.
func NewPasswordResetUsecase(
	userRepo repository.UserRepository,
	mail MailSender,
	cfg *config.Config,
) PasswordResetUsecase {
	return &passwordResetUsecase{
		userRepo: userRepo,
		mail:     mail,
		cfg:      cfg,
	}
}

func (u *passwordResetUsecase) RequestReset(ctx context.Context, email string) error {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	token, err := generateResetToken()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(u.cfg.ResetTokenTTL)

	// Overwrites any earlier token, which invalidates it.
	if err := u.userRepo.SetResetToken(ctx, user.ID, token, expiresAt); err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password/%s", u.cfg.FrontendURL, token)

	return u.mail.Send(mailer.Email{
		To:      []string{user.Email},
		Subject: "Recuperação de senha",
		Body: fmt.Sprintf(
			"Acesse o link abaixo para redefinir sua senha. O link expira em %s:\n\n%s\n\n"+
				"Se você não solicitou isso, ignore este e-mail.",
			u.cfg.ResetTokenTTL, resetLink,
		),
		HTMLBody: fmt.Sprintf(`
			<h2>Recuperação de senha</h2>
			<p>Clique no link abaixo para redefinir sua senha. O link expira em %s:</p>
			<a href="%s">%s</a>
			<br/><br/>
			<p>Se você não solicitou isso, ignore este e-mail.</p>
		`, u.cfg.ResetTokenTTL, resetLink, resetLink),
	})
}

func (u *passwordResetUsecase) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := u.userRepo.GetUserByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	// The expired token stays in place; it fails this check on every attempt.
	if user.ResetExpires == nil || time.Now().After(*user.ResetExpires) {
		return ErrResetTokenExpired
	}

	passwordHash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}

	consumed, err := u.userRepo.ConsumePasswordReset(ctx, user.ID, token, passwordHash)
	if err != nil {
		return err
	}
	if !consumed {
		// A concurrent request consumed or replaced the token first.
		return ErrInvalidResetToken
	}

	return nil
}

func generateResetToken() (string, error) {
	bytes := make([]byte, resetTokenBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
