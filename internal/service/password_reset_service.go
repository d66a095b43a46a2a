package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"eleostock/internal/repository"
	"eleostock/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// PasswordResetService handles the OTP flow: a 6-digit code is stored in
// Redis under otp:<email> with a TTL, mailed asynchronously, then traded for
// a new password. Expiry is the TTL itself — no cleanup job.
type PasswordResetService interface {
	ForgotPassword(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

type passwordResetService struct {
	userRepo   repository.UserRepository
	rdb        *redis.Client
	dispatcher *worker.Dispatcher
	ttl        time.Duration
}

func NewPasswordResetService(userRepo repository.UserRepository, rdb *redis.Client, dispatcher *worker.Dispatcher, expiryMinutes int) PasswordResetService {
	return &passwordResetService{
		userRepo:   userRepo,
		rdb:        rdb,
		dispatcher: dispatcher,
		ttl:        time.Duration(expiryMinutes) * time.Minute,
	}
}

func otpKey(email string) string { return "otp:" + email }

// ForgotPassword generates and mails an OTP. An unknown email gets the same
// nil answer as a known one, so the endpoint cannot be used to probe accounts.
func (s *passwordResetService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || !user.IsActive {
		log.Warn().Str("email", email).Msg("demande de réinitialisation pour un compte inconnu")
		return nil
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, otpKey(email), code, s.ttl).Err(); err != nil {
		return err
	}

	payload := worker.EmailJobPayload{
		ToEmail: email,
		Subject: "Réinitialisation de votre mot de passe",
		Body: fmt.Sprintf("Bonjour %s,\n\nVotre code de vérification est : %s\nIl expire dans %d minutes.\n\nSi vous n'êtes pas à l'origine de cette demande, ignorez ce message.",
			user.Firstname, code, int(s.ttl.Minutes())),
	}
	if err := s.dispatcher.EnqueueEmail(ctx, payload); err != nil {
		return err
	}
	log.Info().Str("email", email).Msg("code de réinitialisation envoyé")
	return nil
}

func (s *passwordResetService) VerifyOTP(ctx context.Context, email, code string) error {
	stored, err := s.rdb.Get(ctx, otpKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: code expiré ou inexistant", ErrValidation)
	}
	if err != nil {
		return err
	}
	if stored != code {
		return fmt.Errorf("%w: code incorrect", ErrValidation)
	}
	return nil
}

// ResetPassword verifies the code once more, replaces the password and burns
// the code so it cannot be replayed.
func (s *passwordResetService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if err := s.VerifyOTP(ctx, email, code); err != nil {
		return err
	}
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("%w: utilisateur %s", ErrNotFound, email)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), 12)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}
	return s.rdb.Del(ctx, otpKey(email)).Err()
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
