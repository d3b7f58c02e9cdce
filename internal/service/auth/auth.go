package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/clinovahq/clinova_backend/config"
	"github.com/clinovahq/clinova_backend/internal/repo"
	entuser "github.com/clinovahq/clinova_backend/internal/repo/user"
	entsession "github.com/clinovahq/clinova_backend/internal/repo/usersession"
	"github.com/clinovahq/clinova_backend/internal/service/audit"
	"github.com/clinovahq/clinova_backend/pkg/authorize"
	"github.com/clinovahq/clinova_backend/pkg/crypto"
	"github.com/clinovahq/clinova_backend/pkg/email"
	pasetotoken "github.com/clinovahq/clinova_backend/pkg/paseto"
	"github.com/clinovahq/clinova_backend/pkg/util/otp"
	"github.com/clinovahq/clinova_backend/pkg/util/password"
)

const (
	maxLoginAttempts = 5
	accountLockMins  = 15
	maxCodeAttempts  = 5
)

func redisKeySession(sessionID string) string { return "session:" + sessionID }

func redisKeyVerify(email string) string { return "verify:" + email }

func redisKeyVerifyAttempts(email string) string { return "verify:attempts:" + email }

func redisKeyReset(email string) string { return "pwreset:" + email }

func redisKeyResetAttempts(email string) string { return "pwreset:attempts:" + email }

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

type LoginRequest struct {
	Email    string
	Password string
}

type VerifyEmailRequest struct {
	Email string
	Code  string
}

type ResetPasswordRequest struct {
	Email       string
	Code        string
	NewPassword string
}

type UpdateProfileRequest struct {
	FirstName *string
	LastName  *string
	Phone     *string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until the access token expires
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Register(ctx context.Context, req RegisterRequest) error
	VerifyEmail(ctx context.Context, req VerifyEmailRequest) (*AuthTokens, error)
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	RequestPasswordReset(ctx context.Context, emailAddr string) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error
	Me(ctx context.Context, userID uuid.UUID) (*repo.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*repo.User, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	mail   *email.Client
	paseto *pasetotoken.Manager
	auth   authorize.IAuthorization
	aud    *audit.Publisher
	cfg    *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	mail *email.Client,
	paseto *pasetotoken.Manager,
	auth authorize.IAuthorization,
	aud *audit.Publisher,
	cfg *config.Config,
) Service {
	return &authService{
		db:     db,
		rdb:    rdb,
		mail:   mail,
		paseto: paseto,
		auth:   auth,
		aud:    aud,
		cfg:    cfg,
	}
}

// ---------------------------------------------------------------------------
// Register / VerifyEmail
// ---------------------------------------------------------------------------

func (s *authService) Register(ctx context.Context, req RegisterRequest) error {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if !reEmail.MatchString(req.Email) {
		return ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return ErrPasswordTooShort
	}

	exists, err := s.db.User.Query().
		Where(entuser.EmailEqualFold(req.Email), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if exists {
		return ErrEmailAlreadyExists
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	c := s.db.User.Create().
		SetEmail(req.Email).
		SetPasswordHash(passHash)
	if req.FirstName != "" {
		c = c.SetFirstName(req.FirstName)
	}
	if req.LastName != "" {
		c = c.SetLastName(req.LastName)
	}
	if req.Phone != "" {
		c = c.SetPhone(req.Phone)
	}

	u, err := c.Save(ctx)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	if err := authorize.AssignUserSelfRole(ctx, s.auth, u.ID.String()); err != nil {
		return fmt.Errorf("grant self role: %w", err)
	}

	return s.sendCode(ctx, req.Email, u.FirstName, redisKeyVerify, redisKeyVerifyAttempts, false)
}

func (s *authService) VerifyEmail(ctx context.Context, req VerifyEmailRequest) (*AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Code = strings.TrimSpace(req.Code)

	if err := s.checkCode(ctx, req.Email, req.Code, redisKeyVerify, redisKeyVerifyAttempts); err != nil {
		return nil, err
	}

	u, err := s.db.User.Query().
		Where(entuser.EmailEqualFold(req.Email), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if _, err := s.db.User.UpdateOne(u).SetEmailVerified(true).Save(ctx); err != nil {
		return nil, fmt.Errorf("mark email verified: %w", err)
	}

	return s.createSession(ctx, u)
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.db.User.Query().
		Where(entuser.EmailEqualFold(req.Email), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if u.Status == entuser.StatusSuspended {
		return nil, ErrAccountSuspended
	}
	if !u.EmailVerified {
		return nil, ErrEmailNotVerified
	}
	if u.LockedUntil != nil && time.Now().Before(*u.LockedUntil) {
		return nil, ErrAccountLocked
	}

	if u.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if err := password.Verify(*u.PasswordHash, req.Password); err != nil {
		s.recordFailedLogin(ctx, u)
		return nil, ErrInvalidCredentials
	}

	s.db.User.UpdateOne(u).
		SetFailedLoginAttempts(0).
		ClearLockedUntil().
		SetLastLoginAt(time.Now()).
		Save(ctx)

	return s.createSession(ctx, u)
}

// ---------------------------------------------------------------------------
// Token refresh / logout
// ---------------------------------------------------------------------------

// RefreshTokens rotates the refresh token. The old token is invalidated by
// overwriting the stored hash; reuse of a rotated token fails verification.
func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh || claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())
	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	sess, err := s.db.UserSession.Query().
		Where(entsession.SessionID(claims.SessionID.String()), entsession.RevokedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	if sess.RefreshTokenHash != crypto.Hash(refreshToken) {
		// Rotated token replayed. Kill the session.
		s.rdb.Del(ctx, sessionKey)
		s.db.UserSession.UpdateOne(sess).SetRevokedAt(time.Now()).Save(ctx)
		return nil, ErrInvalidToken
	}

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	access, err := s.paseto.IssueAccess(claims.UserID, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(claims.UserID, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	s.rdb.Expire(ctx, sessionKey, refreshTTL)
	if err := s.db.UserSession.UpdateOne(sess).
		SetRefreshTokenHash(crypto.Hash(refresh)).
		SetExpiresAt(time.Now().Add(refreshTTL)).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("rotate session: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		slog.Debug("logout: session already expired", "session_id", sessionID)
	}

	// Best effort; the Redis delete is what ends the session.
	s.db.UserSession.Update().
		Where(entsession.SessionID(sessionID.String()), entsession.RevokedAtIsNil()).
		SetRevokedAt(time.Now()).
		Save(ctx)

	return nil
}

// ---------------------------------------------------------------------------
// Password reset
// ---------------------------------------------------------------------------

func (s *authService) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))

	u, err := s.db.User.Query().
		Where(entuser.EmailEqualFold(emailAddr), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			// Do not reveal whether the address is registered.
			return nil
		}
		return fmt.Errorf("find user: %w", err)
	}

	return s.sendCode(ctx, emailAddr, u.FirstName, redisKeyReset, redisKeyResetAttempts, true)
}

func (s *authService) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if len(req.NewPassword) < 8 {
		return ErrPasswordTooShort
	}
	if err := s.checkCode(ctx, req.Email, strings.TrimSpace(req.Code), redisKeyReset, redisKeyResetAttempts); err != nil {
		return err
	}

	u, err := s.db.User.Query().
		Where(entuser.EmailEqualFold(req.Email), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	passHash, err := password.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.db.User.UpdateOne(u).
		SetPasswordHash(passHash).
		SetFailedLoginAttempts(0).
		ClearLockedUntil().
		Exec(ctx); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	s.revokeAllSessions(ctx, u.ID)
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	if len(next) < 8 {
		return ErrPasswordTooShort
	}

	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user: %w", err)
	}
	if u.PasswordHash == nil {
		return ErrWrongPassword
	}
	if err := password.Verify(*u.PasswordHash, current); err != nil {
		return ErrWrongPassword
	}

	passHash, err := password.Hash(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.db.User.UpdateOne(u).SetPasswordHash(passHash).Exec(ctx); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Profile
// ---------------------------------------------------------------------------

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		WithMemberships().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	upd := s.db.User.UpdateOne(u)
	if req.FirstName != nil {
		upd = upd.SetNillableFirstName(req.FirstName)
	}
	if req.LastName != nil {
		upd = upd.SetNillableLastName(req.LastName)
	}
	if req.Phone != nil {
		upd = upd.SetNillablePhone(req.Phone)
	}

	u, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.aud.Publish(ctx, audit.Event{
		ActorID:    userID,
		Action:     "update",
		EntityType: audit.EntityUser,
		EntityID:   userID,
	})
	return u, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) sendCode(ctx context.Context, emailAddr string, firstName *string, keyFn, attemptsFn func(string) string, reset bool) error {
	code, err := otp.GenerateDefault()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}

	ttl := time.Duration(s.cfg.Authentication.ResetTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	if err := s.rdb.Set(ctx, keyFn(emailAddr), otp.Hash(code), ttl).Err(); err != nil {
		return fmt.Errorf("store code: %w", err)
	}
	s.rdb.Set(ctx, attemptsFn(emailAddr), "0", ttl+5*time.Minute)

	data := email.AccountEmailData{
		Email:         emailAddr,
		OTPCode:       code,
		ExpiryMinutes: int(ttl.Minutes()),
	}
	if firstName != nil {
		data.FirstName = *firstName
	}

	var msg email.Message
	if reset {
		msg = email.BuildPasswordResetEmail(data)
	} else {
		msg = email.BuildVerificationEmail(data)
	}
	if err := s.mail.Send(ctx, msg); err != nil {
		// Email failure should not block the flow; the code can be resent.
		slog.Warn("failed to send account email", "email", emailAddr, "error", err)
	}
	return nil
}

func (s *authService) checkCode(ctx context.Context, emailAddr, code string, keyFn, attemptsFn func(string) string) error {
	hash, err := s.rdb.Get(ctx, keyFn(emailAddr)).Result()
	if err == redis.Nil {
		return ErrCodeExpired
	}
	if err != nil {
		return fmt.Errorf("redis get code: %w", err)
	}

	attempts, _ := s.rdb.Get(ctx, attemptsFn(emailAddr)).Int()
	if attempts >= maxCodeAttempts {
		return ErrCodeMaxAttempts
	}

	if err := otp.Verify(hash, code); err != nil {
		s.rdb.Incr(ctx, attemptsFn(emailAddr))
		return ErrCodeInvalid
	}

	s.rdb.Del(ctx, keyFn(emailAddr), attemptsFn(emailAddr))
	return nil
}

func (s *authService) createSession(ctx context.Context, u *repo.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	access, err := s.paseto.IssueAccess(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	if err := s.db.UserSession.Create().
		SetUserID(u.ID).
		SetSessionID(sessionID.String()).
		SetRefreshTokenHash(crypto.Hash(refresh)).
		SetExpiresAt(time.Now().Add(refreshTTL)).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func (s *authService) recordFailedLogin(ctx context.Context, u *repo.User) {
	attempts := u.FailedLoginAttempts + 1
	upd := s.db.User.UpdateOne(u).
		SetFailedLoginAttempts(attempts).
		SetLastFailedLoginAt(time.Now())

	if attempts >= maxLoginAttempts {
		upd = upd.SetLockedUntil(time.Now().Add(accountLockMins * time.Minute))
	}
	upd.Save(ctx)
}

func (s *authService) revokeAllSessions(ctx context.Context, userID uuid.UUID) {
	sessions, err := s.db.UserSession.Query().
		Where(entsession.UserID(userID), entsession.RevokedAtIsNil()).
		All(ctx)
	if err != nil {
		return
	}
	now := time.Now()
	for _, sess := range sessions {
		s.rdb.Del(ctx, redisKeySession(sess.SessionID))
		s.db.UserSession.UpdateOne(sess).SetRevokedAt(now).Save(ctx)
	}
}
