package services

import (
	"context"
	"duoChat/configs"
	"duoChat/internal/enums"
	"duoChat/internal/errs"
	"duoChat/internal/interfaces"
	"duoChat/internal/logger"
	"duoChat/internal/models"
	"duoChat/internal/utils"
	"duoChat/internal/validators"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"
)

type AuthenticationService struct {
	authRepo    interfaces.AccountRepository
	chatRepo    interfaces.MessageRepository
	fileManager *FileManagerService
	blacklist   interfaces.TokenBlacklist
	config      *configs.Config
}

func NewAuthenticationService(
	authRepo interfaces.AccountRepository,
	chatRepo interfaces.MessageRepository,
	fileManager *FileManagerService,
	blacklist interfaces.TokenBlacklist,
	config *configs.Config,
) *AuthenticationService {
	return &AuthenticationService{
		authRepo:    authRepo,
		chatRepo:    chatRepo,
		fileManager: fileManager,
		blacklist:   blacklist,
		config:      config,
	}
}

func (as *AuthenticationService) Signup(ctx context.Context, body *models.SignupRequestBody) (string, *models.User, error) {
	if validationErrs := validators.ValidateSignup(body); len(validationErrs) > 0 {
		return "", nil, errs.Validation(validationErrs...)
	}

	passwordHash, err := utils.HashPassword(body.Password)
	if err != nil {
		return "", nil, pkgerrors.Wrap(err, "hash password")
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           utils.NewId(),
		FullName:     strings.TrimSpace(body.FullName),
		Email:        validators.NormalizeEmail(body.Email),
		Bio:          body.Bio,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// The store's unique index decides races, this only keeps the common
	// case off the error path.
	if _, err := as.authRepo.FindUserByEmail(ctx, user.Email); err == nil {
		return "", nil, errs.Conflict(errs.ErrAccountAlreadyExists)
	} else if !errs.IsKind(err, errs.KindNotFound) {
		return "", nil, err
	}

	if err := as.authRepo.CreateUser(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := as.issueToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	logger.Info("account created", zap.String("user_id", user.ID))
	return token, user, nil
}

func (as *AuthenticationService) Login(ctx context.Context, body *models.LoginRequestBody) (string, *models.User, error) {
	user, err := as.authRepo.FindUserByEmail(ctx, validators.NormalizeEmail(body.Email))
	if err != nil {
		if errs.IsKind(err, errs.KindNotFound) {
			return "", nil, errs.Auth(errs.ErrAccountNotFound)
		}
		return "", nil, err
	}

	if err := utils.CompareHashAndPassword(user.PasswordHash, body.Password); err != nil {
		return "", nil, errs.Auth(errs.ErrInvalidCredentials)
	}

	token, err := as.issueToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (as *AuthenticationService) issueToken(userID string) (string, error) {
	expiration := time.Now().Add(time.Duration(as.config.Viper.GetInt("jwt.expiration_time")) * time.Second)
	token, _, err := utils.CreateJwtToken(userID, as.jwtKey(), expiration)
	if err != nil {
		return "", pkgerrors.Wrap(err, "sign token")
	}
	return token, nil
}

func (as *AuthenticationService) jwtKey() []byte {
	return []byte(as.config.Viper.GetString("jwt.secret"))
}

// Authenticate verifies a bearer token and loads its user. Revoked tokens
// are rejected like expired ones.
func (as *AuthenticationService) Authenticate(ctx context.Context, token string) (*models.Claims, *models.User, error) {
	if token == "" {
		return nil, nil, errs.Auth(errs.ErrTokenMissing)
	}
	claims, err := as.VerifyToken(token)
	if err != nil {
		return nil, nil, err
	}

	revoked, err := as.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		logger.Error("token blacklist lookup failed", zap.Error(err))
		return nil, nil, errs.Auth(errs.ErrInvalidToken)
	}
	if revoked {
		return nil, nil, errs.Auth(errs.ErrInvalidToken)
	}

	user, err := as.authRepo.FindUserById(ctx, claims.UserID)
	if err != nil {
		return nil, nil, err
	}
	return claims, user, nil
}

// VerifyToken checks the signature and expiry only.
func (as *AuthenticationService) VerifyToken(token string) (*models.Claims, error) {
	claims, err := utils.VerifyToken(token, as.jwtKey())
	if err != nil {
		return nil, errs.Auth(errs.ErrInvalidToken)
	}
	return claims, nil
}

func (as *AuthenticationService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return as.authRepo.FindUserById(ctx, userID)
}

// UpdateProfile applies the non-nil fields of body. A profilePic data URI is
// uploaded first and replaced by its URL.
func (as *AuthenticationService) UpdateProfile(ctx context.Context, userID string, body *models.UpdateProfileRequestBody) (*models.User, error) {
	if validationErrs := validators.ValidateProfileUpdate(body); len(validationErrs) > 0 {
		return nil, errs.Validation(validationErrs...)
	}

	changes := models.ProfileChanges{Bio: body.Bio}
	if body.FullName != nil {
		fullName := strings.TrimSpace(*body.FullName)
		changes.FullName = &fullName
	}
	if body.ProfilePic != nil && *body.ProfilePic != "" {
		url, err := as.fileManager.ResolveImage(ctx, userID, *body.ProfilePic, enums.FILE_BUCKET_USER_PROFILE)
		if err != nil {
			return nil, err
		}
		changes.ProfilePic = &url
	}

	return as.authRepo.UpdateUser(ctx, userID, changes)
}

// DeleteAccount removes every message the user sent or received, then the
// account, then revokes the token used for the request.
func (as *AuthenticationService) DeleteAccount(ctx context.Context, claims *models.Claims) error {
	deleted, err := as.chatRepo.DeleteUserMessages(ctx, claims.UserID)
	if err != nil {
		return err
	}
	if err := as.authRepo.DeleteUser(ctx, claims.UserID); err != nil {
		return err
	}
	logger.Info("account deleted",
		zap.String("user_id", claims.UserID),
		zap.Int64("messages_deleted", deleted),
	)

	if err := as.revoke(ctx, claims); err != nil {
		logger.Warn("failed to revoke token of deleted account", zap.Error(err))
	}
	return nil
}

func (as *AuthenticationService) Logout(ctx context.Context, claims *models.Claims) error {
	if err := as.revoke(ctx, claims); err != nil {
		return errs.Storage(err)
	}
	return nil
}

func (as *AuthenticationService) revoke(ctx context.Context, claims *models.Claims) error {
	if claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	return as.blacklist.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}
