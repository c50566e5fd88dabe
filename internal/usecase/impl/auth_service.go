package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	sessions  service.SessionService
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Sessions  service.SessionService
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		sessions:  params.Sessions,
		logger:    params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// Register creates a tenant account.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	email := entity.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	user, err := srv.createUser(ctx, email, input.Password, entity.RoleTenant)
	if err != nil {
		if errors.Is(err, domainerrors.ErrEmailAlreadyRegistered) {
			srv.log(ctx).Info("Registration rejected, email taken", slog.String("email", email))
		}

		return nil, err
	}

	srv.log(ctx).Info("Tenant registered", slog.Uint64("userID", uint64(user.ID)))

	return user, nil
}

// createUser checks for an existing account and inserts the new one in a single transaction.
func (srv *authService) createUser(ctx context.Context, email, password string, role entity.Role) (*entity.User, error) {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Warn("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		_, findErr := userRepo.FindByEmail(ctx, email)
		if findErr == nil {
			return domainerrors.ErrEmailAlreadyRegistered
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to look up email")
		}

		return userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a session token.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Login failed, unknown email", slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// bcrypt is CPU-bound, keep it outside any transaction.
	if !srv.hasher.Matches(user.PasswordHash, input.Password) {
		srv.log(ctx).Info("Login failed, wrong password", slog.Uint64("userID", uint64(user.ID)))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.sessions.Issue(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session")
	}

	srv.log(ctx).Debug("User logged in", slog.Uint64("userID", uint64(user.ID)), slog.String("role", user.Role.String()))

	return &usecase.LoginOutput{User: user, SessionToken: token}, nil
}

// Authenticate resolves a session token to the current user record.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	claims, err := srv.sessions.Validate(token)
	if err != nil {
		srv.log(ctx).Debug("Rejected session token", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthenticated.WithDetails("invalid session")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthenticated.WithDetails("account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load session user")
	}

	return user, nil
}

// Authorize gates an operation on the role's capabilities.
func (srv *authService) Authorize(user *entity.User, capability entity.Capability) error {
	if user == nil {
		return domainerrors.ErrUnauthenticated
	}
	if !user.Role.Can(capability) {
		return domainerrors.ErrForbidden.WithDetails(string(capability))
	}

	return nil
}

// BootstrapAdmin creates the configured administrator if no account uses that email.
func (srv *authService) BootstrapAdmin(ctx context.Context, email, password string) (bool, error) {
	email = entity.NormalizeEmail(email)
	if email == "" || password == "" {
		srv.log(ctx).Info("No admin email/password set, admin bootstrap skipped")

		return false, nil
	}

	if _, err := srv.createUser(ctx, email, password, entity.RoleAdmin); err != nil {
		if errors.Is(err, domainerrors.ErrEmailAlreadyRegistered) {
			srv.log(ctx).Debug("Admin account already present", slog.String("email", email))

			return false, nil
		}

		return false, errors.Wrap(err, "failed to bootstrap admin")
	}

	srv.log(ctx).Info("Bootstrapped admin", slog.String("email", email))

	return true, nil
}
