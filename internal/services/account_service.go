package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fittrack/internal/models/db_models"
	"fittrack/internal/models/request_models"
	"fittrack/internal/models/response_models"
	"fittrack/internal/repositories"
	"fittrack/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	Authenticate(ctx context.Context, token string) (*db_models.Account, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenIssuer
	logger      *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenIssuer, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, utils.NewValidationError("name", "name is required")
	}
	email := utils.NormalizeEmail(request.Email)
	if err := utils.CheckPasswordLength("password", request.Password); err != nil {
		return nil, err
	}

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.DatabaseError("find account by email", err)
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	newAccount := &db_models.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		if errors.Is(err, utils.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, utils.DatabaseError("insert account", err)
	}

	a.logger.Info("account registered", zap.String("account_id", newAccount.ID.String()))

	return a.issue(newAccount)
}

// Login reports unknown emails and wrong passwords identically.
func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, utils.NormalizeEmail(request.Email))
	if err != nil {
		return nil, utils.DatabaseError("find account by email", err)
	}

	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return a.issue(account)
}

// Authenticate is the credential verifier: it validates the token and
// resolves the account it names. Every failure is ErrUnauthorized.
func (a *AccountService) Authenticate(ctx context.Context, token string) (*db_models.Account, error) {
	accountID, err := a.tokens.ValidateToken(token)
	if err != nil {
		return nil, utils.ErrUnauthorized
	}

	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.DatabaseError("find account by id", err)
	}
	if account == nil {
		return nil, utils.ErrUnauthorized
	}

	return account, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, accountID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.AccountResponse, error) {
	fields := map[string]interface{}{}

	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" {
			return nil, utils.NewValidationError("name", "name is required")
		}
		fields["name"] = name
	}

	if request.Email != nil {
		email := utils.NormalizeEmail(*request.Email)
		existing, err := a.accountRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, utils.DatabaseError("find account by email", err)
		}
		if existing != nil && existing.ID != accountID {
			return nil, utils.ErrEmailAlreadyExists
		}
		fields["email"] = email
	}

	if request.Password != nil {
		if err := utils.CheckPasswordLength("password", *request.Password); err != nil {
			return nil, err
		}
		if err := a.verifyCurrentPassword(ctx, accountID, request.CurrentPassword); err != nil {
			return nil, err
		}
		hashedPassword, err := utils.HashPassword(*request.Password)
		if err != nil {
			return nil, err
		}
		fields["password_hash"] = hashedPassword
	}

	var account *db_models.Account
	var err error
	if len(fields) == 0 {
		account, err = a.accountRepo.FindById(ctx, accountID)
	} else {
		account, err = a.accountRepo.UpdateFields(ctx, accountID, fields)
	}

	if err != nil {
		if errors.Is(err, utils.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, utils.DatabaseError("update account", err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	resp := response_models.NewAccountResponse(account)
	return &resp, nil
}

func (a *AccountService) verifyCurrentPassword(ctx context.Context, accountID uuid.UUID, current *string) error {
	if current == nil || *current == "" {
		return utils.NewValidationError("currentPassword", "currentPassword is required to change the password")
	}

	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return utils.DatabaseError("find account by id", err)
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}
	if err := utils.ComparePasswords(account.PasswordHash, *current); err != nil {
		return utils.NewValidationError("currentPassword", "currentPassword is incorrect")
	}
	return nil
}

func (a *AccountService) issue(account *db_models.Account) (*response_models.AuthResponse, error) {
	token, err := a.tokens.CreateToken(account.ID)
	if err != nil {
		return nil, err
	}

	return &response_models.AuthResponse{
		Token: token,
		User:  response_models.NewAccountResponse(account),
	}, nil
}
