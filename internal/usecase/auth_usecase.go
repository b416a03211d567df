package usecase

import (
	"fmt"

	"songhub/internal/entity"
	"songhub/internal/repo/persistent"
	"songhub/pkg/jwt"
	"songhub/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	SignupEndUser(username, email, phone, password, confirm string) (*entity.EndUser, string, error)
	SignupCreator(name, email, password, confirm string) (*entity.Creator, string, error)
	LoginEndUser(identifier, password string) (*entity.EndUser, string, error)
	LoginCreator(identifier, password string) (*entity.Creator, string, error)
	LoginAdmin(identifier, password string) (*entity.Admin, string, error)
	GetCreator(id string) (*entity.Creator, error)
	GetEndUser(id string) (*entity.EndUser, error)
}

type authUseCase struct {
	accountRepo persistent.AccountRepository
	jwtService  *jwt.Service
	logger      *logger.Logger
}

func NewAuthUseCase(
	accountRepo persistent.AccountRepository,
	jwtService *jwt.Service,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		accountRepo: accountRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

func (uc *authUseCase) SignupEndUser(username, email, phone, password, confirm string) (*entity.EndUser, string, error) {
	if password != confirm {
		return nil, "", fmt.Errorf("passwords do not match")
	}

	if taken, err := uc.accountRepo.EndUserEmailExists(email); err == nil && taken {
		return nil, "", fmt.Errorf("email already registered")
	}
	if taken, err := uc.accountRepo.EndUserUsernameExists(username); err == nil && taken {
		return nil, "", fmt.Errorf("username already taken")
	}
	if taken, err := uc.accountRepo.EndUserPhoneExists(phone); err == nil && taken {
		return nil, "", fmt.Errorf("phone number already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process signup")
	}

	user := &entity.EndUser{
		Username: username,
		Email:    email,
		Phone:    phone,
		Password: string(hashedPassword),
	}
	if err := uc.accountRepo.CreateEndUser(user); err != nil {
		uc.logger.Error("Failed to create end user: %v", err)
		return nil, "", fmt.Errorf("failed to create account")
	}

	if err := uc.accountRepo.GrantRole(entity.KindUser, user.ID, entity.RoleUser); err != nil {
		uc.logger.Error("Failed to grant user role to %s: %v", user.ID, err)
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(entity.KindUser))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) SignupCreator(name, email, password, confirm string) (*entity.Creator, string, error) {
	if password != confirm {
		return nil, "", fmt.Errorf("passwords do not match")
	}

	if taken, err := uc.accountRepo.CreatorEmailExists(email); err == nil && taken {
		return nil, "", fmt.Errorf("email already registered")
	}
	if taken, err := uc.accountRepo.CreatorNameExists(name); err == nil && taken {
		return nil, "", fmt.Errorf("name already taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process signup")
	}

	creator := &entity.Creator{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := uc.accountRepo.CreateCreator(creator); err != nil {
		uc.logger.Error("Failed to create creator: %v", err)
		return nil, "", fmt.Errorf("failed to create account")
	}

	if err := uc.accountRepo.GrantRole(entity.KindCreator, creator.ID, entity.RoleCreator); err != nil {
		uc.logger.Error("Failed to grant creator role to %s: %v", creator.ID, err)
	}

	token, err := uc.jwtService.GenerateToken(creator.ID, string(entity.KindCreator))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	creator.Password = ""
	return creator, token, nil
}

func (uc *authUseCase) LoginEndUser(identifier, password string) (*entity.EndUser, string, error) {
	user, err := uc.accountRepo.GetEndUserByIdentifier(identifier)
	if err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(entity.KindUser))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) LoginCreator(identifier, password string) (*entity.Creator, string, error) {
	creator, err := uc.accountRepo.GetCreatorByIdentifier(identifier)
	if err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creator.Password), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	token, err := uc.jwtService.GenerateToken(creator.ID, string(entity.KindCreator))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	creator.Password = ""
	return creator, token, nil
}

func (uc *authUseCase) LoginAdmin(identifier, password string) (*entity.Admin, string, error) {
	admin, err := uc.accountRepo.GetAdminByIdentifier(identifier)
	if err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	token, err := uc.jwtService.GenerateToken(admin.ID, string(entity.KindAdmin))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	admin.Password = ""
	return admin, token, nil
}

func (uc *authUseCase) GetCreator(id string) (*entity.Creator, error) {
	creator, err := uc.accountRepo.GetCreatorByID(id)
	if err != nil {
		return nil, err
	}
	creator.Password = ""
	return creator, nil
}

func (uc *authUseCase) GetEndUser(id string) (*entity.EndUser, error) {
	user, err := uc.accountRepo.GetEndUserByID(id)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}
