package persistent

import (
	"songhub/internal/entity"
	"songhub/internal/model"

	"gorm.io/gorm"
)

type AccountRepository interface {
	CreateAdmin(admin *entity.Admin) error
	GetAdminByIdentifier(identifier string) (*entity.Admin, error)
	AdminExists() (bool, error)

	CreateCreator(creator *entity.Creator) error
	GetCreatorByID(id string) (*entity.Creator, error)
	GetCreatorByIdentifier(identifier string) (*entity.Creator, error)
	CreatorEmailExists(email string) (bool, error)
	CreatorNameExists(name string) (bool, error)

	CreateEndUser(user *entity.EndUser) error
	GetEndUserByID(id string) (*entity.EndUser, error)
	GetEndUserByIdentifier(identifier string) (*entity.EndUser, error)
	EndUserEmailExists(email string) (bool, error)
	EndUserUsernameExists(username string) (bool, error)
	EndUserPhoneExists(phone string) (bool, error)

	EnsureRole(name entity.RoleName) (*entity.Role, error)
	GrantRole(kind entity.AccountKind, accountID string, roleName entity.RoleName) error
	GetGrantedRoles(kind entity.AccountKind, accountID string) ([]*entity.Role, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) CreateAdmin(admin *entity.Admin) error {
	adminModel := ToAdminModel(admin)
	if err := r.db.Create(adminModel).Error; err != nil {
		return err
	}
	*admin = *ToAdminEntity(adminModel)
	return nil
}

func (r *accountRepository) GetAdminByIdentifier(identifier string) (*entity.Admin, error) {
	var adminModel model.AdminModel
	err := r.db.Where("email = ? OR username = ?", identifier, identifier).First(&adminModel).Error
	if err != nil {
		return nil, err
	}
	return ToAdminEntity(&adminModel), nil
}

func (r *accountRepository) AdminExists() (bool, error) {
	var count int64
	err := r.db.Model(&model.AdminModel{}).Count(&count).Error
	return count > 0, err
}

func (r *accountRepository) CreateCreator(creator *entity.Creator) error {
	creatorModel := ToCreatorModel(creator)
	if err := r.db.Create(creatorModel).Error; err != nil {
		return err
	}
	*creator = *ToCreatorEntity(creatorModel)
	return nil
}

func (r *accountRepository) GetCreatorByID(id string) (*entity.Creator, error) {
	var creatorModel model.CreatorModel
	if err := r.db.Where("id = ?", id).First(&creatorModel).Error; err != nil {
		return nil, err
	}
	return ToCreatorEntity(&creatorModel), nil
}

func (r *accountRepository) GetCreatorByIdentifier(identifier string) (*entity.Creator, error) {
	var creatorModel model.CreatorModel
	err := r.db.Where("email = ? OR name = ?", identifier, identifier).First(&creatorModel).Error
	if err != nil {
		return nil, err
	}
	return ToCreatorEntity(&creatorModel), nil
}

func (r *accountRepository) CreatorEmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.CreatorModel{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *accountRepository) CreatorNameExists(name string) (bool, error) {
	var count int64
	err := r.db.Model(&model.CreatorModel{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *accountRepository) CreateEndUser(user *entity.EndUser) error {
	userModel := ToEndUserModel(user)
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	*user = *ToEndUserEntity(userModel)
	return nil
}

func (r *accountRepository) GetEndUserByID(id string) (*entity.EndUser, error) {
	var userModel model.EndUserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToEndUserEntity(&userModel), nil
}

func (r *accountRepository) GetEndUserByIdentifier(identifier string) (*entity.EndUser, error) {
	var userModel model.EndUserModel
	err := r.db.Where("email = ? OR username = ?", identifier, identifier).First(&userModel).Error
	if err != nil {
		return nil, err
	}
	return ToEndUserEntity(&userModel), nil
}

func (r *accountRepository) EndUserEmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.EndUserModel{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *accountRepository) EndUserUsernameExists(username string) (bool, error) {
	var count int64
	err := r.db.Model(&model.EndUserModel{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *accountRepository) EndUserPhoneExists(phone string) (bool, error) {
	var count int64
	err := r.db.Model(&model.EndUserModel{}).Where("phone = ?", phone).Count(&count).Error
	return count > 0, err
}

func (r *accountRepository) EnsureRole(name entity.RoleName) (*entity.Role, error) {
	var roleModel model.RoleModel
	err := r.db.Where("name = ?", string(name)).First(&roleModel).Error
	if err == gorm.ErrRecordNotFound {
		roleModel = model.RoleModel{Name: string(name)}
		if err := r.db.Create(&roleModel).Error; err != nil {
			return nil, err
		}
		return ToRoleEntity(&roleModel), nil
	}
	if err != nil {
		return nil, err
	}
	return ToRoleEntity(&roleModel), nil
}

func (r *accountRepository) GrantRole(kind entity.AccountKind, accountID string, roleName entity.RoleName) error {
	role, err := r.EnsureRole(roleName)
	if err != nil {
		return err
	}

	var count int64
	err = r.db.Model(&model.RoleGrantModel{}).
		Where("account_kind = ? AND account_id = ? AND role_id = ?", string(kind), accountID, role.ID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	grant := model.RoleGrantModel{
		AccountKind: string(kind),
		AccountID:   accountID,
		RoleID:      role.ID,
	}
	return r.db.Create(&grant).Error
}

func (r *accountRepository) GetGrantedRoles(kind entity.AccountKind, accountID string) ([]*entity.Role, error) {
	var grantModels []model.RoleGrantModel
	err := r.db.Preload("Role").
		Where("account_kind = ? AND account_id = ?", string(kind), accountID).
		Find(&grantModels).Error
	if err != nil {
		return nil, err
	}

	roles := make([]*entity.Role, len(grantModels))
	for i := range grantModels {
		roles[i] = ToRoleEntity(&grantModels[i].Role)
	}
	return roles, nil
}
