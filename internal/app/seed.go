package app

import (
	"fmt"

	"songhub/internal/entity"
	"songhub/internal/repo/persistent"
	"songhub/pkg/config"
	"songhub/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// defaultGenres is the fixed genre set created on first boot. Songs tagged
// with anything outside this list are stored without a genre.
var defaultGenres = []string{
	"Pop",
	"Rock",
	"Hip-Hop",
	"Jazz",
	"Classical",
	"Electronic",
	"Country",
	"R&B",
	"Metal",
	"Folk",
}

// Seed creates the three roles, the admin account and the fixed genre set.
// It is idempotent and runs on every startup.
func Seed(cfg *config.Config, log *logger.Logger, accounts persistent.AccountRepository, genres persistent.GenreRepository) error {
	for _, name := range []entity.RoleName{entity.RoleAdmin, entity.RoleCreator, entity.RoleUser} {
		if _, err := accounts.EnsureRole(name); err != nil {
			return fmt.Errorf("ensure role %s: %w", name, err)
		}
	}

	for _, name := range defaultGenres {
		if _, err := genres.Ensure(name); err != nil {
			return fmt.Errorf("ensure genre %s: %w", name, err)
		}
	}

	exists, err := accounts.AdminExists()
	if err != nil {
		return fmt.Errorf("check admin: %w", err)
	}
	if exists {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &entity.Admin{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Phone:    cfg.AdminPhone,
		Password: string(hashed),
	}
	if err := accounts.CreateAdmin(admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	if err := accounts.GrantRole(entity.KindAdmin, admin.ID, entity.RoleAdmin); err != nil {
		return fmt.Errorf("grant admin role: %w", err)
	}

	log.Info("Seeded admin account %s", admin.Username)
	return nil
}
