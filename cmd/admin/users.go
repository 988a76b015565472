package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"lucky-money/pkg/models"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 8

var errUserNotFound = errors.New("user not found")

func createAdminCmd() *cobra.Command {
	var name, password string

	cmd := &cobra.Command{
		Use:   "create-admin [email]",
		Short: "Create an ADMIN account, or promote and reset the password of an existing one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("ADMIN_PASSWORD")
			}

			db, log, err := connect()
			if err != nil {
				return err
			}

			user, err := createAdmin(db, args[0], name, password)
			if err != nil {
				return err
			}
			log.Info("Admin account ready: %s (%s)", user.Email, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "Admin", "display name")
	cmd.Flags().StringVar(&password, "password", "", "password (defaults to $ADMIN_PASSWORD)")
	return cmd
}

func promoteCmd() *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "promote [email]",
		Short: "Change the role of an existing account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, log, err := connect()
			if err != nil {
				return err
			}

			if err := setRole(db, args[0], models.UserRole(strings.ToUpper(role))); err != nil {
				return err
			}
			log.Info("Role of %s set to %s", args[0], strings.ToUpper(role))
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", string(models.RoleAdmin), "USER or ADMIN")
	return cmd
}

// createAdmin upserts an ADMIN by email. Existing sessions of the account keep
// the role they were issued with until they expire.
func createAdmin(db *gorm.DB, email, name, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errors.New("email is required")
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), models.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	hashed := string(hash)

	var user models.User
	err = db.Where("email = ?", email).First(&user).Error
	switch {
	case err == nil:
		user.Role = models.RoleAdmin
		user.Password = &hashed
		if err := db.Save(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{Email: email, Name: name, Password: &hashed, Role: models.RoleAdmin}
		if err := db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		return &user, nil
	default:
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
}

func setRole(db *gorm.DB, email string, role models.UserRole) error {
	if role != models.RoleUser && role != models.RoleAdmin {
		return fmt.Errorf("unknown role %q", role)
	}

	result := db.Model(&models.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Update("role", role)
	if result.Error != nil {
		return fmt.Errorf("failed to update role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", email, errUserNotFound)
	}
	return nil
}
