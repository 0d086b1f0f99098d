package services

import (
	"errors"
	"strings"

	"github.com/IshitaGujarathi/ercisetracker-main/internal/models"

	"gorm.io/gorm"
)

type UserService struct {
	db    *gorm.DB
	audit *AuditService
}

func NewUserService(db *gorm.DB, audit *AuditService) *UserService {
	return &UserService{db: db, audit: audit}
}

func (s *UserService) Create(username string, ip string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, validationErr("username", "must not be empty")
	}

	// Check availability
	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateUsername
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	newUser := models.User{Username: username}
	if err := s.db.Create(&newUser).Error; err != nil {
		// The unique index backstops a concurrent create of the same name.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}

	s.audit.LogAction(&newUser.ID, "CREATE_USER", newUser.Username, nil, ip)

	return &newUser, nil
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
