package repositories

import (
	"github.com/buildledger/database"
	"github.com/buildledger/models"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	result := database.DB().First(&user, "id = ?", id)
	return user, result.Error
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := database.DB().First(&user, "email = ?", email)
	return user, result.Error
}

// Create inserts a new user into the database
func (r *UserRepository) Create(user models.User) (models.User, error) {
	result := database.DB().Create(&user)
	return user, result.Error
}

// Update modifies an existing user
func (r *UserRepository) Update(user models.User) error {
	result := database.DB().Save(&user)
	return result.Error
}

// FindByCompanyID retrieves all users belonging to a company
func (r *UserRepository) FindByCompanyID(companyID string) ([]models.User, error) {
	var users []models.User
	result := database.DB().Where("company_id = ?", companyID).Find(&users)
	return users, result.Error
}

// DB returns the database instance
func (r *UserRepository) DB() *gorm.DB {
	return database.DB()
}
