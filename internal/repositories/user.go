package repositories

import (
	"github.com/quizgen/quizgen/internal/models"
	"gorm.io/gorm"
)

// UserRepository abstracts user persistence so endpoint logic never touches
// the ORM directly.
type UserRepository interface {
	Create(user *models.User) error
	ByID(id uint) (*models.User, error)
	// ByIDWithPlan loads the user together with the assigned plan, if any.
	ByIDWithPlan(id uint) (*models.User, error)
	ByUsername(username string) (*models.User, error)
	ExistsByUsernameOrEmail(username, email string) (bool, error)
	Update(id uint, updates map[string]interface{}) (*models.User, error)
	List() ([]models.User, error)
	Delete(id uint) error
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *GormUserRepository) ByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) ByIDWithPlan(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Plan").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) ByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

func (r *GormUserRepository) Update(id uint, updates map[string]interface{}) (*models.User, error) {
	if err := r.db.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.ByID(id)
}

func (r *GormUserRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormUserRepository) Delete(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}
