package routes

import (
	"github.com/quizgen/quizgen/internal/models"
	"gorm.io/gorm"
)

// In-memory repository fakes backing the route tests.

type fakeUserRepo struct {
	nextID uint
	users  map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[uint]*models.User{}}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) ByID(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) ByIDWithPlan(id uint) (*models.User, error) {
	return f.ByID(id)
}

func (f *fakeUserRepo) ByUsername(username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Update(id uint, updates map[string]interface{}) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := updates["username"].(string); ok {
		u.Username = v
	}
	if v, ok := updates["email"].(string); ok {
		u.Email = v
	}
	if v, ok := updates["password"].(string); ok {
		u.Password = v
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) List() ([]models.User, error) {
	var result []models.User
	for _, u := range f.users {
		result = append(result, *u)
	}
	return result, nil
}

func (f *fakeUserRepo) Delete(id uint) error {
	delete(f.users, id)
	return nil
}

type fakeUsageRepo struct {
	rows map[uint]int64
}

func (f *fakeUsageRepo) ByUserID(userID uint) (*models.StorageUsage, error) {
	used, ok := f.rows[userID]
	if !ok {
		return nil, nil
	}
	return &models.StorageUsage{UserID: userID, UsedBytes: used}, nil
}

func (f *fakeUsageRepo) Add(userID uint, addBytes int64) error {
	f.rows[userID] += addBytes
	return nil
}

type fakeSectionRepo struct {
	sections []models.ClassSection
	nextID   uint
}

func (f *fakeSectionRepo) CountByOwner(ownerID uint) (int64, error) {
	var count int64
	for _, s := range f.sections {
		if s.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (f *fakeSectionRepo) Create(section *models.ClassSection) error {
	f.nextID++
	section.ID = f.nextID
	f.sections = append(f.sections, *section)
	return nil
}

type fakeBackupRepo struct {
	backups []models.Backup
}

func (f *fakeBackupRepo) Create(backup *models.Backup) error {
	f.backups = append(f.backups, *backup)
	return nil
}

type fakeContactRepo struct {
	contacts []models.Contact
}

func (f *fakeContactRepo) Create(contact *models.Contact) error {
	f.contacts = append(f.contacts, *contact)
	return nil
}

type fakeAnalyticsRepo struct {
	events []models.AnalyticsEvent
}

func (f *fakeAnalyticsRepo) Create(event *models.AnalyticsEvent) error {
	f.events = append(f.events, *event)
	return nil
}
