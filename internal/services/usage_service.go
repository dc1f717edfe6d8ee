package services

import (
	"encoding/json"
	"fmt"

	"github.com/quizgen/quizgen/internal/dto"
	"github.com/quizgen/quizgen/internal/models"
	"github.com/quizgen/quizgen/internal/repositories"
	"gorm.io/datatypes"
)

// UsageService implements the quota ledger and backup ingestion. Quota is
// soft at this call site: backups are recorded unconditionally even when the
// user is over the limit.
type UsageService struct {
	users   repositories.UserRepository
	usage   repositories.StorageUsageRepository
	backups repositories.BackupRepository
}

func NewUsageService(
	users repositories.UserRepository,
	usage repositories.StorageUsageRepository,
	backups repositories.BackupRepository,
) *UsageService {
	return &UsageService{users: users, usage: usage, backups: backups}
}

// GetUsage reports consumed bytes against the user's plan quota. Users
// without a plan fall back to the default quota.
func (s *UsageService) GetUsage(userID uint) (dto.Usage, error) {
	quota := models.DefaultQuotaBytes
	user, err := s.users.ByIDWithPlan(userID)
	if err != nil {
		return dto.Usage{}, fmt.Errorf("failed to load user: %w", err)
	}
	if user.Plan != nil {
		quota = user.Plan.MonthlyQuotaBytes
	}

	var used int64
	row, err := s.usage.ByUserID(userID)
	if err != nil {
		return dto.Usage{}, fmt.Errorf("failed to load usage: %w", err)
	}
	if row != nil {
		used = row.UsedBytes
	}

	return dto.Usage{UsedBytes: used, QuotaBytes: quota}, nil
}

// IngestBackup sums the client-declared approxBytes across the three metadata
// arrays, feeds the total into the usage counter, and persists an immutable
// snapshot of the arrays. The size claims are trusted as-is.
func (s *UsageService) IngestBackup(userID uint, req *dto.BackupRequest) (int64, error) {
	total := sumMeta(req.QuizzesMeta) + sumMeta(req.MessagesMeta) + sumMeta(req.NotesMeta)

	if err := s.usage.Add(userID, total); err != nil {
		return 0, fmt.Errorf("failed to record usage: %w", err)
	}

	backup := models.Backup{
		UserID:   &userID,
		Quizzes:  marshalMeta(req.QuizzesMeta),
		Messages: marshalMeta(req.MessagesMeta),
		Notes:    marshalMeta(req.NotesMeta),
	}
	if err := s.backups.Create(&backup); err != nil {
		return 0, fmt.Errorf("failed to store backup record: %w", err)
	}

	return total, nil
}

func sumMeta(items []dto.MetaItem) int64 {
	var total int64
	for _, it := range items {
		total += it.ApproxBytes
	}
	return total
}

func marshalMeta(items []dto.MetaItem) datatypes.JSON {
	if items == nil {
		return nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}
