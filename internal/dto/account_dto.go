package dto

import (
	"encoding/json"
	"time"
)

// MetaItem is a client-side summary of one local record. ApproxBytes is the
// client's own size estimate; the server never validates it.
type MetaItem struct {
	ID          *int64 `json:"id"`
	Timestamp   *int64 `json:"timestamp"`
	ApproxBytes int64  `json:"approxBytes"`
}

type BackupRequest struct {
	QuizzesMeta  []MetaItem `json:"quizzesMeta"`
	MessagesMeta []MetaItem `json:"messagesMeta"`
	NotesMeta    []MetaItem `json:"notesMeta"`
}

type BackupResponse struct {
	Success    bool  `json:"success"`
	AddedBytes int64 `json:"addedBytes"`
}

type Usage struct {
	UsedBytes  int64 `json:"usedBytes"`
	QuotaBytes int64 `json:"quotaBytes"`
}

type UsageResponse struct {
	Success bool  `json:"success"`
	Usage   Usage `json:"usage"`
}

type CreateClassRequest struct {
	Name string `json:"name"`
}

type ClassSectionResponse struct {
	ID        uint      `json:"id"`
	OwnerID   uint      `json:"ownerId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateClassResponse struct {
	Success bool                 `json:"success"`
	Section ClassSectionResponse `json:"section"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type AnalyticsRequest struct {
	Consent     bool            `json:"consent"`
	AgeRange    string          `json:"ageRange"`
	Country     string          `json:"country"`
	City        string          `json:"city"`
	DeviceType  string          `json:"deviceType"`
	ActiveHours string          `json:"activeHours"`
	Interests   string          `json:"interests"`
	Engagement  json.RawMessage `json:"engagement"`
}
