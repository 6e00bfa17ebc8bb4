package services

import (
	"errors"
	"fmt"
	"time"

	"diveshop-backend/models"

	"gorm.io/gorm"
)

// WaiverService keeps the one-waiver-per-diver invariant: POST upserts on
// diver_id and flips the diver's waiver_signed flag in the same transaction.
type WaiverService struct {
	DB *gorm.DB
}

func NewWaiverService(db *gorm.DB) *WaiverService {
	return &WaiverService{DB: db}
}

type WaiverView struct {
	ID            string     `json:"id"`
	DiverID       string     `json:"diver_id"`
	DocumentURL   *string    `json:"document_url,omitempty"`
	SignatureData *string    `json:"signature_data,omitempty"`
	Status        string     `json:"status"`
	SignedAt      *time.Time `json:"signed_at"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
	DiverName     *string    `json:"diver_name"`
	DiverEmail    *string    `json:"diver_email"`
}

func (s *WaiverService) List() ([]WaiverView, error) {
	views := []WaiverView{}
	err := s.DB.
		Table("waivers AS w").
		Select("w.id, w.diver_id, w.status, w.signed_at, w.notes, w.created_at, " +
			"d.name AS diver_name, d.email AS diver_email").
		Joins("LEFT JOIN divers d ON w.diver_id = d.id").
		Order("w.created_at DESC").
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve waivers: %w", err)
	}
	return views, nil
}

func (s *WaiverService) GetByDiver(diverID string) (*WaiverView, error) {
	var view WaiverView
	err := s.DB.
		Table("waivers AS w").
		Select("w.id, w.diver_id, w.document_url, w.signature_data, w.status, w.signed_at, "+
			"w.notes, w.created_at, d.name AS diver_name, d.email AS diver_email").
		Joins("LEFT JOIN divers d ON w.diver_id = d.id").
		Where("w.diver_id = ?", diverID).
		First(&view).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve waiver: %w", err)
	}
	return &view, nil
}

type WaiverInput struct {
	DiverID       string `json:"diver_id"`
	DocumentURL   string `json:"document_url"`
	SignatureData string `json:"signature_data"`
	Notes         string `json:"notes"`
}

// Upsert creates or refreshes the diver's single waiver row and updates the
// diver flags atomically.
func (s *WaiverService) Upsert(input WaiverInput) (models.Waiver, error) {
	var waiver models.Waiver

	if input.DiverID == "" {
		return waiver, errors.New("validation: diver_id is required")
	}

	now := time.Now().UTC()

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Waiver
		err := tx.Where("diver_id = ?", input.DiverID).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Model(&existing).Updates(map[string]interface{}{
				"document_url":   input.DocumentURL,
				"signature_data": input.SignatureData,
				"status":         "signed",
				"signed_at":      now,
				"notes":          input.Notes,
			}).Error; err != nil {
				return err
			}
			waiver = existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			waiver = models.Waiver{
				DiverID:       input.DiverID,
				DocumentURL:   input.DocumentURL,
				SignatureData: input.SignatureData,
				Status:        "signed",
				SignedAt:      &now,
				Notes:         input.Notes,
			}
			if err := tx.Create(&waiver).Error; err != nil {
				return err
			}
		default:
			return err
		}

		return tx.Model(&models.Diver{}).Where("id = ?", input.DiverID).
			Updates(map[string]interface{}{
				"waiver_signed":      true,
				"waiver_signed_date": now,
			}).Error
	})
	if txErr != nil {
		return waiver, fmt.Errorf("failed to save waiver: %w", txErr)
	}

	if err := s.DB.First(&waiver, "diver_id = ?", input.DiverID).Error; err != nil {
		return waiver, fmt.Errorf("failed to reload waiver: %w", err)
	}
	return waiver, nil
}
