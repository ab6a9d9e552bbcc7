package services

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/callshield/callshield-backend/internal/dto"
	"github.com/callshield/callshield-backend/internal/models"
	"gorm.io/gorm"
)

var ErrCallNotFound = errors.New("call not found")

// Categories the screening workflow draws from. The draw is
// independent of the risk score, so "legitimate" can pair with a
// high score.
var Categories = []string{
	models.CategorySpam,
	models.CategoryScam,
	models.CategoryLegitimate,
	models.CategoryTelemarketer,
	models.CategoryUnknown,
}

// screeningGreeting is the fixed reply played to screened callers; a
// stand-in for a real dialogue system.
const screeningGreeting = "Thank you for calling. I'm screening calls right now. " +
	"Please state your name and reason for calling."

// CallService owns the call-screening workflow and call history reads.
type CallService struct {
	db *gorm.DB
}

func NewCallService(db *gorm.DB) *CallService {
	return &CallService{db: db}
}

// Simulate runs the screening workflow for one inbound call: draw a
// risk score in [0,99] and a category, decide blocked against the
// owner's auto-block threshold, and persist the call row.
func (s *CallService) Simulate(userID uint, req *dto.SimulateCallRequest) (*models.Call, error) {
	riskScore := rand.IntN(100)
	category := Categories[rand.IntN(len(Categories))]
	duration := 10 + rand.IntN(120)

	threshold, err := s.autoBlockThreshold(userID)
	if err != nil {
		return nil, err
	}

	call := models.Call{
		UserID:        userID,
		PhoneNumber:   req.PhoneNumber,
		Timestamp:     time.Now(),
		RiskScore:     riskScore,
		Category:      category,
		Transcription: &req.Message,
		AIResponse:    ptr(screeningGreeting),
		Duration:      &duration,
		Blocked:       riskScore >= threshold,
	}
	if req.CallerName != "" {
		call.CallerName = &req.CallerName
	}

	if err := s.db.Create(&call).Error; err != nil {
		return nil, err
	}
	return &call, nil
}

func (s *CallService) autoBlockThreshold(userID uint) (int, error) {
	var settings models.UserSettings
	err := s.db.Select("auto_block_threshold").Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultAutoBlockThreshold, nil
	}
	if err != nil {
		return 0, err
	}
	return settings.AutoBlockThreshold, nil
}

// List returns the caller's call summaries, newest first.
func (s *CallService) List(userID uint) ([]dto.CallSummary, error) {
	calls := make([]models.Call, 0)
	err := s.db.
		Select("id", "phone_number", "caller_name", "timestamp", "risk_score", "category", "blocked", "duration").
		Where("user_id = ?", userID).
		Order("timestamp DESC, id DESC").
		Find(&calls).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.CallSummary, len(calls))
	for i, call := range calls {
		summaries[i] = dto.CallSummary{
			ID:          call.ID,
			PhoneNumber: call.PhoneNumber,
			CallerName:  call.CallerName,
			Timestamp:   call.Timestamp,
			RiskScore:   call.RiskScore,
			Category:    call.Category,
			Blocked:     call.Blocked,
			Duration:    call.Duration,
		}
	}
	return summaries, nil
}

// Get returns one full call record, ownership-filtered.
func (s *CallService) Get(userID uint, callID uint) (*models.Call, error) {
	var call models.Call
	err := s.db.Where("id = ? AND user_id = ?", callID, userID).First(&call).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCallNotFound
	}
	if err != nil {
		return nil, err
	}
	return &call, nil
}

func ptr[T any](v T) *T {
	return &v
}
