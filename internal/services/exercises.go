package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/IshitaGujarathi/ercisetracker-main/internal/models"

	"gorm.io/gorm"
)

type ExerciseInput struct {
	Description string
	Duration    string // coerced to a non-negative int, form data sends strings
	Date        string // yyyy-mm-dd, empty means "now"
	IPAddress   string // For Audit Log
}

type ExerciseResult struct {
	UserID      string `json:"_id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type LogFilter struct {
	From  string
	To    string
	Limit string
}

type LogResult struct {
	UserID   string     `json:"_id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}

type ExerciseService struct {
	db    *gorm.DB
	audit *AuditService
	now   func() time.Time
}

func NewExerciseService(db *gorm.DB, audit *AuditService) *ExerciseService {
	return &ExerciseService{db: db, audit: audit, now: time.Now}
}

func (s *ExerciseService) Add(userID string, input ExerciseInput) (*ExerciseResult, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, validationErr("description", "must not be empty")
	}

	duration, err := strconv.Atoi(strings.TrimSpace(input.Duration))
	if err != nil {
		return nil, validationErr("duration", "must be a whole number of minutes")
	}
	if duration < 0 {
		return nil, validationErr("duration", "must not be negative")
	}

	date := s.now()
	if input.Date != "" {
		parsed, err := parseDate(input.Date)
		if err != nil {
			return nil, validationErr("date", "must be yyyy-mm-dd")
		}
		date = parsed
	}

	exercise := models.Exercise{
		UserID:      user.ID,
		Description: description,
		Duration:    duration,
		Date:        date,
	}
	if err := s.db.Create(&exercise).Error; err != nil {
		return nil, err
	}

	s.audit.LogAction(&user.ID, "ADD_EXERCISE", exercise.ID, map[string]interface{}{
		"description": description,
		"duration":    duration,
	}, input.IPAddress)

	return &ExerciseResult{
		UserID:      user.ID,
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        FormatDate(exercise.Date),
	}, nil
}

func (s *ExerciseService) Log(userID string, filter LogFilter) (*LogResult, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	// Unparseable bounds are ignored rather than rejected; the filter
	// simply omits them. Same for a non-numeric or negative limit.
	q := s.db.Where("user_id = ?", user.ID)
	if from, err := parseDate(filter.From); err == nil {
		q = q.Where("date >= ?", from)
	}
	if to, err := parseDate(filter.To); err == nil {
		q = q.Where("date <= ?", to)
	}
	q = q.Order("date asc")
	if limit, err := strconv.Atoi(filter.Limit); err == nil && limit > 0 {
		q = q.Limit(limit)
	}

	var exercises []models.Exercise
	if err := q.Find(&exercises).Error; err != nil {
		return nil, err
	}

	log := make([]LogEntry, 0, len(exercises))
	for _, e := range exercises {
		log = append(log, toLogEntry(e))
	}

	return &LogResult{
		UserID:   user.ID,
		Username: user.Username,
		Count:    len(log),
		Log:      log,
	}, nil
}

func (s *ExerciseService) findUser(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
