package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mindwork/internal/model"
	"mindwork/internal/repository"
	"mindwork/internal/validator"
)

// Mood entries are append-only: there is no update or delete endpoint.

type createMoodEntryRequest struct {
	UserID            string   `json:"user_id" validate:"required,uuid"`
	Mood              string   `json:"mood" validate:"required"`
	StressLevel       *int16   `json:"stress_level" validate:"omitempty,min=0,max=10"`
	SleepHours        *float64 `json:"sleep_hours" validate:"omitempty,min=0,max=24"`
	ScreenTimeMinutes *int     `json:"screen_time_minutes" validate:"omitempty,min=0"`
	Notes             *string  `json:"notes"`
	Source            string   `json:"source"`
	Confidence        *float64 `json:"confidence" validate:"omitempty,min=0,max=1"`
}

// ListMoodEntries returns all mood entries, newest first.
func (h *Handler) ListMoodEntries(c *fiber.Ctx) error {
	entries, err := h.repo.ListMoodEntries(c.Context())
	if err != nil {
		return serverError(c, err)
	}
	if entries == nil {
		entries = []model.MoodEntry{}
	}
	return c.JSON(entries)
}

func (h *Handler) ListMoodEntriesByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return notFound(c)
	}

	entries, err := h.repo.ListMoodEntriesByUser(c.Context(), userID)
	if err != nil {
		return serverError(c, err)
	}
	if entries == nil {
		entries = []model.MoodEntry{}
	}
	return c.JSON(entries)
}

func (h *Handler) ListMoodEntriesByOrganization(c *fiber.Ctx) error {
	organizationID, err := uuid.Parse(c.Params("organizationId"))
	if err != nil {
		return notFound(c)
	}

	entries, err := h.repo.ListMoodEntriesByOrganization(c.Context(), organizationID)
	if err != nil {
		return serverError(c, err)
	}
	if entries == nil {
		entries = []model.MoodEntry{}
	}
	return c.JSON(entries)
}

func (h *Handler) GetMoodEntry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c)
	}

	entry, err := h.repo.GetMoodEntryByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrMoodEntryNotFound) {
			return notFound(c)
		}
		return serverError(c, err)
	}
	return c.JSON(entry)
}

// CreateMoodEntry records a mood entry for an existing user. Omitted
// measurements fall back to zero values, source to Manual and
// confidence to 0.95.
func (h *Handler) CreateMoodEntry(c *fiber.Ctx) error {
	var req createMoodEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return fieldProblem(c, "body", "invalid request body")
	}
	if err := h.validator.Validate(req); err != nil {
		return validationProblem(c, validator.Translate(err))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return fieldProblem(c, "user_id", "must be a valid UUID")
	}

	mood, err := model.ParseMoodState(req.Mood)
	if err != nil {
		return fieldProblem(c, "mood", "must be one of Happy, Calm, Neutral, Tired, Stressed, Anxious, Sad")
	}

	source := model.SourceManual
	if req.Source != "" {
		source, err = model.ParseDataSource(req.Source)
		if err != nil {
			return fieldProblem(c, "source", "must be one of Manual, Sensor, Import")
		}
	}

	if err := h.validation.ValidateMoodEntryUser(c.Context(), userID); err != nil {
		return domainError(c, err)
	}

	params := repository.CreateMoodEntryParams{
		UserID:     userID,
		Mood:       mood,
		Notes:      req.Notes,
		Source:     source,
		Confidence: model.DefaultConfidence,
	}
	if req.StressLevel != nil {
		params.StressLevel = *req.StressLevel
	}
	if req.SleepHours != nil {
		params.SleepHours = *req.SleepHours
	}
	if req.ScreenTimeMinutes != nil {
		params.ScreenTimeMinutes = *req.ScreenTimeMinutes
	}
	if req.Confidence != nil {
		params.Confidence = *req.Confidence
	}

	entry, err := h.repo.CreateMoodEntry(c.Context(), params)
	if err != nil {
		return serverError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}
