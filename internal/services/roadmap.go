package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillbridge/skillbridge-backend/internal/apperr"
	"github.com/skillbridge/skillbridge-backend/internal/kv"
	"github.com/skillbridge/skillbridge-backend/internal/logger"
	"github.com/skillbridge/skillbridge-backend/internal/repos"
	"github.com/skillbridge/skillbridge-backend/internal/types"
)

type RoadmapService interface {
	// GenerateRoadmap returns the user's roadmap, creating it from the gap
	// report on first request, with saved progress overlaid.
	GenerateRoadmap(ctx context.Context, userID uuid.UUID) (*types.Roadmap, error)
	// MarkStepCompleted marks one step completed and persists the override.
	// An unknown step id is a silent no-op.
	MarkStepCompleted(ctx context.Context, roadmapID, stepID uuid.UUID) (*types.Roadmap, error)
}

type roadmapService struct {
	db            *gorm.DB
	log           *logger.Logger
	roadmapRepo   repos.RoadmapRepo
	gapReportRepo repos.GapReportRepo
	progress      kv.Store
}

func NewRoadmapService(db *gorm.DB, log *logger.Logger, roadmapRepo repos.RoadmapRepo, gapReportRepo repos.GapReportRepo, progress kv.Store) RoadmapService {
	serviceLog := log.With("service", "RoadmapService")
	return &roadmapService{
		db:            db,
		log:           serviceLog,
		roadmapRepo:   roadmapRepo,
		gapReportRepo: gapReportRepo,
		progress:      progress,
	}
}

func progressKey(roadmapID uuid.UUID) string {
	return "roadmap_progress_" + roadmapID.String()
}

// ReconcileRoadmap overlays saved step-status overrides onto a fetched
// roadmap. Steps without a saved entry keep their server status; step order
// and every other field are preserved. Reconciling twice against the same
// map yields an identical result.
func ReconcileRoadmap(roadmap types.Roadmap, saved map[uuid.UUID]types.StepStatus) types.Roadmap {
	if len(saved) == 0 || len(roadmap.Steps) == 0 {
		return roadmap
	}
	steps := make([]types.RoadmapStep, len(roadmap.Steps))
	copy(steps, roadmap.Steps)
	for i := range steps {
		if status, ok := saved[steps[i].ID]; ok {
			steps[i].Status = status
		}
	}
	roadmap.Steps = steps
	return roadmap
}

// DecodeSavedProgress parses a persisted step-status map. Malformed ids or
// unknown status values are dropped, never surfaced as errors.
func DecodeSavedProgress(raw []byte) map[uuid.UUID]types.StepStatus {
	out := map[uuid.UUID]types.StepStatus{}
	if len(raw) == 0 {
		return out
	}
	var entries map[string]string
	if err := json.Unmarshal(raw, &entries); err != nil {
		return out
	}
	for idStr, statusStr := range entries {
		stepID, err := uuid.Parse(idStr)
		if err != nil {
			continue
		}
		status, ok := types.ParseStepStatus(statusStr)
		if !ok {
			continue
		}
		out[stepID] = status
	}
	return out
}

func (rs *roadmapService) savedProgress(ctx context.Context, roadmapID uuid.UUID) map[uuid.UUID]types.StepStatus {
	raw, err := rs.progress.Get(ctx, progressKey(roadmapID))
	if err != nil {
		rs.log.Warn("Failed to read saved roadmap progress", "roadmap_id", roadmapID, "error", err)
		return map[uuid.UUID]types.StepStatus{}
	}
	return DecodeSavedProgress(raw)
}

// saveStepStatus merges one override into the persisted map for the roadmap.
// Read-modify-write, last writer wins.
func (rs *roadmapService) saveStepStatus(ctx context.Context, roadmapID, stepID uuid.UUID, status types.StepStatus) error {
	key := progressKey(roadmapID)
	entries := map[string]string{}
	if raw, err := rs.progress.Get(ctx, key); err == nil && len(raw) > 0 {
		if uErr := json.Unmarshal(raw, &entries); uErr != nil {
			entries = map[string]string{}
		}
	}
	entries[stepID.String()] = string(status)
	encoded, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return rs.progress.Set(ctx, key, encoded)
}

func (rs *roadmapService) GenerateRoadmap(ctx context.Context, userID uuid.UUID) (*types.Roadmap, error) {
	existing, err := rs.roadmapRepo.GetLatestByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching roadmap: %w", err)
	}
	if existing != nil {
		merged := ReconcileRoadmap(*existing, rs.savedProgress(ctx, existing.ID))
		return &merged, nil
	}

	var created *types.Roadmap
	if err := rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		report, rErr := rs.gapReportRepo.GetLatestByUserID(ctx, tx, userID)
		if rErr != nil {
			return fmt.Errorf("error fetching gap report for roadmap: %w", rErr)
		}
		roadmap := buildRoadmap(userID, report)
		c, cErr := rs.roadmapRepo.Create(ctx, tx, roadmap)
		if cErr != nil {
			return fmt.Errorf("error creating roadmap: %w", cErr)
		}
		created = c
		return nil
	}); err != nil {
		rs.log.Warn("GenerateRoadmap transaction error:", "error", err)
		return nil, err
	}
	// Freshly generated, nothing saved yet to overlay.
	return created, nil
}

func (rs *roadmapService) MarkStepCompleted(ctx context.Context, roadmapID, stepID uuid.UUID) (*types.Roadmap, error) {
	roadmap, err := rs.roadmapRepo.GetByID(ctx, nil, roadmapID)
	if err != nil {
		return nil, fmt.Errorf("error fetching roadmap: %w", err)
	}
	if roadmap == nil {
		return nil, apperr.New(http.StatusNotFound, "roadmap_not_found", apperr.ErrNotFound)
	}

	merged := ReconcileRoadmap(*roadmap, rs.savedProgress(ctx, roadmapID))

	found := false
	for i := range merged.Steps {
		if merged.Steps[i].ID == stepID {
			merged.Steps[i].Status = types.StepStatusCompleted
			found = true
			break
		}
	}
	if !found {
		// Unknown step id: roadmap is returned unchanged, nothing persisted.
		return &merged, nil
	}

	if err := rs.saveStepStatus(ctx, roadmapID, stepID, types.StepStatusCompleted); err != nil {
		return nil, fmt.Errorf("error persisting step status: %w", err)
	}
	return &merged, nil
}

// buildRoadmap derives an ordered step list from the user's gap report. Gaps
// are addressed highest priority first; without a report the generic starter
// plan is used.
func buildRoadmap(userID uuid.UUID, report *types.GapReport) *types.Roadmap {
	roadmapID := uuid.New()
	roadmap := &types.Roadmap{
		ID:        roadmapID,
		UserID:    userID,
		Title:     "Career Readiness Roadmap",
		Status:    types.RoadmapStatusActive,
		CreatedAt: time.Now().UTC(),
	}

	var steps []types.RoadmapStep
	order := 1
	if report != nil {
		for _, priority := range []types.GapPriority{types.GapPriorityHigh, types.GapPriorityMedium, types.GapPriorityLow} {
			for _, gap := range report.SkillGaps {
				if gap.Priority != priority || gap.Gap() == 0 {
					continue
				}
				skillID := gap.SkillID
				steps = append(steps, types.RoadmapStep{
					ID:          uuid.New(),
					RoadmapID:   roadmapID,
					StepOrder:   order,
					Title:       fmt.Sprintf("Close the %s gap", gap.SkillName),
					Description: fmt.Sprintf("Raise %s from %.0f to %.0f", gap.SkillName, gap.CurrentLevel, gap.RequiredLevel),
					SkillID:     &skillID,
					EstHours:    int(gap.Gap() / 2),
					Status:      types.StepStatusPending,
				})
				order++
			}
		}
	}
	if len(steps) == 0 {
		steps = append(steps, types.RoadmapStep{
			ID:          uuid.New(),
			RoadmapID:   roadmapID,
			StepOrder:   1,
			Title:       "Pick a target role",
			Description: "Choose the role to prepare for and generate a gap report",
			EstHours:    2,
			Status:      types.StepStatusPending,
		})
	}

	total := 0
	for _, step := range steps {
		total += step.EstHours
	}
	roadmap.Steps = steps
	roadmap.EstimatedTotalHours = total
	return roadmap
}
