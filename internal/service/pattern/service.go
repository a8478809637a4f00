package pattern

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dylanbyc/hi-fifty/internal/domain/attendance"
	"github.com/dylanbyc/hi-fifty/internal/domain/pattern"
	"github.com/dylanbyc/hi-fifty/internal/pkg/database"
	"github.com/dylanbyc/hi-fifty/internal/repository/postgresql"
)

type PatternServiceImpl struct {
	db *database.DB
	pattern.PatternRepository
	attendanceService attendance.AttendanceService
	expander          *Expander
}

func NewPatternService(
	db *database.DB,
	patternRepo pattern.PatternRepository,
	attendanceService attendance.AttendanceService,
	expander *Expander,
) pattern.PatternService {
	return &PatternServiceImpl{
		db:                db,
		PatternRepository: patternRepo,
		attendanceService: attendanceService,
		expander:          expander,
	}
}

// Create implements pattern.PatternService.
func (s *PatternServiceImpl) Create(ctx context.Context, req pattern.CreatePatternRequest) (pattern.PatternResponse, error) {
	if err := req.Validate(); err != nil {
		return pattern.PatternResponse{}, err
	}

	p := pattern.RecurringPattern{
		ID:             uuid.NewString(),
		Name:           req.Name,
		DaysOfWeek:     req.DaysOfWeek,
		AttendanceType: attendance.Type(req.AttendanceType),
		StartDate:      req.StartDate,
		Enabled:        true,
	}
	if req.EndDate != nil && *req.EndDate != "" {
		end := *req.EndDate
		p.EndDate = &end
	}
	if req.LeaveType != nil && p.AttendanceType == attendance.TypeLeave {
		lt := attendance.LeaveType(*req.LeaveType)
		p.LeaveType = &lt
	}
	if req.Enabled != nil {
		p.Enabled = *req.Enabled
	}

	created, err := s.PatternRepository.Create(ctx, p)
	if err != nil {
		return pattern.PatternResponse{}, fmt.Errorf("failed to create pattern: %w", err)
	}

	return pattern.ToResponse(created), nil
}

// Get implements pattern.PatternService.
func (s *PatternServiceImpl) Get(ctx context.Context, id string) (pattern.PatternResponse, error) {
	p, err := s.PatternRepository.GetByID(ctx, id)
	if err != nil {
		return pattern.PatternResponse{}, err
	}
	return pattern.ToResponse(p), nil
}

// List implements pattern.PatternService.
func (s *PatternServiceImpl) List(ctx context.Context) ([]pattern.PatternResponse, error) {
	patterns, err := s.PatternRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patterns: %w", err)
	}

	resp := make([]pattern.PatternResponse, 0, len(patterns))
	for _, p := range patterns {
		resp = append(resp, pattern.ToResponse(p))
	}
	return resp, nil
}

// Update implements pattern.PatternService.
func (s *PatternServiceImpl) Update(ctx context.Context, req pattern.UpdatePatternRequest) (pattern.PatternResponse, error) {
	if err := req.Validate(); err != nil {
		return pattern.PatternResponse{}, err
	}

	p, err := s.PatternRepository.GetByID(ctx, req.ID)
	if err != nil {
		return pattern.PatternResponse{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if len(req.DaysOfWeek) > 0 {
		p.DaysOfWeek = req.DaysOfWeek
	}
	if req.AttendanceType != nil {
		p.AttendanceType = attendance.Type(*req.AttendanceType)
		if p.AttendanceType != attendance.TypeLeave {
			p.LeaveType = nil
		}
	}
	if req.StartDate != nil {
		p.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			p.EndDate = nil
		} else {
			end := *req.EndDate
			p.EndDate = &end
		}
	}
	if req.LeaveType != nil && p.AttendanceType == attendance.TypeLeave {
		lt := attendance.LeaveType(*req.LeaveType)
		p.LeaveType = &lt
	}
	if req.Enabled != nil {
		p.Enabled = *req.Enabled
	}

	updated, err := s.PatternRepository.Update(ctx, p)
	if err != nil {
		return pattern.PatternResponse{}, fmt.Errorf("failed to update pattern: %w", err)
	}

	return pattern.ToResponse(updated), nil
}

// Delete implements pattern.PatternService.
func (s *PatternServiceImpl) Delete(ctx context.Context, id string) error {
	return s.PatternRepository.Delete(ctx, id)
}

// Apply implements pattern.PatternService. Expansion is pure; the merge
// step goes through attendance.ApplyGenerated, which never overwrites an
// existing record.
func (s *PatternServiceImpl) Apply(ctx context.Context, req pattern.ApplyPatternsRequest) (pattern.ApplyPatternsResponse, error) {
	if err := req.Validate(); err != nil {
		return pattern.ApplyPatternsResponse{}, err
	}

	patterns, err := s.PatternRepository.List(ctx)
	if err != nil {
		return pattern.ApplyPatternsResponse{}, fmt.Errorf("failed to list patterns: %w", err)
	}

	start, _ := time.Parse(attendance.DateLayout, req.StartDate)
	end, _ := time.Parse(attendance.DateLayout, req.EndDate)

	records, conflicts := s.expander.Expand(patterns, start, end)
	for _, c := range conflicts {
		slog.Warn("Overlapping recurring patterns; first match wins",
			"date", c.Date, "winner_id", c.WinnerID, "loser_ids", c.LoserIDs)
	}

	// The whole batch lands or none of it does.
	var inserted int
	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		var txErr error
		inserted, txErr = s.attendanceService.ApplyGenerated(ctx, records)
		return txErr
	})
	if err != nil {
		return pattern.ApplyPatternsResponse{}, fmt.Errorf("failed to apply generated records: %w", err)
	}

	return pattern.ApplyPatternsResponse{
		Generated: len(records),
		Inserted:  inserted,
		Skipped:   len(records) - inserted,
		Conflicts: conflicts,
	}, nil
}
