package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/alumni-mentorship-api/internal/dto"
	"github.com/noah-isme/alumni-mentorship-api/internal/models"
	appErrors "github.com/noah-isme/alumni-mentorship-api/pkg/errors"
)

type meetingDetailLister interface {
	ListDateDetails(ctx context.Context, filter models.MeetingFilter) ([]models.MeetingDateDetail, error)
}

type dashboardCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// DashboardServiceConfig tunes dashboard behaviour.
type DashboardServiceConfig struct {
	CacheTTL time.Duration
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Meetings meetingDetailLister
	Statuses statusLister
	Phases   phaseResolver
	Cache    dashboardCache
	Logger   *zap.Logger
	Config   DashboardServiceConfig
}

// DashboardService composes meeting badges for polling dashboards.
type DashboardService struct {
	meetings meetingDetailLister
	statuses statusLister
	phases   phaseResolver
	cache    dashboardCache
	logger   *zap.Logger
	cfg      DashboardServiceConfig
}

// NewDashboardService constructs a DashboardService with sane defaults.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	cfg := params.Config
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Minute
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		meetings: params.Meetings,
		statuses: params.Statuses,
		phases:   params.Phases,
		cache:    params.Cache,
		logger:   logger,
		cfg:      cfg,
	}
}

// Meetings returns one badge per meeting occurrence visible to the caller and
// reports whether the payload came from cache.
func (s *DashboardService) Meetings(ctx context.Context, actor *models.JWTClaims, query dto.MeetingDashboardQuery) (*dto.MeetingDashboardResponse, bool, error) {
	if err := requireClaims(actor); err != nil {
		return nil, false, err
	}
	switch actor.Role {
	case models.RoleMentor:
		query.MentorID = actor.UserID
	case models.RoleMentee:
		query.MenteeID = actor.UserID
	}
	phase, err := s.phases.Resolve(ctx, query.PhaseID)
	if err != nil {
		return nil, false, err
	}
	query.PhaseID = phase.ID

	cacheKey := fmt.Sprintf("dash:meetings:%s:%s:%s", query.PhaseID, query.MentorID, query.MenteeID)
	if s.cache != nil {
		var cached dto.MeetingDashboardResponse
		hit, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			s.logger.Warn("dashboard cache lookup failed", zap.String("key", cacheKey), zap.Error(err))
		} else if hit {
			return &cached, true, nil
		}
	}

	resp, err := s.compose(ctx, query)
	if err != nil {
		return nil, false, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, resp, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("dashboard cache store failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}
	return resp, false, nil
}

func (s *DashboardService) compose(ctx context.Context, query dto.MeetingDashboardQuery) (*dto.MeetingDashboardResponse, error) {
	details, err := s.meetings.ListDateDetails(ctx, models.MeetingFilter{PhaseID: query.PhaseID, MentorID: query.MentorID, MenteeID: query.MenteeID})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load meetings")
	}

	grouped := map[string][]models.MeetingStatus{}
	if len(details) > 0 {
		ids := make([]string, len(details))
		for i, detail := range details {
			ids[i] = detail.MeetingID
		}
		statuses, err := s.statuses.List(ctx, models.MeetingStatusFilter{MeetingIDs: ids})
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load meeting statuses")
		}
		grouped = groupStatusesByMeeting(statuses)
	}

	resp := &dto.MeetingDashboardResponse{
		PhaseID: query.PhaseID,
		Badges:  make([]dto.MeetingBadge, 0, len(details)),
		Totals:  map[string]int{"meetings": len(details), "locked": 0},
	}
	for _, detail := range details {
		statuses := grouped[detail.MeetingID]
		badge := dto.MeetingBadge{
			MeetingID:     detail.MeetingID,
			MeetingDate:   dto.FormatDate(detail.MeetingDate),
			MeetingTime:   detail.MeetingTime,
			MentorID:      detail.MentorID,
			OverallStatus: OverallStatus(statuses),
			Locked:        IsLocked(statuses),
			StatusCounts:  make(map[models.MeetingStatusValue]int),
		}
		for _, st := range statuses {
			badge.StatusCounts[st.Status]++
		}
		if badge.Locked {
			resp.Totals["locked"]++
		}
		resp.Totals[badge.OverallStatus]++
		resp.Badges = append(resp.Badges, badge)
	}
	return resp, nil
}
