package web

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/pumptrack/statserver/internal/config"
	"github.com/pumptrack/statserver/internal/domain"
	"github.com/pumptrack/statserver/internal/pipeline"
	"github.com/pumptrack/statserver/internal/service"
	"github.com/pumptrack/statserver/internal/web/webpath"
)

type Server struct {
	stats *service.StatsService
	app   *fiber.App
	cfg   config.Server
}

func New(stats *service.StatsService, cfg config.Server) *Server {
	server := Server{
		stats: stats,
		cfg:   cfg,
	}

	app := fiber.New()
	app.Get(webpath.Home, func(ctx *fiber.Ctx) error {
		return ctx.Redirect(webpath.ApiLeaderboard)
	})
	app.Get(webpath.ApiLeaderboard, server.handleLeaderboard)
	app.Get(webpath.ApiGetPlayers, server.handlePlayer)
	app.Get(webpath.ApiGetCharts, server.handleChart)
	app.Get(webpath.ApiGetResults, server.handleResultStats)
	app.Post(webpath.ApiRecompute, server.handleRecompute)
	server.app = app

	return &server
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) handleLeaderboard(ctx *fiber.Ctx) error {
	profiles, err := s.stats.Leaderboard()
	if err != nil {
		return statusFor(ctx, err)
	}
	entries := make([]leaderboardEntry, 0, len(profiles))
	for i, p := range profiles {
		entries = append(entries, convertEntry(i+1, p))
	}
	return ctx.JSON(entries)
}

func (s *Server) handlePlayer(ctx *fiber.Ctx) error {
	raw := ctx.Params("id")
	var p *domain.Profile
	var errGet error
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		p, errGet = s.stats.GetProfile(id)
	} else {
		p, errGet = s.stats.GetProfileByName(raw)
	}
	if errGet != nil {
		return statusFor(ctx, errGet)
	}
	place := s.place(p.ID)
	return ctx.JSON(convertProfile(place, p))
}

// place recomputes the profile's leaderboard position; cheap relative
// to a snapshot lookup and avoids storing redundant state.
func (s *Server) place(playerID int64) int {
	profiles, err := s.stats.Leaderboard()
	if err != nil {
		return 0
	}
	for i, p := range profiles {
		if p.ID == playerID {
			return i + 1
		}
	}
	return 0
}

func (s *Server) handleChart(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return nil
	}
	chart, err := s.stats.GetChart(id)
	if err != nil {
		return statusFor(ctx, err)
	}
	return ctx.JSON(convertChart(chart))
}

func (s *Server) handleResultStats(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return nil
	}
	st, err := s.stats.GetResultStats(id)
	if err != nil {
		return statusFor(ctx, err)
	}
	return ctx.JSON(resultStatsResponse{
		ResultID:       id,
		StartingRating: st.StartingRating,
		RatingDiff:     st.RatingDiff,
		RatingDiffLast: st.RatingDiffLast,
		SkillPoints:    st.SkillPoints,
	})
}

func (s *Server) handleRecompute(ctx *fiber.Ctx) error {
	// detached from the request context: the run must survive the
	// response
	err := s.stats.Recompute(context.Background())
	if err != nil {
		return statusFor(ctx, err)
	}
	ctx.Status(fiber.StatusAccepted)
	return nil
}

func statusFor(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotReady):
		ctx.Status(fiber.StatusServiceUnavailable)
	case errors.Is(err, service.ErrNotFound):
		ctx.Status(fiber.StatusNotFound)
	case errors.Is(err, pipeline.ErrBusy):
		ctx.Status(fiber.StatusConflict)
	default:
		return err
	}
	return nil
}
