package serve

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/dugout-app/dugout/pkg/backend"
	"github.com/dugout-app/dugout/pkg/config"
	"github.com/dugout-app/dugout/pkg/cron"
	"github.com/dugout-app/dugout/pkg/db"
	"github.com/dugout-app/dugout/pkg/jobs"
	"github.com/dugout-app/dugout/pkg/stats"
	"github.com/dugout-app/dugout/pkg/web"
	"golang.org/x/sync/errgroup"
)

// Server is the dugout server.
type Server struct {
	HTTPServer  *web.HTTPServer
	StatsServer *stats.StatsServer
	Cron        *cron.Scheduler
	Config      *config.Config
	Backend     *backend.Backend
	DB          *db.DB

	logger *log.Logger
	ctx    context.Context
	jobs   []int
}

// NewServer returns a new *Server configured to serve dugout.
// It expects a context with *backend.Backend, *db.DB, *log.Logger, and
// *config.Config attached.
func NewServer(ctx context.Context) (*Server, error) {
	var err error
	cfg := config.FromContext(ctx)
	if cfg == nil {
		return nil, config.ErrNilConfig
	}
	be := backend.FromContext(ctx)
	if be == nil {
		return nil, errors.New("backend not found in context")
	}
	srv := &Server{
		Config:  cfg,
		Backend: be,
		DB:      db.FromContext(ctx),
		logger:  log.FromContext(ctx).WithPrefix("server"),
		ctx:     ctx,
	}

	// Add cron jobs.
	sched := cron.NewScheduler(ctx)
	for _, j := range jobs.List() {
		spec := j.Runner.Spec(ctx)
		if spec == "" {
			srv.logger.Debug("cron job disabled", "job", j.Name)
			continue
		}
		id, err := sched.AddFunc(spec, j.Runner.Func(ctx))
		if err != nil {
			srv.logger.Warn("error adding cron job", "job", j.Name, "err", err)
			continue
		}

		srv.jobs = append(srv.jobs, id)
	}

	srv.Cron = sched

	srv.HTTPServer, err = web.NewHTTPServer(ctx)
	if err != nil {
		return nil, fmt.Errorf("create http server: %w", err)
	}

	srv.StatsServer, err = stats.NewStatsServer(ctx)
	if err != nil {
		return nil, fmt.Errorf("create stats server: %w", err)
	}

	return srv, nil
}

// Start starts the HTTP and stats servers and the job scheduler. It blocks
// until both servers stop.
func (s *Server) Start() error {
	errg, _ := errgroup.WithContext(s.ctx)

	errg.Go(func() error {
		s.logger.Print("Starting HTTP server", "addr", s.Config.HTTP.ListenAddr)
		if err := s.HTTPServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if s.Config.Stats.ListenAddr != "" {
		errg.Go(func() error {
			s.logger.Print("Starting Stats server", "addr", s.Config.Stats.ListenAddr)
			if err := s.StatsServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	errg.Go(func() error {
		s.Cron.Start()
		return nil
	})
	return errg.Wait()
}

// Shutdown lets the server gracefully shutdown. Live membership watches
// are cancelled first so streaming responses can finish.
func (s *Server) Shutdown(ctx context.Context) error {
	_ = s.Backend.Close()

	errg, ctx := errgroup.WithContext(ctx)
	errg.Go(func() error {
		return s.HTTPServer.Shutdown(ctx)
	})
	errg.Go(func() error {
		return s.StatsServer.Shutdown(ctx)
	})
	errg.Go(func() error {
		for _, id := range s.jobs {
			s.Cron.Remove(id)
		}
		s.Cron.Stop()
		return nil
	})
	return errg.Wait()
}

// Close closes the server immediately.
func (s *Server) Close() error {
	_ = s.Backend.Close()

	var errg errgroup.Group
	errg.Go(s.HTTPServer.Close)
	errg.Go(s.StatsServer.Close)
	errg.Go(func() error {
		s.Cron.Stop()
		return nil
	})
	return errg.Wait()
}
