package service

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/support-search-api/internal/models"
	appErrors "github.com/noah-isme/support-search-api/pkg/errors"
	"github.com/noah-isme/support-search-api/pkg/jobs"
	"github.com/noah-isme/support-search-api/pkg/tracer"
)

const (
	choiceCacheKey     = "search:choices"
	choiceCachePattern = "search:choices*"

	// JobWarmChoices reloads the cached choice lists.
	JobWarmChoices = "search.choices.warm"
)

type choiceRepository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListTopics(ctx context.Context) ([]models.Topic, error)
	ListForums(ctx context.Context) ([]models.Forum, error)
}

type choiceCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Invalidate(ctx context.Context, pattern string) error
}

type jobEnqueuer interface {
	Enqueue(job jobs.Job) (bool, error)
}

// ChoiceService loads the database-backed choice lists of the search form.
type ChoiceService struct {
	repo    choiceRepository
	cache   choiceCache
	metrics *MetricsService
	logger  *zap.Logger
	ttl     time.Duration
	queue   jobEnqueuer
}

// NewChoiceService constructs a ChoiceService. A nil cache disables caching.
func NewChoiceService(repo choiceRepository, cache choiceCache, metrics *MetricsService, logger *zap.Logger, ttl time.Duration) *ChoiceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChoiceService{repo: repo, cache: cache, metrics: metrics, logger: logger, ttl: ttl}
}

// Load returns products, topics and forums. The boolean reports a cache hit.
// Cache failures fall through to the database.
func (s *ChoiceService) Load(ctx context.Context) (*models.ChoiceSet, bool, error) {
	ctx, span := tracer.Start(ctx, "ChoiceService.Load")
	defer span.End()

	if s.cache != nil {
		var cached models.ChoiceSet
		hit, err := s.cache.Get(ctx, choiceCacheKey, &cached)
		if err != nil {
			s.logger.Warn("choice cache unavailable, reading database", zap.Error(err))
		}
		if hit {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return &cached, true, nil
		}
	}

	set, err := s.fetch(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load choices")
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load search choices")
	}
	span.SetAttributes(
		attribute.Bool("cache.hit", false),
		attribute.Int("choices.products", len(set.Products)),
		attribute.Int("choices.topics", len(set.Topics)),
		attribute.Int("choices.forums", len(set.Forums)),
	)

	if s.cache != nil {
		_ = s.cache.Set(ctx, choiceCacheKey, set, s.ttl)
	}
	return set, false, nil
}

// UseWarmQueue makes Refresh schedule a background reload after invalidating.
func (s *ChoiceService) UseWarmQueue(queue jobEnqueuer) {
	s.queue = queue
}

// Refresh drops cached choice lists so the next Load reads the database.
func (s *ChoiceService) Refresh(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Invalidate(ctx, choiceCachePattern); err != nil {
		return appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "failed to refresh search choices")
	}
	s.logger.Info("search choices cache invalidated")
	s.ScheduleWarm()
	return nil
}

// ScheduleWarm queues a cache reload when a warm queue is configured.
func (s *ChoiceService) ScheduleWarm() {
	if s.queue == nil || s.cache == nil {
		return
	}
	if _, err := s.queue.Enqueue(jobs.Job{Type: JobWarmChoices}); err != nil {
		s.logger.Warn("failed to schedule choice warm-up", zap.Error(err))
	}
}

// Warm reads the choice lists from the database and stores them in cache.
func (s *ChoiceService) Warm(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "ChoiceService.Warm")
	defer span.End()

	set, err := s.fetch(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "warm choices")
		return err
	}
	if s.cache == nil {
		return nil
	}
	return s.cache.Set(ctx, choiceCacheKey, set, s.ttl)
}

// HandleJob runs queued choice jobs.
func (s *ChoiceService) HandleJob(ctx context.Context, job jobs.Job) error {
	switch job.Type {
	case JobWarmChoices:
		return s.Warm(ctx)
	default:
		return fmt.Errorf("unknown job type %q", job.Type)
	}
}

func (s *ChoiceService) fetch(ctx context.Context) (*models.ChoiceSet, error) {
	set := &models.ChoiceSet{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		start := time.Now()
		products, err := s.repo.ListProducts(gctx)
		s.metrics.ObserveDBQuery("choices_products", time.Since(start))
		set.Products = products
		return err
	})
	g.Go(func() error {
		start := time.Now()
		topics, err := s.repo.ListTopics(gctx)
		s.metrics.ObserveDBQuery("choices_topics", time.Since(start))
		set.Topics = topics
		return err
	})
	g.Go(func() error {
		start := time.Now()
		forums, err := s.repo.ListForums(gctx)
		s.metrics.ObserveDBQuery("choices_forums", time.Since(start))
		set.Forums = forums
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if set.Products == nil {
		set.Products = []models.Product{}
	}
	if set.Topics == nil {
		set.Topics = []models.Topic{}
	}
	if set.Forums == nil {
		set.Forums = []models.Forum{}
	}
	return set, nil
}
