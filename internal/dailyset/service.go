package dailyset

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/dailylearn/internal/clock"
	"github.com/abhisek/dailylearn/internal/curriculum"
	"github.com/abhisek/dailylearn/internal/logger"
	"github.com/abhisek/dailylearn/internal/store"
)

// Service serves today's set, caching generated sets in the store. The
// cache is not a source of truth: a missing or partial entry is regenerated.
type Service struct {
	gen       *Generator
	clock     clock.Clock
	sets      *store.Collection[DailySet]
	questions *store.Collection[Question]
	log       *logger.Logger
}

// NewService wires a Service over kv.
func NewService(kv store.KV, c clock.Clock, log *logger.Logger) *Service {
	log = logger.OrNop(log)
	return &Service{
		gen:       NewGenerator(log),
		clock:     c,
		sets:      store.NewCollection[DailySet](kv, store.KeyDailySets, log),
		questions: store.NewCollection[Question](kv, store.KeyQuestions, log),
		log:       log,
	}
}

// Generate builds today's set without touching the store.
func (s *Service) Generate(grade, semester int) (*DailySetWithQuestions, error) {
	return s.gen.Generate(s.clock.Now(), grade, semester)
}

// TodaySet returns today's set for grade and semester, from the cache when
// present, otherwise freshly generated and stored.
func (s *Service) TodaySet(ctx context.Context, grade, semester int) (*DailySetWithQuestions, error) {
	now := s.clock.Now()
	id := SetID(grade, semester, now.YearDay())

	if cached, ok := s.Lookup(ctx, id); ok {
		s.log.Debug("daily set cache hit", "set_id", id)
		return cached, nil
	}

	out, err := s.gen.Generate(now, grade, semester)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Lookup returns a stored set and its questions. Entries whose question count
// does not match the header are treated as absent.
func (s *Service) Lookup(ctx context.Context, setID string) (*DailySetWithQuestions, bool) {
	var set *DailySet
	for _, ds := range s.sets.All(ctx) {
		if ds.ID == setID {
			set = &ds
			break
		}
	}
	if set == nil {
		return nil, false
	}

	qs := s.questions.Filter(ctx, func(q Question) bool { return q.DailySetID == setID })
	if len(qs) != set.TotalQuestions {
		s.log.Warn("cached daily set is incomplete, regenerating",
			"set_id", setID, "want", set.TotalQuestions, "got", len(qs))
		return nil, false
	}
	sort.Slice(qs, func(i, j int) bool { return qs[i].OrderIndex < qs[j].OrderIndex })

	return &DailySetWithQuestions{
		Set:                 *set,
		Questions:           qs,
		UsingFallbackCorpus: !curriculum.HasGrade(set.Grade),
	}, true
}

// save replaces any stale entry for the set and its questions.
func (s *Service) save(ctx context.Context, d *DailySetWithQuestions) error {
	id := d.Set.ID

	sets := s.sets.Filter(ctx, func(ds DailySet) bool { return ds.ID != id })
	sets = append(sets, d.Set)
	if err := s.sets.Replace(ctx, sets); err != nil {
		return fmt.Errorf("cache daily set %s: %w", id, err)
	}

	qs := s.questions.Filter(ctx, func(q Question) bool { return q.DailySetID != id })
	qs = append(qs, d.Questions...)
	if err := s.questions.Replace(ctx, qs); err != nil {
		return fmt.Errorf("cache questions for %s: %w", id, err)
	}
	return nil
}

// QuestionIndex maps question ID to question across every cached set.
func (s *Service) QuestionIndex(ctx context.Context) map[string]Question {
	all := s.questions.All(ctx)
	idx := make(map[string]Question, len(all))
	for _, q := range all {
		idx[q.ID] = q
	}
	return idx
}
