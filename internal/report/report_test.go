package report

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/abhisek/dailylearn/internal/badges"
	"github.com/abhisek/dailylearn/internal/clock"
	"github.com/abhisek/dailylearn/internal/curriculum"
	"github.com/abhisek/dailylearn/internal/dailyset"
	"github.com/abhisek/dailylearn/internal/progress"
	"github.com/abhisek/dailylearn/internal/store"
)

var now = time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)

type fixture struct {
	kv      store.KV
	repo    *progress.Repository
	badges  *badges.Service
	builder *Builder
}

func newFixture() *fixture {
	kv := store.NewMemory()
	c := clock.Fixed(now)
	repo := progress.NewRepository(kv, c, nil)
	bs := badges.NewService(kv, repo, c, nil)
	return &fixture{kv: kv, repo: repo, badges: bs, builder: NewBuilder(repo, bs, c, nil)}
}

func record(id, date string, score, max, seconds int, completed bool) progress.LearningRecord {
	day, _ := time.Parse(clock.DateLayout, date)
	at := day.Add(10 * time.Hour)
	rec := progress.LearningRecord{
		ID: id, StudentID: "stu-1", DailySetID: "set-" + date,
		StartedAt: at, CreatedAt: at, TimeSpentSeconds: seconds,
	}
	if completed {
		rec.IsCompleted = true
		rec.CompletedAt = &at
		rec.TotalScore = score
		rec.MaxScore = max
	}
	return rec
}

func (f *fixture) seed(t *testing.T, recs ...progress.LearningRecord) {
	t.Helper()
	c := store.NewCollection[progress.LearningRecord](f.kv, store.KeyLearningRecords, nil)
	require.NoError(t, c.Replace(context.Background(), recs))
}

// answer stores n responses for subject on recordID, the first correct of them right.
func (f *fixture) answer(t *testing.T, recordID string, subject curriculum.Subject, n, correct int) {
	t.Helper()
	ctx := context.Background()
	qc := store.NewCollection[dailyset.Question](f.kv, store.KeyQuestions, nil)
	rc := store.NewCollection[progress.QuestionResponse](f.kv, store.KeyQuestionResponses, nil)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("%s-%s-%d", recordID, subject, i)
		require.NoError(t, qc.Append(ctx, dailyset.Question{ID: id, Subject: subject}))
		require.NoError(t, rc.Append(ctx, progress.QuestionResponse{
			ID: id, LearningRecordID: recordID, QuestionID: id, IsCorrect: i < correct, TimeSpentSeconds: 20,
		}))
	}
}

func TestLocalReport_OverviewAndDailyBuckets(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seed(t,
		record("r1", "2026-10-01", 50, 100, 300, true),
		record("r2", "2026-10-14", 80, 100, 400, true),
		record("r3", "2026-10-14", 100, 100, 200, true),
		record("r4", "2026-10-15", 0, 0, 0, false),
		record("r5", "2026-10-16", 90, 100, 500, true),
	)

	r, err := f.builder.LocalReport(ctx, "stu-1", "2026-10-10", "2026-10-16")
	require.NoError(t, err)

	assert.Equal(t, Overview{
		TotalSessions:       4,
		CompletedSessions:   3,
		TotalScore:          270,
		MaxScore:            300,
		Accuracy:            90,
		TotalTimeSeconds:    1100,
		Streak:              1,
		TotalPoints:         320,
		NextStreakMilestone: 3,
	}, r.Overview)

	assert.Equal(t, []DailyActivity{
		{Date: "2026-10-14", Sessions: 2, Score: 180, MaxScore: 200, Accuracy: 90},
		{Date: "2026-10-16", Sessions: 1, Score: 90, MaxScore: 100, Accuracy: 90},
	}, r.DailyActivity)
}

func TestLocalReport_SubjectStatsAreRangeScoped(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seed(t,
		record("old", "2026-09-01", 10, 10, 60, true),
		record("new", "2026-10-16", 10, 10, 60, true),
	)
	f.answer(t, "old", curriculum.SubjectMath, 4, 0)
	f.answer(t, "new", curriculum.SubjectMath, 2, 2)

	r, err := f.builder.LocalReport(ctx, "stu-1", "2026-10-01", "")
	require.NoError(t, err)
	assert.Equal(t, progress.SubjectStat{Correct: 2, Total: 2, Accuracy: 100, AvgTime: 20}, r.SubjectStats[curriculum.SubjectMath])
	assert.Empty(t, r.WeakSubjects, "two attempts are not enough to flag a subject")
}

func TestLocalReport_WeakSubjects(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seed(t, record("r1", "2026-10-16", 10, 10, 60, true))
	f.answer(t, "r1", curriculum.SubjectMath, 4, 1)       // 25
	f.answer(t, "r1", curriculum.SubjectSpelling, 3, 2)   // 67
	f.answer(t, "r1", curriculum.SubjectVocabulary, 3, 2) // 67
	f.answer(t, "r1", curriculum.SubjectSafety, 5, 5)     // 100
	f.answer(t, "r1", curriculum.SubjectWriting, 2, 0)    // too few
	f.answer(t, "r1", curriculum.SubjectEmotionCheck, 5, 0)

	r, err := f.builder.LocalReport(ctx, "stu-1", "", "")
	require.NoError(t, err)

	var got []curriculum.Subject
	for _, w := range r.WeakSubjects {
		got = append(got, w.Subject)
	}
	assert.Equal(t, []curriculum.Subject{
		curriculum.SubjectMath,
		curriculum.SubjectSpelling,
		curriculum.SubjectVocabulary,
	}, got)
	_, hasEmotion := r.SubjectStats[curriculum.SubjectEmotionCheck]
	assert.False(t, hasEmotion)
}

func TestLocalReport_IncludesEarnedBadges(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seed(t, record("r1", "2026-10-16", 100, 100, 60, true))
	_, err := f.badges.CheckAndAward(ctx, "stu-1", nil)
	require.NoError(t, err)

	r, err := f.builder.LocalReport(ctx, "stu-1", "", "")
	require.NoError(t, err)
	require.Len(t, r.Badges, 2)
	assert.Equal(t, "first_complete", r.Badges[0].ID)
}

func TestLocalReport_EmptyHistory(t *testing.T) {
	r, err := newFixture().builder.LocalReport(context.Background(), "nobody", "", "")
	require.NoError(t, err)
	assert.Equal(t, 0, r.Overview.TotalSessions)
	assert.NotNil(t, r.DailyActivity)
	assert.NotNil(t, r.Badges)
	assert.NotNil(t, r.WeakSubjects)
	assert.Empty(t, r.SubjectStats)
}

func TestLocalReport_InvalidRange(t *testing.T) {
	f := newFixture()
	tests := []struct{ from, to string }{
		{"2026-10-16", "2026-10-01"},
		{"16/10/2026", ""},
		{"", "2026-13-01"},
	}
	for _, tt := range tests {
		_, err := f.builder.LocalReport(context.Background(), "stu-1", tt.from, tt.to)
		assert.ErrorIs(t, err, ErrInvalidRange, "from=%q to=%q", tt.from, tt.to)
	}
}

func TestPeriodBounds(t *testing.T) {
	tests := []struct {
		period   Period
		from, to string
		wantErr  bool
	}{
		{PeriodWeek, "2026-10-10", "2026-10-16", false},
		{PeriodMonth, "2026-09-17", "2026-10-16", false},
		{PeriodAll, "", "", false},
		{"decade", "", "", true},
	}
	for _, tt := range tests {
		from, to, err := tt.period.Bounds(now)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.from, from, "period %s", tt.period)
		assert.Equal(t, tt.to, to, "period %s", tt.period)
	}
}

func TestExportXLSX(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seed(t, record("r1", "2026-10-16", 100, 100, 60, true))
	f.answer(t, "r1", curriculum.SubjectMath, 3, 3)
	_, err := f.badges.CheckAndAward(ctx, "stu-1", nil)
	require.NoError(t, err)

	r, err := f.builder.LocalReport(ctx, "stu-1", "", "")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ExportXLSX(r, &buf))

	wb, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{sheetOverview, sheetDaily, sheetSubjects, sheetBadges}, wb.GetSheetList())

	v, err := wb.GetCellValue(sheetOverview, "B1")
	require.NoError(t, err)
	assert.Equal(t, "stu-1", v)

	v, err = wb.GetCellValue(sheetDaily, "A2")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-16", v)

	v, err = wb.GetCellValue(sheetSubjects, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Math", v)

	rows, err := wb.GetRows(sheetBadges)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
