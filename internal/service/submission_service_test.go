package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lshigami/examdesk/internal/cache"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/model"
	"github.com/lshigami/examdesk/internal/repository"
	"github.com/lshigami/examdesk/internal/repository/memrepo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type submissionFixture struct {
	db          *memrepo.DB
	students    repository.StudentRepository
	tests       repository.TestRepository
	submissions repository.SubmissionRepository
	store       *cache.MemoryStore
	svc         SubmissionService
}

func newSubmissionFixture(t *testing.T) *submissionFixture {
	t.Helper()
	db := memrepo.NewDB()
	f := &submissionFixture{
		db:          db,
		students:    memrepo.NewStudentRepository(db),
		tests:       memrepo.NewTestRepository(db),
		submissions: memrepo.NewSubmissionRepository(db),
		store:       cache.NewMemoryStore(),
	}
	f.svc = NewSubmissionService(f.students, f.tests, f.submissions, NewGradingEngine(), f.store, time.Minute)
	return f
}

func (f *submissionFixture) student(t *testing.T, email string) uint {
	t.Helper()
	s := model.Student{Name: "Asha", Email: email}
	require.NoError(t, f.students.Create(context.Background(), &s))
	return s.ID
}

func (f *submissionFixture) test(t *testing.T, studentID uint, totalMarks int) uint {
	t.Helper()
	test := model.Test{
		StudentID:      studentID,
		Title:          "Algebra quiz",
		Subject:        "Math",
		TotalMarks:     totalMarks,
		TimeLimit:      30,
		IsActive:       true,
		Questions:      scenarioQuestions(),
		QuestionsCount: 2,
	}
	require.NoError(t, f.tests.Create(context.Background(), &test))
	return test.ID
}

func scenarioASubmission() dto.SubmitTestDTO {
	return dto.SubmitTestDTO{Answers: sheet(map[string]string{"0": "B", "1": "false"}), TimeTaken: 125}
}

func TestSubmitGradesAndRecords(t *testing.T) {
	f := newSubmissionFixture(t)
	ctx := context.Background()
	studentID := f.student(t, "asha@example.com")
	testID := f.test(t, studentID, 3)

	res, err := f.svc.Submit(ctx, testID, studentID, scenarioASubmission())
	require.NoError(t, err)

	assert.NotZero(t, res.SubmissionID)
	assert.Equal(t, dto.ResultSummary{
		TestTitle:      "Algebra quiz",
		ObtainedMarks:  2,
		TotalMarks:     3,
		Percentage:     66.67,
		CorrectAnswers: 1,
		WrongAnswers:   1,
		Unanswered:     0,
		TimeTaken:      "2 minutes 5 seconds",
	}, res.Result)

	stored, err := f.submissions.FindByTestAndStudent(ctx, testID, studentID)
	require.NoError(t, err)
	assert.Equal(t, res.SubmissionID, stored.ID)
	assert.Equal(t, 3, stored.TotalMarks)
	assert.Equal(t, 125, stored.TimeTaken)
	assert.True(t, stored.IsEvaluated)
	assert.False(t, stored.SubmittedAt.IsZero())
	assert.Len(t, stored.Answers.Data(), 2)
}

func TestSubmitTwiceReturnsOriginalSubmission(t *testing.T) {
	f := newSubmissionFixture(t)
	ctx := context.Background()
	studentID := f.student(t, "asha@example.com")
	testID := f.test(t, studentID, 3)

	first, err := f.svc.Submit(ctx, testID, studentID, scenarioASubmission())
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, testID, studentID, dto.SubmitTestDTO{Answers: sheet(map[string]string{"0": "B", "1": "true"})})

	var dup *DuplicateSubmissionError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, first.SubmissionID, dup.SubmissionID)
	assert.Equal(t, 1, f.db.SubmissionCount(testID, studentID))
}

func TestSubmitZeroTotalMarksWritesNothing(t *testing.T) {
	f := newSubmissionFixture(t)
	studentID := f.student(t, "asha@example.com")
	testID := f.test(t, studentID, 0)

	_, err := f.svc.Submit(context.Background(), testID, studentID, scenarioASubmission())

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, 0, f.db.SubmissionCount(testID, studentID))
}

func TestSubmitNotFound(t *testing.T) {
	f := newSubmissionFixture(t)
	ctx := context.Background()
	studentID := f.student(t, "asha@example.com")
	otherID := f.student(t, "ben@example.com")
	testID := f.test(t, studentID, 3)

	inactive, err := f.tests.FindByIDAndStudent(ctx, f.test(t, studentID, 3), studentID)
	require.NoError(t, err)
	inactive.IsActive = false
	require.NoError(t, f.tests.Update(ctx, inactive))

	cases := []struct {
		name      string
		testID    uint
		studentID uint
		resource  string
	}{
		{"unknown student", testID, 999, "student"},
		{"unknown test", 999, studentID, "test"},
		{"test owned by someone else", testID, otherID, "test"},
		{"inactive test", inactive.ID, studentID, "test"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.Submit(ctx, tc.testID, tc.studentID, scenarioASubmission())

			var nf *NotFoundError
			require.ErrorAs(t, err, &nf)
			assert.Equal(t, tc.resource, nf.Resource)
			assert.Equal(t, 0, f.db.SubmissionCount(tc.testID, tc.studentID))
		})
	}
}

func TestSubmitConcurrentOnlyOneWins(t *testing.T) {
	f := newSubmissionFixture(t)
	studentID := f.student(t, "asha@example.com")
	testID := f.test(t, studentID, 3)

	const workers = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes []uint
		dupIDs    []uint
		others    []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := f.svc.Submit(context.Background(), testID, studentID, scenarioASubmission())
			mu.Lock()
			defer mu.Unlock()
			var dup *DuplicateSubmissionError
			switch {
			case err == nil:
				successes = append(successes, res.SubmissionID)
			case errors.As(err, &dup):
				dupIDs = append(dupIDs, dup.SubmissionID)
			default:
				others = append(others, err)
			}
		}()
	}
	wg.Wait()

	require.Empty(t, others)
	require.Len(t, successes, 1)
	assert.Len(t, dupIDs, workers-1)
	for _, id := range dupIDs {
		assert.Equal(t, successes[0], id)
	}
	assert.Equal(t, 1, f.db.SubmissionCount(testID, studentID))
}

func TestListStudentSubmissionsNewestFirst(t *testing.T) {
	f := newSubmissionFixture(t)
	ctx := context.Background()
	studentID := f.student(t, "asha@example.com")
	firstTest := f.test(t, studentID, 3)
	secondTest := f.test(t, studentID, 3)

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := f.svc.(*submissionService)
	svc.now = func() time.Time { return base }
	_, err := f.svc.Submit(ctx, firstTest, studentID, scenarioASubmission())
	require.NoError(t, err)
	svc.now = func() time.Time { return base.Add(time.Hour) }
	_, err = f.svc.Submit(ctx, secondTest, studentID, dto.SubmitTestDTO{Answers: sheet(map[string]string{})})
	require.NoError(t, err)

	list, err := f.svc.ListStudentSubmissions(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, secondTest, list[0].TestID)
	assert.Equal(t, firstTest, list[1].TestID)
	assert.Equal(t, "Algebra quiz", list[0].Test.Title)
	assert.Equal(t, "Math", list[0].Test.Subject)
	assert.Equal(t, 3, list[0].Test.TotalMarks)
	assert.False(t, list[0].IsEvaluated)
	assert.Equal(t, 2, list[0].Unanswered)

	_, err = f.svc.ListStudentSubmissions(ctx, 999)
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestGetSubmissionDetails(t *testing.T) {
	f := newSubmissionFixture(t)
	ctx := context.Background()
	studentID := f.student(t, "asha@example.com")
	otherID := f.student(t, "ben@example.com")
	testID := f.test(t, studentID, 3)

	res, err := f.svc.Submit(ctx, testID, studentID, scenarioASubmission())
	require.NoError(t, err)

	detail, err := f.svc.GetSubmissionDetails(ctx, studentID, res.SubmissionID)
	require.NoError(t, err)
	assert.Equal(t, testID, detail.Test.ID)
	assert.Len(t, detail.Test.Questions, 2)
	assert.Equal(t, "B", detail.Answers[detail.Test.Questions[0].Key])
	assert.Equal(t, 2, detail.ObtainedMarks)

	_, err = f.store.Get(ctx, submissionCacheKey(studentID, res.SubmissionID))
	assert.NoError(t, err, "detail should be cached after the first read")

	cached, err := f.svc.GetSubmissionDetails(ctx, studentID, res.SubmissionID)
	require.NoError(t, err)
	assert.Equal(t, detail.ID, cached.ID)
	assert.Equal(t, detail.Answers, cached.Answers)

	_, err = f.svc.GetSubmissionDetails(ctx, otherID, res.SubmissionID)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "submission", nf.Resource)
}

// staleLedger hides the stored row from the first lookups, the way a competing
// insert that has not yet been seen slips past the duplicate pre-check.
type staleLedger struct {
	repository.SubmissionRepository
	hidden int32
}

func (l *staleLedger) FindByTestAndStudent(ctx context.Context, testID, studentID uint) (*model.Submission, error) {
	if atomic.AddInt32(&l.hidden, -1) >= 0 {
		return nil, repository.ErrNotFound
	}
	return l.SubmissionRepository.FindByTestAndStudent(ctx, testID, studentID)
}

func TestSubmitUniqueViolationReportsWinner(t *testing.T) {
	cases := []struct {
		name   string
		hidden int32
		wantID bool
	}{
		{"winner found after violation", 1, true},
		{"winner found on retry", 2, true},
		{"winner never readable", 3, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newSubmissionFixture(t)
			ctx := context.Background()
			studentID := f.student(t, "asha@example.com")
			testID := f.test(t, studentID, 3)

			first, err := f.svc.Submit(ctx, testID, studentID, scenarioASubmission())
			require.NoError(t, err)

			ledger := &staleLedger{SubmissionRepository: f.submissions, hidden: tc.hidden}
			svc := NewSubmissionService(f.students, f.tests, ledger, NewGradingEngine(), f.store, time.Minute)

			_, err = svc.Submit(ctx, testID, studentID, scenarioASubmission())

			var dup *DuplicateSubmissionError
			require.ErrorAs(t, err, &dup)
			if tc.wantID {
				assert.Equal(t, first.SubmissionID, dup.SubmissionID)
			} else {
				assert.Zero(t, dup.SubmissionID)
			}
			assert.Equal(t, 1, f.db.SubmissionCount(testID, studentID))
		})
	}
}

func TestSubmitRecordsNonStringAnswersAsWrong(t *testing.T) {
	f := newSubmissionFixture(t)
	ctx := context.Background()
	studentID := f.student(t, "asha@example.com")
	testID := f.test(t, studentID, 3)

	res, err := f.svc.Submit(ctx, testID, studentID, dto.SubmitTestDTO{
		Answers: map[string]json.RawMessage{"0": json.RawMessage(`1`), "1": json.RawMessage(`"false"`)},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Result.WrongAnswers)
	assert.Equal(t, 0, res.Result.ObtainedMarks)

	stored, err := f.submissions.FindByTestAndStudent(ctx, testID, studentID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "false"}, valuesOf(stored.Answers.Data()))
}

func valuesOf(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

func TestListStudentSubmissionsFailsOnBadRow(t *testing.T) {
	f := newSubmissionFixture(t)
	ctx := context.Background()
	studentID := f.student(t, "asha@example.com")
	_, err := f.svc.Submit(ctx, f.test(t, studentID, 3), studentID, scenarioASubmission())
	require.NoError(t, err)
	_, err = f.svc.Submit(ctx, f.test(t, studentID, 3), studentID, scenarioASubmission())
	require.NoError(t, err)

	svc := f.svc.(*submissionService)
	svc.summarize = func(s *model.Submission) (dto.SubmissionSummaryDTO, error) {
		if s.ID == 2 {
			return dto.SubmissionSummaryDTO{}, errors.New("copy failed")
		}
		return toSubmissionSummaryDTO(s)
	}

	list, err := f.svc.ListStudentSubmissions(ctx, studentID)
	require.Error(t, err)
	assert.Nil(t, list)
}
