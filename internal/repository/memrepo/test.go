package memrepo

import (
	"context"
	"sort"

	"github.com/lshigami/examdesk/internal/model"
	"github.com/lshigami/examdesk/internal/repository"
)

type testRepository struct {
	db *DB
}

func NewTestRepository(db *DB) repository.TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(_ context.Context, test *model.Test) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	r.db.nextTestID++
	test.ID = r.db.nextTestID
	now := r.db.Clock()
	test.CreatedAt, test.UpdatedAt = now, now
	test.Questions = r.db.assignQuestions(test.ID, test.Questions)
	stored := cloneTest(test)
	r.db.tests[test.ID] = &stored
	return nil
}

func (r *testRepository) find(testID, studentID uint, activeOnly bool) (*model.Test, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	t, ok := r.db.tests[testID]
	if !ok || t.StudentID != studentID || (activeOnly && !t.IsActive) {
		return nil, repository.ErrNotFound
	}
	c := cloneTest(t)
	return &c, nil
}

func (r *testRepository) FindActiveByIDAndStudent(_ context.Context, testID, studentID uint) (*model.Test, error) {
	return r.find(testID, studentID, true)
}

func (r *testRepository) FindByIDAndStudent(_ context.Context, testID, studentID uint) (*model.Test, error) {
	return r.find(testID, studentID, false)
}

func (r *testRepository) FindActiveByStudent(_ context.Context, studentID uint) ([]model.Test, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	var tests []model.Test
	for _, t := range r.db.tests {
		if t.StudentID == studentID && t.IsActive {
			tests = append(tests, cloneTest(t))
		}
	}
	sort.Slice(tests, func(i, j int) bool {
		if tests[i].CreatedAt.Equal(tests[j].CreatedAt) {
			return tests[i].ID > tests[j].ID
		}
		return tests[i].CreatedAt.After(tests[j].CreatedAt)
	})
	return tests, nil
}

func (r *testRepository) Update(_ context.Context, test *model.Test) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	existing, ok := r.db.tests[test.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored := *test
	stored.Questions = existing.Questions
	stored.UpdatedAt = r.db.Clock()
	test.UpdatedAt = stored.UpdatedAt
	r.db.tests[test.ID] = &stored
	return nil
}

func (r *testRepository) ReplaceQuestions(_ context.Context, test *model.Test, questions []model.Question) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	if _, ok := r.db.tests[test.ID]; !ok {
		return repository.ErrNotFound
	}
	test.Questions = r.db.assignQuestions(test.ID, questions)
	test.QuestionsCount = len(test.Questions)
	test.UpdatedAt = r.db.Clock()
	stored := cloneTest(test)
	r.db.tests[test.ID] = &stored
	return nil
}

func (r *testRepository) StatsByStudent(_ context.Context, studentID uint) (*repository.TestStats, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	stats := &repository.TestStats{}
	bySubject := make(map[string]int)
	for _, t := range r.db.tests {
		if t.StudentID != studentID || !t.IsActive {
			continue
		}
		stats.Total++
		if t.IsPublished {
			stats.Published++
		}
		stats.TotalQuestions += t.QuestionsCount
		bySubject[t.Subject]++
	}
	for subject, n := range bySubject {
		stats.Subjects = append(stats.Subjects, repository.SubjectCount{Subject: subject, Count: n})
	}
	sort.Slice(stats.Subjects, func(i, j int) bool { return stats.Subjects[i].Subject < stats.Subjects[j].Subject })
	return stats, nil
}
