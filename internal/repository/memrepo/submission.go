package memrepo

import (
	"context"
	"sort"

	"github.com/lshigami/examdesk/internal/model"
	"github.com/lshigami/examdesk/internal/repository"
)

type submissionRepository struct {
	db *DB
}

func NewSubmissionRepository(db *DB) repository.SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(_ context.Context, submission *model.Submission) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	for _, s := range r.db.submissions {
		if s.TestID == submission.TestID && s.StudentID == submission.StudentID {
			return repository.ErrDuplicateSubmission
		}
	}

	r.db.nextSubmissionID++
	submission.ID = r.db.nextSubmissionID
	now := r.db.Clock()
	submission.CreatedAt, submission.UpdatedAt = now, now
	stored := *submission
	stored.Test = model.Test{}
	r.db.submissions[submission.ID] = &stored
	return nil
}

func (r *submissionRepository) FindByTestAndStudent(_ context.Context, testID, studentID uint) (*model.Submission, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	for _, s := range r.db.submissions {
		if s.TestID == testID && s.StudentID == studentID {
			c := *s
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *submissionRepository) CountByTest(_ context.Context, testID uint) (int64, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	var n int64
	for _, s := range r.db.submissions {
		if s.TestID == testID {
			n++
		}
	}
	return n, nil
}

// caller must hold the read lock
func (r *submissionRepository) withTest(s *model.Submission) model.Submission {
	c := *s
	if t, ok := r.db.tests[s.TestID]; ok {
		c.Test = cloneTest(t)
	}
	return c
}

func (r *submissionRepository) FindAllByStudent(_ context.Context, studentID uint) ([]model.Submission, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	var submissions []model.Submission
	for _, s := range r.db.submissions {
		if s.StudentID == studentID {
			submissions = append(submissions, r.withTest(s))
		}
	}
	sort.Slice(submissions, func(i, j int) bool {
		if submissions[i].SubmittedAt.Equal(submissions[j].SubmittedAt) {
			return submissions[i].ID > submissions[j].ID
		}
		return submissions[i].SubmittedAt.After(submissions[j].SubmittedAt)
	})
	return submissions, nil
}

func (r *submissionRepository) FindByIDAndStudent(_ context.Context, submissionID, studentID uint) (*model.Submission, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	s, ok := r.db.submissions[submissionID]
	if !ok || s.StudentID != studentID {
		return nil, repository.ErrNotFound
	}
	c := r.withTest(s)
	return &c, nil
}
