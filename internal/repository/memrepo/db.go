// Package memrepo holds mutex-guarded in-memory implementations of the
// repository interfaces. They enforce the same uniqueness rules as the
// postgres schema and are used to exercise services without a database.
package memrepo

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/examdesk/internal/model"
)

// DB is the shared backing store for every in-memory repository.
type DB struct {
	mutex sync.RWMutex

	students    map[uint]*model.Student
	tests       map[uint]*model.Test
	submissions map[uint]*model.Submission

	nextStudentID    uint
	nextTestID       uint
	nextQuestionID   uint
	nextSubmissionID uint

	// Clock stamps created rows; tests may override it.
	Clock func() time.Time
}

func NewDB() *DB {
	return &DB{
		students:    make(map[uint]*model.Student),
		tests:       make(map[uint]*model.Test),
		submissions: make(map[uint]*model.Submission),
		Clock:       time.Now,
	}
}

// SubmissionCount returns how many ledger rows exist for the pair.
func (db *DB) SubmissionCount(testID, studentID uint) int {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	n := 0
	for _, s := range db.submissions {
		if s.TestID == testID && s.StudentID == studentID {
			n++
		}
	}
	return n
}

// caller must hold the write lock
func (db *DB) assignQuestions(testID uint, questions []model.Question) []model.Question {
	out := make([]model.Question, len(questions))
	for i, q := range questions {
		db.nextQuestionID++
		q.ID = db.nextQuestionID
		q.TestID = testID
		if q.Key == uuid.Nil {
			q.Key = uuid.New()
		}
		out[i] = q
	}
	return out
}

func cloneTest(t *model.Test) model.Test {
	c := *t
	c.Questions = append([]model.Question(nil), t.Questions...)
	return c
}
