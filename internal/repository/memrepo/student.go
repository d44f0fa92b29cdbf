package memrepo

import (
	"context"

	"github.com/lshigami/examdesk/internal/model"
	"github.com/lshigami/examdesk/internal/repository"
)

type studentRepository struct {
	db *DB
}

func NewStudentRepository(db *DB) repository.StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(_ context.Context, student *model.Student) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	for _, s := range r.db.students {
		if s.Email == student.Email {
			return repository.ErrDuplicateStudent
		}
		if s.RegistrationNumber != nil && student.RegistrationNumber != nil &&
			*s.RegistrationNumber == *student.RegistrationNumber {
			return repository.ErrDuplicateStudent
		}
	}

	r.db.nextStudentID++
	student.ID = r.db.nextStudentID
	now := r.db.Clock()
	student.CreatedAt, student.UpdatedAt = now, now
	if student.Status == "" {
		student.Status = model.StudentStatusActive
	}
	stored := *student
	r.db.students[student.ID] = &stored
	return nil
}

func (r *studentRepository) FindByID(_ context.Context, id uint) (*model.Student, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	if s, ok := r.db.students[id]; ok {
		c := *s
		return &c, nil
	}
	return nil, repository.ErrNotFound
}
