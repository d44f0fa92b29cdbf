package repository

import (
	"context"

	"github.com/lshigami/examdesk/internal/model"
	"gorm.io/gorm"
)

// SubjectCount is one row of the per-subject breakdown of a student's active tests.
type SubjectCount struct {
	Subject string
	Count   int
}

// TestStats aggregates a student's active tests.
type TestStats struct {
	Total          int
	Published      int
	TotalQuestions int
	Subjects       []SubjectCount
}

type TestRepository interface {
	Create(ctx context.Context, test *model.Test) error
	// FindActiveByIDAndStudent loads an active test owned by the student, questions ordered by position.
	FindActiveByIDAndStudent(ctx context.Context, testID, studentID uint) (*model.Test, error)
	// FindByIDAndStudent ignores the active flag.
	FindByIDAndStudent(ctx context.Context, testID, studentID uint) (*model.Test, error)
	FindActiveByStudent(ctx context.Context, studentID uint) ([]model.Test, error)
	Update(ctx context.Context, test *model.Test) error
	// ReplaceQuestions swaps the question list and updates the test row in one transaction.
	ReplaceQuestions(ctx context.Context, test *model.Test, questions []model.Question) error
	StatsByStudent(ctx context.Context, studentID uint) (*TestStats, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func orderedQuestions(db *gorm.DB) *gorm.DB {
	return db.Order("questions.position ASC")
}

func (r *testRepository) Create(ctx context.Context, test *model.Test) error {
	// Questions are created through the has-many association.
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *testRepository) FindActiveByIDAndStudent(ctx context.Context, testID, studentID uint) (*model.Test, error) {
	var test model.Test
	err := r.db.WithContext(ctx).
		Preload("Questions", orderedQuestions).
		Where("id = ? AND student_id = ? AND is_active = ?", testID, studentID, true).
		First(&test).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &test, nil
}

func (r *testRepository) FindByIDAndStudent(ctx context.Context, testID, studentID uint) (*model.Test, error) {
	var test model.Test
	err := r.db.WithContext(ctx).
		Preload("Questions", orderedQuestions).
		Where("id = ? AND student_id = ?", testID, studentID).
		First(&test).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &test, nil
}

func (r *testRepository) FindActiveByStudent(ctx context.Context, studentID uint) ([]model.Test, error) {
	var tests []model.Test
	err := r.db.WithContext(ctx).
		Preload("Questions", orderedQuestions).
		Where("student_id = ? AND is_active = ?", studentID, true).
		Order("created_at DESC").
		Find(&tests).Error
	return tests, err
}

func (r *testRepository) Update(ctx context.Context, test *model.Test) error {
	// Omit associations so questions are only ever rewritten through ReplaceQuestions.
	return r.db.WithContext(ctx).Omit("Questions", "Student").Save(test).Error
}

func (r *testRepository) ReplaceQuestions(ctx context.Context, test *model.Test, questions []model.Question) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("test_id = ?", test.ID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].ID = 0
			questions[i].TestID = test.ID
		}
		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				return err
			}
		}
		test.QuestionsCount = len(questions)
		if err := tx.Omit("Questions", "Student").Save(test).Error; err != nil {
			return err
		}
		test.Questions = questions
		return nil
	})
}

func (r *testRepository) StatsByStudent(ctx context.Context, studentID uint) (*TestStats, error) {
	db := r.db.WithContext(ctx)
	active := db.Model(&model.Test{}).Where("student_id = ? AND is_active = ?", studentID, true)

	var row struct {
		Total          int
		Published      int
		TotalQuestions int
	}
	err := active.Session(&gorm.Session{}).
		Select("COUNT(*) AS total, " +
			"COALESCE(SUM(CASE WHEN is_published THEN 1 ELSE 0 END), 0) AS published, " +
			"COALESCE(SUM(questions_count), 0) AS total_questions").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	var subjects []SubjectCount
	err = active.Session(&gorm.Session{}).
		Select("subject, COUNT(*) AS count").
		Group("subject").
		Order("subject ASC").
		Scan(&subjects).Error
	if err != nil {
		return nil, err
	}

	return &TestStats{
		Total:          row.Total,
		Published:      row.Published,
		TotalQuestions: row.TotalQuestions,
		Subjects:       subjects,
	}, nil
}
