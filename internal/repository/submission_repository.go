package repository

import (
	"context"

	"github.com/lshigami/examdesk/internal/model"
	"gorm.io/gorm"
)

// SubmissionRepository is the insert-only submission ledger.
type SubmissionRepository interface {
	// Create returns ErrDuplicateSubmission when the (test, student) pair already has a record.
	Create(ctx context.Context, submission *model.Submission) error
	FindByTestAndStudent(ctx context.Context, testID, studentID uint) (*model.Submission, error)
	CountByTest(ctx context.Context, testID uint) (int64, error)
	// FindAllByStudent preloads test metadata, newest first.
	FindAllByStudent(ctx context.Context, studentID uint) ([]model.Submission, error)
	// FindByIDAndStudent preloads the full test with its questions.
	FindByIDAndStudent(ctx context.Context, submissionID, studentID uint) (*model.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, submission *model.Submission) error {
	// Single-row insert; Test is omitted so the association is never upserted.
	if err := r.db.WithContext(ctx).Omit("Test").Create(submission).Error; err != nil {
		if IsUniqueViolation(err) {
			return ErrDuplicateSubmission
		}
		return err
	}
	return nil
}

func (r *submissionRepository) FindByTestAndStudent(ctx context.Context, testID, studentID uint) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.WithContext(ctx).
		Where("test_id = ? AND student_id = ?", testID, studentID).
		First(&submission).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &submission, nil
}

func (r *submissionRepository) CountByTest(ctx context.Context, testID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Submission{}).Where("test_id = ?", testID).Count(&n).Error
	return n, err
}

func (r *submissionRepository) FindAllByStudent(ctx context.Context, studentID uint) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.WithContext(ctx).
		Preload("Test", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "subject", "total_marks")
		}).
		Where("student_id = ?", studentID).
		Order("submitted_at DESC").
		Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) FindByIDAndStudent(ctx context.Context, submissionID, studentID uint) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.WithContext(ctx).
		Preload("Test").
		Preload("Test.Questions", orderedQuestions).
		Where("id = ? AND student_id = ?", submissionID, studentID).
		First(&submission).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &submission, nil
}
