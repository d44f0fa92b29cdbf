package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/examdesk/internal/cache"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/model"
	"github.com/lshigami/examdesk/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// SubmissionService grades and records test submissions, and serves them back.
type SubmissionService interface {
	Submit(ctx context.Context, testID, studentID uint, req dto.SubmitTestDTO) (*dto.SubmitResultDTO, error)
	ListStudentSubmissions(ctx context.Context, studentID uint) ([]dto.SubmissionSummaryDTO, error)
	GetSubmissionDetails(ctx context.Context, studentID, submissionID uint) (*dto.SubmissionDetailDTO, error)
}

type submissionService struct {
	studentRepo    repository.StudentRepository
	testRepo       repository.TestRepository
	submissionRepo repository.SubmissionRepository
	engine         GradingEngine
	cache          cache.Store
	cacheTTL       time.Duration
	now            func() time.Time
	summarize      func(*model.Submission) (dto.SubmissionSummaryDTO, error)
}

// NewSubmissionService creates a new instance of SubmissionService.
func NewSubmissionService(
	studentRepo repository.StudentRepository,
	testRepo repository.TestRepository,
	submissionRepo repository.SubmissionRepository,
	engine GradingEngine,
	store cache.Store,
	cacheTTL time.Duration,
) SubmissionService {
	return &submissionService{
		studentRepo:    studentRepo,
		testRepo:       testRepo,
		submissionRepo: submissionRepo,
		engine:         engine,
		cache:          store,
		cacheTTL:       cacheTTL,
		now:            time.Now,
		summarize:      toSubmissionSummaryDTO,
	}
}

func (s *submissionService) requireStudent(ctx context.Context, studentID uint) error {
	if _, err := s.studentRepo.FindByID(ctx, studentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("student")
		}
		return fmt.Errorf("error fetching student %d: %w", studentID, err)
	}
	return nil
}

// Submit grades the answers and writes the one and only ledger record for (testID, studentID).
func (s *submissionService) Submit(ctx context.Context, testID, studentID uint, req dto.SubmitTestDTO) (*dto.SubmitResultDTO, error) {
	// 1. Student
	if err := s.requireStudent(ctx, studentID); err != nil {
		log.Warn().Err(err).Uint("studentID", studentID).Msg("Submit: Student lookup failed")
		return nil, err
	}

	// 2. Active test owned by the student
	test, err := s.testRepo.FindActiveByIDAndStudent(ctx, testID, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn().Uint("testID", testID).Uint("studentID", studentID).Msg("Submit: Test not found or inactive")
			return nil, notFound("test")
		}
		log.Error().Err(err).Uint("testID", testID).Msg("Submit: Failed to load test")
		return nil, fmt.Errorf("error fetching test %d: %w", testID, err)
	}

	// 3. Friendly duplicate check; the unique index in Create is what actually guards the pair.
	if existing, err := s.submissionRepo.FindByTestAndStudent(ctx, testID, studentID); err == nil {
		return nil, &DuplicateSubmissionError{SubmissionID: existing.ID}
	} else if !errors.Is(err, repository.ErrNotFound) {
		log.Error().Err(err).Uint("testID", testID).Uint("studentID", studentID).Msg("Submit: Duplicate check failed")
		return nil, fmt.Errorf("error checking existing submission: %w", err)
	}

	// 4. Grade
	answers := NormalizeAnswers(test.Questions, DecodeAnswers(req.Answers))
	result, err := s.engine.Grade(test.Questions, answers, test.TotalMarks)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Int("totalMarks", test.TotalMarks).Msg("Submit: Grading failed")
		return nil, err
	}

	// 5. Persist
	submission := model.Submission{
		TestID:         test.ID,
		StudentID:      studentID,
		Answers:        datatypes.NewJSONType(AnswerTexts(answers)),
		ObtainedMarks:  result.ObtainedMarks,
		TotalMarks:     test.TotalMarks,
		Percentage:     result.Percentage,
		CorrectAnswers: result.CorrectAnswers,
		WrongAnswers:   result.WrongAnswers,
		Unanswered:     result.Unanswered,
		PendingReview:  result.PendingReview,
		TimeTaken:      req.TimeTaken,
		SubmittedAt:    s.now(),
		IsEvaluated:    result.IsEvaluated,
	}
	if err := s.submissionRepo.Create(ctx, &submission); err != nil {
		if errors.Is(err, repository.ErrDuplicateSubmission) {
			return nil, s.duplicateOf(ctx, testID, studentID)
		}
		log.Error().Err(err).Uint("testID", testID).Uint("studentID", studentID).Msg("Submit: Failed to save submission")
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}

	log.Info().Uint("submissionID", submission.ID).Uint("testID", testID).Uint("studentID", studentID).
		Int("obtainedMarks", result.ObtainedMarks).Float64("percentage", result.Percentage).
		Msg("Submit: Submission saved")

	// 6. Summary
	return &dto.SubmitResultDTO{
		SubmissionID: submission.ID,
		Result: dto.ResultSummary{
			TestTitle:      test.Title,
			ObtainedMarks:  result.ObtainedMarks,
			TotalMarks:     test.TotalMarks,
			Percentage:     result.Percentage,
			CorrectAnswers: result.CorrectAnswers,
			WrongAnswers:   result.WrongAnswers,
			Unanswered:     result.Unanswered,
			PendingReview:  result.PendingReview,
			TimeTaken:      formatDuration(req.TimeTaken),
		},
	}, nil
}

// duplicateOf resolves the submission that won a concurrent insert race. The lookup
// is tried twice; if the winner still cannot be read the error carries no id.
func (s *submissionService) duplicateOf(ctx context.Context, testID, studentID uint) error {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		existing, err := s.submissionRepo.FindByTestAndStudent(ctx, testID, studentID)
		if err == nil {
			log.Warn().Uint("submissionID", existing.ID).Msg("Submit: Concurrent submission rejected by unique index")
			return &DuplicateSubmissionError{SubmissionID: existing.ID}
		}
		lastErr = err
	}
	log.Error().Err(lastErr).Uint("testID", testID).Uint("studentID", studentID).Msg("Submit: Unique violation but existing submission could not be loaded")
	return &DuplicateSubmissionError{}
}

// ListStudentSubmissions returns the student's submissions, newest first.
func (s *submissionService) ListStudentSubmissions(ctx context.Context, studentID uint) ([]dto.SubmissionSummaryDTO, error) {
	if err := s.requireStudent(ctx, studentID); err != nil {
		return nil, err
	}

	submissions, err := s.submissionRepo.FindAllByStudent(ctx, studentID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("ListStudentSubmissions: Failed to fetch submissions")
		return nil, fmt.Errorf("error fetching submissions for student %d: %w", studentID, err)
	}

	dtos := make([]dto.SubmissionSummaryDTO, 0, len(submissions))
	for i := range submissions {
		summary, err := s.summarize(&submissions[i])
		if err != nil {
			log.Error().Err(err).Uint("submissionID", submissions[i].ID).Msg("ListStudentSubmissions: Error copying submission to summary DTO")
			return nil, fmt.Errorf("error preparing submission %d: %w", submissions[i].ID, err)
		}
		dtos = append(dtos, summary)
	}
	return dtos, nil
}

func submissionCacheKey(studentID, submissionID uint) string {
	return fmt.Sprintf("submission:%d:%d", studentID, submissionID)
}

// GetSubmissionDetails returns one submission with the full test it was graded against.
// Submissions never change, so the rendered detail is cached.
func (s *submissionService) GetSubmissionDetails(ctx context.Context, studentID, submissionID uint) (*dto.SubmissionDetailDTO, error) {
	key := submissionCacheKey(studentID, submissionID)
	var cached dto.SubmissionDetailDTO
	if err := cache.GetJSON(ctx, s.cache, key, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Warn().Err(err).Str("key", key).Msg("GetSubmissionDetails: Cache read failed, falling back to database")
	}

	submission, err := s.submissionRepo.FindByIDAndStudent(ctx, submissionID, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("submission")
		}
		log.Error().Err(err).Uint("submissionID", submissionID).Msg("GetSubmissionDetails: Failed to fetch submission")
		return nil, fmt.Errorf("error fetching submission %d: %w", submissionID, err)
	}

	detail, err := toSubmissionDetailDTO(submission)
	if err != nil {
		log.Error().Err(err).Uint("submissionID", submissionID).Msg("GetSubmissionDetails: Failed to copy submission to DTO")
		return nil, err
	}

	if err := cache.SetJSON(ctx, s.cache, key, detail, s.cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("GetSubmissionDetails: Cache write failed")
	}
	return detail, nil
}
