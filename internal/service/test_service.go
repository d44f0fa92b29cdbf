package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/model"
	"github.com/lshigami/examdesk/internal/repository"
	"github.com/rs/zerolog/log"
)

// TestService manages the tests a student authors for themself.
type TestService interface {
	CreateTest(ctx context.Context, studentID uint, req dto.TestCreateDTO) (*dto.TestResponseDTO, error)
	ListTests(ctx context.Context, studentID uint) ([]dto.TestResponseDTO, error)
	GetTest(ctx context.Context, studentID, testID uint) (*dto.TestResponseDTO, error)
	UpdateTest(ctx context.Context, studentID, testID uint, req dto.TestUpdateDTO) (*dto.TestResponseDTO, error)
	DeleteTest(ctx context.Context, studentID, testID uint) error
	TogglePublish(ctx context.Context, studentID, testID uint) (*dto.TestResponseDTO, error)
	GetStats(ctx context.Context, studentID uint) (*dto.TestStatsDTO, error)
}

type testService struct {
	studentRepo    repository.StudentRepository
	testRepo       repository.TestRepository
	submissionRepo repository.SubmissionRepository
}

func NewTestService(
	studentRepo repository.StudentRepository,
	testRepo repository.TestRepository,
	submissionRepo repository.SubmissionRepository,
) TestService {
	return &testService{studentRepo: studentRepo, testRepo: testRepo, submissionRepo: submissionRepo}
}

func (s *testService) requireStudent(ctx context.Context, studentID uint) error {
	if _, err := s.studentRepo.FindByID(ctx, studentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("student")
		}
		return fmt.Errorf("error fetching student %d: %w", studentID, err)
	}
	return nil
}

// buildQuestions validates question payloads and assigns positions. Marks of 0 default to 1.
func buildQuestions(reqs []dto.QuestionCreateDTO) ([]model.Question, error) {
	if len(reqs) == 0 {
		return nil, invalid("please add at least one question")
	}
	questions := make([]model.Question, 0, len(reqs))
	for i, q := range reqs {
		switch q.Type {
		case model.QuestionTypeMultipleChoice, model.QuestionTypeTrueFalse:
			if q.CorrectAnswer == "" && len(q.CorrectAnswers) == 0 {
				return nil, invalid("question %d of type '%s' requires a correct answer", i, q.Type)
			}
		case model.QuestionTypeShortAnswer, model.QuestionTypeEssay:
		default:
			return nil, invalid("question %d has unsupported type '%s'", i, q.Type)
		}
		if q.Marks < 0 {
			return nil, invalid("question %d has negative marks", i)
		}
		marks := q.Marks
		if marks == 0 {
			marks = 1
		}
		questions = append(questions, model.Question{
			Position:             i,
			Type:                 q.Type,
			Prompt:               q.Prompt,
			Options:              q.Options,
			CorrectAnswer:        q.CorrectAnswer,
			CorrectAnswers:       q.CorrectAnswers,
			AllowMultipleAnswers: q.AllowMultipleAnswers,
			Marks:                marks,
			Explanation:          q.Explanation,
		})
	}
	return questions, nil
}

// checkTotals keeps obtained marks from ever exceeding the declared total.
func checkTotals(totalMarks int, questions []model.Question) error {
	if totalMarks <= 0 {
		return invalid("total marks must be greater than zero")
	}
	sum := 0
	for _, q := range questions {
		sum += q.Marks
	}
	if sum > totalMarks {
		return invalid("total marks %d is less than the sum of question marks %d", totalMarks, sum)
	}
	return nil
}

func (s *testService) CreateTest(ctx context.Context, studentID uint, req dto.TestCreateDTO) (*dto.TestResponseDTO, error) {
	if err := s.requireStudent(ctx, studentID); err != nil {
		return nil, err
	}
	if req.Title == "" || req.Subject == "" || req.TimeLimit <= 0 {
		return nil, invalid("title, subject, total marks, and time limit are required")
	}
	questions, err := buildQuestions(req.Questions)
	if err != nil {
		return nil, err
	}
	if err := checkTotals(req.TotalMarks, questions); err != nil {
		return nil, err
	}

	test := model.Test{
		StudentID:      studentID,
		Title:          req.Title,
		Subject:        req.Subject,
		Instructions:   req.Instructions,
		TotalMarks:     req.TotalMarks,
		TimeLimit:      req.TimeLimit,
		QuestionsCount: len(questions),
		IsActive:       true,
		Questions:      questions,
	}
	if err := s.testRepo.Create(ctx, &test); err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("CreateTest: Failed to create test in database")
		return nil, fmt.Errorf("database error creating test: %w", err)
	}
	log.Info().Uint("testID", test.ID).Uint("studentID", studentID).Int("questions", len(questions)).Msg("CreateTest: Test created")
	return toTestDTO(&test)
}

func (s *testService) ListTests(ctx context.Context, studentID uint) ([]dto.TestResponseDTO, error) {
	if err := s.requireStudent(ctx, studentID); err != nil {
		return nil, err
	}
	tests, err := s.testRepo.FindActiveByStudent(ctx, studentID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("ListTests: Failed to fetch tests")
		return nil, fmt.Errorf("error fetching tests: %w", err)
	}
	dtos := make([]dto.TestResponseDTO, 0, len(tests))
	for i := range tests {
		t, err := toTestDTO(&tests[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *t)
	}
	return dtos, nil
}

func (s *testService) GetTest(ctx context.Context, studentID, testID uint) (*dto.TestResponseDTO, error) {
	if err := s.requireStudent(ctx, studentID); err != nil {
		return nil, err
	}
	test, err := s.testRepo.FindActiveByIDAndStudent(ctx, testID, studentID)
	if err != nil {
		return nil, s.testLookupError(err, testID)
	}
	return toTestDTO(test)
}

func (s *testService) testLookupError(err error, testID uint) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound("test")
	}
	log.Error().Err(err).Uint("testID", testID).Msg("Failed to fetch test")
	return fmt.Errorf("error fetching test %d: %w", testID, err)
}

// loadOwned returns the student's test whether or not it is active.
func (s *testService) loadOwned(ctx context.Context, studentID, testID uint) (*model.Test, error) {
	if err := s.requireStudent(ctx, studentID); err != nil {
		return nil, err
	}
	test, err := s.testRepo.FindByIDAndStudent(ctx, testID, studentID)
	if err != nil {
		return nil, s.testLookupError(err, testID)
	}
	return test, nil
}

func (s *testService) UpdateTest(ctx context.Context, studentID, testID uint, req dto.TestUpdateDTO) (*dto.TestResponseDTO, error) {
	test, err := s.loadOwned(ctx, studentID, testID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != "" {
		test.Title = *req.Title
	}
	if req.Subject != nil && *req.Subject != "" {
		test.Subject = *req.Subject
	}
	if req.Instructions != nil {
		test.Instructions = *req.Instructions
	}
	if req.TotalMarks != nil {
		test.TotalMarks = *req.TotalMarks
	}
	if req.TimeLimit != nil {
		if *req.TimeLimit <= 0 {
			return nil, invalid("time limit must be greater than zero")
		}
		test.TimeLimit = *req.TimeLimit
	}

	questions := test.Questions
	if req.Questions != nil {
		// Stored answers are keyed by question key, so graded tests keep their questions.
		submitted, err := s.submissionRepo.CountByTest(ctx, test.ID)
		if err != nil {
			log.Error().Err(err).Uint("testID", testID).Msg("UpdateTest: Failed to count submissions")
			return nil, fmt.Errorf("error checking submissions for test %d: %w", testID, err)
		}
		if submitted > 0 {
			return nil, invalid("questions cannot be replaced after the test has been submitted")
		}
		if questions, err = buildQuestions(req.Questions); err != nil {
			return nil, err
		}
	}
	if err := checkTotals(test.TotalMarks, questions); err != nil {
		return nil, err
	}

	if req.Questions != nil {
		err = s.testRepo.ReplaceQuestions(ctx, test, questions)
	} else {
		err = s.testRepo.Update(ctx, test)
	}
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("UpdateTest: Failed to save test")
		return nil, fmt.Errorf("database error updating test: %w", err)
	}
	return toTestDTO(test)
}

// DeleteTest is a soft delete: the test stays in place for existing submissions.
func (s *testService) DeleteTest(ctx context.Context, studentID, testID uint) error {
	test, err := s.loadOwned(ctx, studentID, testID)
	if err != nil {
		return err
	}
	test.IsActive = false
	if err := s.testRepo.Update(ctx, test); err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("DeleteTest: Failed to deactivate test")
		return fmt.Errorf("database error deleting test: %w", err)
	}
	return nil
}

func (s *testService) TogglePublish(ctx context.Context, studentID, testID uint) (*dto.TestResponseDTO, error) {
	test, err := s.loadOwned(ctx, studentID, testID)
	if err != nil {
		return nil, err
	}
	test.IsPublished = !test.IsPublished
	if err := s.testRepo.Update(ctx, test); err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("TogglePublish: Failed to update test")
		return nil, fmt.Errorf("database error updating test status: %w", err)
	}
	return toTestDTO(test)
}

func (s *testService) GetStats(ctx context.Context, studentID uint) (*dto.TestStatsDTO, error) {
	if err := s.requireStudent(ctx, studentID); err != nil {
		return nil, err
	}
	stats, err := s.testRepo.StatsByStudent(ctx, studentID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("GetStats: Failed to aggregate tests")
		return nil, fmt.Errorf("error fetching test statistics: %w", err)
	}
	resp := &dto.TestStatsDTO{
		TotalTests:       stats.Total,
		PublishedTests:   stats.Published,
		DraftTests:       stats.Total - stats.Published,
		TotalQuestions:   stats.TotalQuestions,
		SubjectBreakdown: make([]dto.SubjectCountDTO, 0, len(stats.Subjects)),
	}
	for _, sc := range stats.Subjects {
		resp.SubjectBreakdown = append(resp.SubjectBreakdown, dto.SubjectCountDTO{Subject: sc.Subject, Count: sc.Count})
	}
	return resp, nil
}
