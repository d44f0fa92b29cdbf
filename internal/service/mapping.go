package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/model"
)

var copyOpts = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src interface{}) (interface{}, error) {
				id, ok := src.(uuid.UUID)
				if !ok {
					return nil, fmt.Errorf("expected uuid.UUID, got %T", src)
				}
				return id.String(), nil
			},
		},
	},
}

func toQuestionDTOs(questions []model.Question) ([]dto.QuestionResponseDTO, error) {
	out := make([]dto.QuestionResponseDTO, len(questions))
	for i := range questions {
		if err := copier.CopyWithOption(&out[i], &questions[i], copyOpts); err != nil {
			return nil, err
		}
		out[i].Key = questions[i].Key.String()
	}
	return out, nil
}

func toTestDTO(test *model.Test) (*dto.TestResponseDTO, error) {
	var resp dto.TestResponseDTO
	if err := copier.CopyWithOption(&resp, test, copyOpts); err != nil {
		return nil, fmt.Errorf("error preparing test response: %w", err)
	}
	questions, err := toQuestionDTOs(test.Questions)
	if err != nil {
		return nil, fmt.Errorf("error preparing question responses: %w", err)
	}
	resp.Questions = questions
	return &resp, nil
}

func toSubmissionSummaryDTO(s *model.Submission) (dto.SubmissionSummaryDTO, error) {
	var summary dto.SubmissionSummaryDTO
	if err := copier.CopyWithOption(&summary, s, copyOpts); err != nil {
		return summary, err
	}
	summary.Test = dto.SubmissionTestDTO{
		ID:         s.TestID,
		Title:      s.Test.Title,
		Subject:    s.Test.Subject,
		TotalMarks: s.Test.TotalMarks,
	}
	return summary, nil
}

func toSubmissionDetailDTO(s *model.Submission) (*dto.SubmissionDetailDTO, error) {
	var detail dto.SubmissionDetailDTO
	if err := copier.CopyWithOption(&detail, s, copyOpts); err != nil {
		return nil, fmt.Errorf("error preparing submission response: %w", err)
	}
	test, err := toTestDTO(&s.Test)
	if err != nil {
		return nil, err
	}
	detail.Test = *test
	detail.Answers = s.Answers.Data()
	if detail.Answers == nil {
		detail.Answers = map[string]string{}
	}
	return &detail, nil
}
