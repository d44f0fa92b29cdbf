package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/model"
	"github.com/lshigami/examdesk/internal/repository"
	"github.com/rs/zerolog/log"
)

type StudentService interface {
	RegisterStudent(ctx context.Context, req dto.StudentCreateDTO) (*dto.StudentResponseDTO, error)
	GetStudent(ctx context.Context, id uint) (*dto.StudentResponseDTO, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
}

func NewStudentService(studentRepo repository.StudentRepository) StudentService {
	return &studentService{studentRepo: studentRepo}
}

func (s *studentService) RegisterStudent(ctx context.Context, req dto.StudentCreateDTO) (*dto.StudentResponseDTO, error) {
	var student model.Student
	if err := copier.Copy(&student, &req); err != nil {
		return nil, fmt.Errorf("error preparing student: %w", err)
	}
	student.Status = model.StudentStatusActive

	if err := s.studentRepo.Create(ctx, &student); err != nil {
		if errors.Is(err, repository.ErrDuplicateStudent) {
			return nil, invalid("a student with this email or registration number already exists")
		}
		log.Error().Err(err).Str("email", req.Email).Msg("RegisterStudent: Failed to create student")
		return nil, fmt.Errorf("database error creating student: %w", err)
	}

	var resp dto.StudentResponseDTO
	if err := copier.Copy(&resp, &student); err != nil {
		return nil, fmt.Errorf("error preparing student response: %w", err)
	}
	return &resp, nil
}

func (s *studentService) GetStudent(ctx context.Context, id uint) (*dto.StudentResponseDTO, error) {
	student, err := s.studentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("student")
		}
		log.Error().Err(err).Uint("studentID", id).Msg("GetStudent: Failed to fetch student")
		return nil, fmt.Errorf("error fetching student %d: %w", id, err)
	}
	var resp dto.StudentResponseDTO
	if err := copier.Copy(&resp, student); err != nil {
		return nil, fmt.Errorf("error preparing student response: %w", err)
	}
	return &resp, nil
}
