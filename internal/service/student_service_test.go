package service

import (
	"context"
	"testing"

	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/model"
	"github.com/lshigami/examdesk/internal/repository/memrepo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterStudent(t *testing.T) {
	svc := NewStudentService(memrepo.NewStudentRepository(memrepo.NewDB()))
	ctx := context.Background()
	reg := "REG-001"

	student, err := svc.RegisterStudent(ctx, dto.StudentCreateDTO{Name: "Asha", Email: "asha@example.com", RegistrationNumber: &reg})
	require.NoError(t, err)
	assert.NotZero(t, student.ID)
	assert.Equal(t, model.StudentStatusActive, student.Status)
	require.NotNil(t, student.RegistrationNumber)
	assert.Equal(t, reg, *student.RegistrationNumber)

	_, err = svc.RegisterStudent(ctx, dto.StudentCreateDTO{Name: "Asha Again", Email: "asha@example.com"})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = svc.RegisterStudent(ctx, dto.StudentCreateDTO{Name: "Ben", Email: "ben@example.com", RegistrationNumber: &reg})
	assert.ErrorAs(t, err, &verr)

	got, err := svc.GetStudent(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", got.Email)

	_, err = svc.GetStudent(ctx, 999)
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}
