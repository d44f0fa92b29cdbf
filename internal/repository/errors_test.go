package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"translated by gorm", gorm.ErrDuplicatedKey, true},
		{"wrapped gorm error", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"raw postgres unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "idx_submissions_test_student"}, true},
		{"other postgres error", &pgconn.PgError{Code: "23503"}, false},
		{"unrelated", errors.New("connection reset"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsUniqueViolation(tc.err))
		})
	}
}

func TestTranslateNotFound(t *testing.T) {
	assert.ErrorIs(t, translateNotFound(gorm.ErrRecordNotFound), ErrNotFound)

	other := errors.New("boom")
	assert.Equal(t, other, translateNotFound(other))
}
