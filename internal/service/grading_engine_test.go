package service

import (
	"encoding/json"
	"math/rand"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/lshigami/examdesk/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func question(pos int, typ, correct string, marks int) model.Question {
	return model.Question{
		Key:           uuid.New(),
		Position:      pos,
		Type:          typ,
		CorrectAnswer: correct,
		Marks:         marks,
	}
}

func scenarioQuestions() []model.Question {
	return []model.Question{
		question(0, model.QuestionTypeMultipleChoice, "B", 2),
		question(1, model.QuestionTypeTrueFalse, "true", 1),
	}
}

// sheet encodes plain text answers the way a client sends them.
func sheet(raw map[string]string) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(raw))
	for k, v := range raw {
		b, _ := json.Marshal(v)
		out[k] = b
	}
	return out
}

func gradeRaw(t *testing.T, questions []model.Question, raw map[string]json.RawMessage, total int) *GradeResult {
	t.Helper()
	res, err := NewGradingEngine().Grade(questions, NormalizeAnswers(questions, DecodeAnswers(raw)), total)
	require.NoError(t, err)
	return res
}

func grade(t *testing.T, questions []model.Question, raw map[string]string, total int) *GradeResult {
	t.Helper()
	res, err := NewGradingEngine().Grade(questions, NormalizeAnswers(questions, DecodeAnswers(sheet(raw))), total)
	require.NoError(t, err)
	return res
}

func TestGradeOneRightOneWrong(t *testing.T) {
	res := grade(t, scenarioQuestions(), map[string]string{"0": "B", "1": "false"}, 3)

	assert.Equal(t, 2, res.ObtainedMarks)
	assert.Equal(t, 1, res.CorrectAnswers)
	assert.Equal(t, 1, res.WrongAnswers)
	assert.Equal(t, 0, res.Unanswered)
	assert.Equal(t, 66.67, res.Percentage)
	assert.True(t, res.IsEvaluated)
}

func TestGradeEmptyAnswerSheet(t *testing.T) {
	res := grade(t, scenarioQuestions(), map[string]string{}, 3)

	assert.Equal(t, 0, res.ObtainedMarks)
	assert.Equal(t, 0, res.CorrectAnswers)
	assert.Equal(t, 0, res.WrongAnswers)
	assert.Equal(t, 2, res.Unanswered)
	assert.Equal(t, 0.0, res.Percentage)
	assert.False(t, res.IsEvaluated)
}

func TestGradeZeroTotalMarks(t *testing.T) {
	_, err := NewGradingEngine().Grade(scenarioQuestions(), map[string]Answer{}, 0)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestGradeBlankAnswersAreUnanswered(t *testing.T) {
	res := grade(t, scenarioQuestions(), map[string]string{"0": "", "1": "   \t"}, 3)

	assert.Equal(t, 2, res.Unanswered)
	assert.Equal(t, 0, res.WrongAnswers)
	assert.False(t, res.IsEvaluated)
}

func TestGradeExactComparison(t *testing.T) {
	questions := scenarioQuestions()

	res := grade(t, questions, map[string]string{"0": "b", "1": " true"}, 3)
	assert.Equal(t, 0, res.CorrectAnswers)
	assert.Equal(t, 2, res.WrongAnswers)
	assert.Equal(t, 0, res.ObtainedMarks)
	assert.True(t, res.IsEvaluated)
}

func TestGradeMalformedAnswerIsWrong(t *testing.T) {
	res := grade(t, scenarioQuestions(), map[string]string{"0": "not-an-option", "1": "maybe"}, 3)

	assert.Equal(t, 2, res.WrongAnswers)
	assert.Equal(t, 0.0, res.Percentage)
}

func TestGradeNonStringValuesAreWrong(t *testing.T) {
	questions := scenarioQuestions()

	res := gradeRaw(t, questions, map[string]json.RawMessage{"0": json.RawMessage(`1`), "1": json.RawMessage(`true`)}, 3)
	assert.Equal(t, 0, res.CorrectAnswers)
	assert.Equal(t, 2, res.WrongAnswers)
	assert.Equal(t, 0, res.ObtainedMarks)
	assert.True(t, res.IsEvaluated)

	res = gradeRaw(t, questions, map[string]json.RawMessage{"0": json.RawMessage(`["B"]`), "1": json.RawMessage(`null`)}, 3)
	assert.Equal(t, 1, res.WrongAnswers)
	assert.Equal(t, 1, res.Unanswered)
}

func TestDecodeAnswers(t *testing.T) {
	got := DecodeAnswers(map[string]json.RawMessage{
		"text":   json.RawMessage(`"B"`),
		"number": json.RawMessage(`1`),
		"bool":   json.RawMessage(` true `),
		"null":   json.RawMessage(`null`),
		"object": json.RawMessage(`{"a":1}`),
	})

	assert.Equal(t, Answer{Text: "B"}, got["text"])
	assert.Equal(t, Answer{Text: "1", Malformed: true}, got["number"])
	assert.Equal(t, Answer{Text: "true", Malformed: true}, got["bool"])
	assert.Equal(t, Answer{}, got["null"])
	assert.Equal(t, Answer{Text: `{"a":1}`, Malformed: true}, got["object"])

	assert.Equal(t, map[string]string{"k": "1"}, AnswerTexts(map[string]Answer{"k": {Text: "1", Malformed: true}}))
}

func TestGradeConservesCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	types := []string{model.QuestionTypeMultipleChoice, model.QuestionTypeTrueFalse, model.QuestionTypeEssay, model.QuestionTypeShortAnswer}

	for round := 0; round < 500; round++ {
		allGradable := round%2 == 0
		n := 1 + rng.Intn(10)
		questions := make([]model.Question, n)
		raw := make(map[string]json.RawMessage)
		sum := 0
		for i := range questions {
			typ := types[rng.Intn(2)]
			if !allGradable {
				typ = types[rng.Intn(len(types))]
			}
			questions[i] = question(i, typ, "A", 1+rng.Intn(5))
			sum += questions[i].Marks

			key := strconv.Itoa(i)
			switch rng.Intn(5) {
			case 0:
				raw[key] = json.RawMessage(`"A"`)
			case 1:
				raw[key] = json.RawMessage(`"C"`)
			case 2:
				raw[key] = json.RawMessage(`"  "`)
			case 3:
				raw[key] = json.RawMessage(`7`)
			}
		}
		total := sum + rng.Intn(6)

		res := gradeRaw(t, questions, raw, total)

		assert.LessOrEqual(t, res.ObtainedMarks, total)
		assert.GreaterOrEqual(t, res.Percentage, 0.0)
		assert.LessOrEqual(t, res.Percentage, 100.0)
		assert.Equal(t, n, res.CorrectAnswers+res.WrongAnswers+res.Unanswered+res.PendingReview)
		if allGradable {
			assert.Zero(t, res.PendingReview)
			assert.Equal(t, n, res.CorrectAnswers+res.WrongAnswers+res.Unanswered)
			assert.Equal(t, res.Unanswered == 0, res.IsEvaluated)
		}
	}
}

func TestGradeAlternativeCorrectAnswers(t *testing.T) {
	q := question(0, model.QuestionTypeMultipleChoice, "", 4)
	q.CorrectAnswers = []string{"A", "C"}

	res := grade(t, []model.Question{q}, map[string]string{"0": "C"}, 4)
	assert.Equal(t, 1, res.CorrectAnswers)
	assert.Equal(t, 100.0, res.Percentage)

	res = grade(t, []model.Question{q}, map[string]string{"0": ""}, 4)
	assert.Equal(t, 1, res.Unanswered)
}

func TestGradeNonGradableQuestionsPendReview(t *testing.T) {
	questions := []model.Question{
		question(0, model.QuestionTypeMultipleChoice, "A", 1),
		question(1, model.QuestionTypeEssay, "", 5),
		question(2, model.QuestionTypeShortAnswer, "", 2),
	}

	res := grade(t, questions, map[string]string{"0": "A", "1": "my essay", "2": ""}, 8)

	assert.Equal(t, 1, res.CorrectAnswers)
	assert.Equal(t, 0, res.WrongAnswers)
	assert.Equal(t, 1, res.PendingReview)
	assert.Equal(t, 1, res.Unanswered)
	assert.Equal(t, 1, res.ObtainedMarks)
	assert.Equal(t, 12.5, res.Percentage)
	// An answered essay keeps the submission unevaluated.
	assert.False(t, res.IsEvaluated)
}

func TestGradeIsDeterministic(t *testing.T) {
	questions := scenarioQuestions()
	raw := map[string]string{"0": "B", "1": "false", "01": "true", "7": "x"}

	first := grade(t, questions, raw, 3)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, grade(t, questions, raw, 3))
	}
}

func TestNormalizeAnswers(t *testing.T) {
	questions := scenarioQuestions()
	k0, k1 := questions[0].Key.String(), questions[1].Key.String()

	t.Run("positional keys map to question keys", func(t *testing.T) {
		got := NormalizeAnswers(questions, map[string]string{"0": "B", "1": "true"})
		assert.Equal(t, map[string]string{k0: "B", k1: "true"}, got)
	})

	t.Run("explicit key wins over position", func(t *testing.T) {
		got := NormalizeAnswers(questions, map[string]string{"0": "A", k0: "B"})
		assert.Equal(t, map[string]string{k0: "B"}, got)
	})

	t.Run("canonical position wins over padded alias", func(t *testing.T) {
		got := NormalizeAnswers(questions, map[string]string{"01": "false", "1": "true"})
		assert.Equal(t, map[string]string{k1: "true"}, got)
	})

	t.Run("unknown keys are dropped", func(t *testing.T) {
		got := NormalizeAnswers(questions, map[string]string{"-1": "A", "2": "A", "abc": "A"})
		assert.Empty(t, got)
	})
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0 minutes 0 seconds", formatDuration(0))
	assert.Equal(t, "2 minutes 5 seconds", formatDuration(125))
	assert.Equal(t, "61 minutes 1 seconds", formatDuration(3661))
}
