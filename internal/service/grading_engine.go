package service

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/lshigami/examdesk/internal/model"
	"github.com/rs/zerolog/log"
)

// GradeResult is the outcome of mechanically grading one answer sheet.
type GradeResult struct {
	ObtainedMarks  int
	CorrectAnswers int
	WrongAnswers   int
	Unanswered     int
	// PendingReview counts answered short-answer and essay questions. They are
	// recorded but excluded from every other tally.
	PendingReview int
	Percentage    float64
	IsEvaluated   bool
}

// Answer is one submitted value. Malformed is set when the wire value was not a
// JSON string; Text then holds the raw JSON and the answer can never be correct.
type Answer struct {
	Text      string
	Malformed bool
}

func (a Answer) blank() bool {
	return !a.Malformed && strings.TrimSpace(a.Text) == ""
}

// DecodeAnswers turns raw wire values into answers. JSON null counts as no answer.
func DecodeAnswers(raw map[string]json.RawMessage) map[string]Answer {
	out := make(map[string]Answer, len(raw))
	for k, v := range raw {
		v = bytes.TrimSpace(v)
		switch {
		case len(v) == 0 || bytes.Equal(v, []byte("null")):
			out[k] = Answer{}
		case v[0] == '"':
			var text string
			if err := json.Unmarshal(v, &text); err != nil {
				out[k] = Answer{Text: string(v), Malformed: true}
				continue
			}
			out[k] = Answer{Text: text}
		default:
			out[k] = Answer{Text: string(v), Malformed: true}
		}
	}
	return out
}

// AnswerTexts is the persisted form of an answer sheet.
func AnswerTexts(answers map[string]Answer) map[string]string {
	out := make(map[string]string, len(answers))
	for k, a := range answers {
		out[k] = a.Text
	}
	return out
}

// GradingEngine grades answers against a test's questions. Implementations must be
// pure: the same input always yields the same result.
type GradingEngine interface {
	// Grade expects answers keyed by question key (see NormalizeAnswers).
	Grade(questions []model.Question, answers map[string]Answer, totalMarks int) (*GradeResult, error)
}

type gradingEngine struct{}

func NewGradingEngine() GradingEngine {
	return &gradingEngine{}
}

func (gradingEngine) Grade(questions []model.Question, answers map[string]Answer, totalMarks int) (*GradeResult, error) {
	if totalMarks <= 0 {
		return nil, &ConfigurationError{Reason: "total marks must be greater than zero"}
	}

	res := &GradeResult{}
	for i := range questions {
		q := &questions[i]
		answer, ok := answers[q.Key.String()]
		if !ok || answer.blank() {
			res.Unanswered++
			continue
		}

		if !q.IsAutoGradable() {
			res.PendingReview++
			continue
		}

		if !answer.Malformed && q.Accepts(answer.Text) {
			res.ObtainedMarks += q.Marks
			res.CorrectAnswers++
		} else {
			res.WrongAnswers++
		}
	}

	res.Percentage = roundTo2(float64(res.ObtainedMarks) / float64(totalMarks) * 100)
	// Strict: any unanswered or pending question leaves the submission unevaluated.
	res.IsEvaluated = res.CorrectAnswers+res.WrongAnswers == len(questions)
	return res, nil
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// NormalizeAnswers translates wire answer keys into question keys. A key may be
// the question's key or its 0-based position; the explicit key wins when both
// address the same question. Keys that address no question are dropped.
func NormalizeAnswers[V any](questions []model.Question, raw map[string]V) map[string]V {
	byKey := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		byKey[q.Key.String()] = struct{}{}
	}

	out := make(map[string]V, len(raw))
	explicit := make(map[string]struct{}, len(raw))
	for k, v := range raw {
		if _, ok := byKey[k]; ok {
			out[k] = v
			explicit[k] = struct{}{}
		}
	}
	for k, v := range raw {
		if _, ok := byKey[k]; ok {
			continue
		}
		pos, err := strconv.Atoi(k)
		if err != nil || pos < 0 || pos >= len(questions) {
			log.Warn().Str("answerKey", k).Msg("NormalizeAnswers: answer does not address any question, skipping.")
			continue
		}
		key := questions[pos].Key.String()
		if _, ok := explicit[key]; ok {
			continue
		}
		// "1" beats aliases such as "01" so the result does not depend on map order.
		if _, taken := out[key]; taken && k != strconv.Itoa(pos) {
			continue
		}
		out[key] = v
	}
	return out
}

// formatDuration renders seconds as "<M> minutes <S> seconds".
func formatDuration(seconds int) string {
	return strconv.Itoa(seconds/60) + " minutes " + strconv.Itoa(seconds%60) + " seconds"
}
