package curriculum

import (
	"math"

	"shikhi_backend/models"
)

// AnswerMap maps a question index to the selected option index.
type AnswerMap map[int]int

// ScoreQuiz evaluates an MCQ attempt against the stored question set.
// Questions and options are taken in their stored order; a question counts
// as correct only when the selected option exists and carries IsCorrect.
// Score is round(correct/total*100), or 0 for an empty quiz.
func ScoreQuiz(questions []models.QuizQuestion, answers AnswerMap) (score, correct int) {
	total := len(questions)
	if total == 0 {
		return 0, 0
	}

	for i, q := range questions {
		selected, ok := answers[i]
		if !ok || selected < 0 || selected >= len(q.Options) {
			continue
		}
		if q.Options[selected].IsCorrect {
			correct++
		}
	}

	score = int(math.Round(float64(correct) / float64(total) * 100))
	return score, correct
}
