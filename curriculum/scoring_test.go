package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shikhi_backend/models"
)

func makeQuestions(n int, correctIndex int) []models.QuizQuestion {
	questions := make([]models.QuizQuestion, n)
	for i := range questions {
		questions[i] = models.QuizQuestion{
			Question: "q",
			Options: []models.QuizOption{
				{OptionText: "a", IsCorrect: correctIndex == 0},
				{OptionText: "b", IsCorrect: correctIndex == 1},
				{OptionText: "c", IsCorrect: correctIndex == 2},
			},
		}
	}
	return questions
}

func TestScoreQuizAllCorrect(t *testing.T) {
	questions := makeQuestions(5, 1)
	answers := AnswerMap{0: 1, 1: 1, 2: 1, 3: 1, 4: 1}

	score, correct := ScoreQuiz(questions, answers)
	assert.Equal(t, 100, score)
	assert.Equal(t, 5, correct)
}

func TestScoreQuizNoAnswers(t *testing.T) {
	questions := makeQuestions(4, 0)

	score, correct := ScoreQuiz(questions, AnswerMap{})
	assert.Equal(t, 0, score)
	assert.Equal(t, 0, correct)
}

func TestScoreQuizEmptyQuiz(t *testing.T) {
	score, correct := ScoreQuiz(nil, AnswerMap{0: 0})
	assert.Equal(t, 0, score)
	assert.Equal(t, 0, correct)
}

func TestScoreQuizThreeOfFour(t *testing.T) {
	questions := makeQuestions(4, 2)
	answers := AnswerMap{0: 2, 1: 2, 2: 2, 3: 0}

	score, correct := ScoreQuiz(questions, answers)
	assert.Equal(t, 75, score)
	assert.Equal(t, 3, correct)
}

func TestScoreQuizOutOfRangeSelection(t *testing.T) {
	questions := makeQuestions(2, 0)
	answers := AnswerMap{0: 7, 1: -1}

	score, correct := ScoreQuiz(questions, answers)
	assert.Equal(t, 0, score)
	assert.Equal(t, 0, correct)
}

func TestScoreQuizRounding(t *testing.T) {
	// 1 of 3 correct -> 33.33... rounds to 33; 2 of 3 -> 66.66... rounds to 67.
	questions := makeQuestions(3, 0)

	score, _ := ScoreQuiz(questions, AnswerMap{0: 0})
	assert.Equal(t, 33, score)

	score, _ = ScoreQuiz(questions, AnswerMap{0: 0, 1: 0})
	assert.Equal(t, 67, score)
}
