// Package seed holds the default trivia catalog loaded by cmd/seed and by
// the in-memory storage driver.
package seed

import (
	"context"
	"fmt"

	"github.com/stemsi/trivia-backend/internal/model"
)

// CategoryWriter persists a category and assigns its id.
type CategoryWriter interface {
	Create(ctx context.Context, c *model.Category) error
}

// QuestionWriter persists a question and assigns its id.
type QuestionWriter interface {
	Create(ctx context.Context, q *model.Question) error
}

var categories = []model.Category{
	{ID: 1, Label: "Science"},
	{ID: 2, Label: "Art"},
	{ID: 3, Label: "Geography"},
	{ID: 4, Label: "History"},
	{ID: 5, Label: "Entertainment"},
	{ID: 6, Label: "Sports"},
}

var questions = []model.Question{
	{Text: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", CategoryID: 4, Difficulty: 2},
	{Text: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", CategoryID: 4, Difficulty: 1},
	{Text: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", CategoryID: 5, Difficulty: 4},
	{Text: "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", Answer: "Tom Cruise", CategoryID: 5, Difficulty: 4},
	{Text: "What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", Answer: "Edward Scissorhands", CategoryID: 5, Difficulty: 3},
	{Text: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", CategoryID: 6, Difficulty: 3},
	{Text: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", CategoryID: 6, Difficulty: 4},
	{Text: "Who invented Peanut Butter?", Answer: "George Washington Carver", CategoryID: 4, Difficulty: 2},
	{Text: "What is the largest lake in Africa?", Answer: "Lake Victoria", CategoryID: 3, Difficulty: 2},
	{Text: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", CategoryID: 3, Difficulty: 3},
	{Text: "The Taj Mahal is located in which Indian city?", Answer: "Agra", CategoryID: 3, Difficulty: 2},
	{Text: "Which Dutch graphic artist, initials M C, was a creator of optical illusions?", Answer: "Escher", CategoryID: 2, Difficulty: 1},
	{Text: "La Giaconda is better known as what?", Answer: "Mona Lisa", CategoryID: 2, Difficulty: 3},
	{Text: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", CategoryID: 2, Difficulty: 4},
	{Text: "Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?", Answer: "Jackson Pollock", CategoryID: 2, Difficulty: 2},
	{Text: "What is the heaviest organ in the human body?", Answer: "The Liver", CategoryID: 1, Difficulty: 4},
	{Text: "Who discovered penicillin?", Answer: "Alexander Fleming", CategoryID: 1, Difficulty: 3},
	{Text: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", CategoryID: 1, Difficulty: 4},
	{Text: "Which dung beetle was worshipped by the ancient Egyptians?", Answer: "Scarab", CategoryID: 4, Difficulty: 4},
}

// Categories returns the default categories with ids 1 through 6.
func Categories() []model.Category {
	out := make([]model.Category, len(categories))
	copy(out, categories)
	return out
}

// Questions returns the starter question set. IDs are unset.
func Questions() []model.Question {
	out := make([]model.Question, len(questions))
	copy(out, questions)
	return out
}

// Summary reports what a load inserted.
type Summary struct {
	Categories int
	Questions  int
}

// Load inserts the default categories and questions. Category ids are
// assigned by w and questions are remapped onto them.
func Load(ctx context.Context, w CategoryWriter, qw QuestionWriter) (Summary, error) {
	var sum Summary
	remap := make(map[int]int, len(categories))
	for _, c := range Categories() {
		created := model.Category{Label: c.Label}
		if err := w.Create(ctx, &created); err != nil {
			return sum, fmt.Errorf("create category %q: %w", c.Label, err)
		}
		remap[c.ID] = created.ID
		sum.Categories++
	}

	n, err := LoadQuestions(ctx, qw, remap)
	sum.Questions = n
	return sum, err
}

// LoadQuestions inserts the starter questions. remap translates default
// category ids to stored ones; a nil map keeps them as-is.
func LoadQuestions(ctx context.Context, qw QuestionWriter, remap map[int]int) (int, error) {
	for i, q := range Questions() {
		if id, ok := remap[q.CategoryID]; ok {
			q.CategoryID = id
		}
		if err := qw.Create(ctx, &q); err != nil {
			return i, fmt.Errorf("create question %d: %w", i+1, err)
		}
	}
	return len(questions), nil
}
