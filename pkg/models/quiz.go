package models

// QuizItem is a single multiple-choice question of the lesson quiz
type QuizItem struct {
	Prompt      string   `json:"prompt" yaml:"prompt"`
	Options     []string `json:"options" yaml:"options"`
	Correct     int      `json:"correct" yaml:"correct"` // Index into Options
	Explanation string   `json:"explanation" yaml:"explanation"`
}

// QuizOptionCount is the number of options every quiz item carries
const QuizOptionCount = 4
