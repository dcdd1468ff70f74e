package lesson

// State is the per-session lesson state. It only holds what the student has
// chosen; everything derived (pressure, chart, feedback) is recomputed.
type State struct {
	Speed              int    `json:"speed"`
	Name               string `json:"name,omitempty"`
	Avatar             int    `json:"avatar"`
	Standard           int    `json:"standard"`
	Answers            []int  `json:"answers"`
	Strand             int    `json:"strand"`
	Level              int    `json:"level"`
	AwaitingReflection bool   `json:"awaiting_reflection,omitempty"`
}

// Answer returns the selected option for quiz item i. Radio groups start on
// the first option.
func (s State) Answer(i int) int {
	if i < 0 || i >= len(s.Answers) {
		return 0
	}
	return s.Answers[i]
}

func (s State) withAnswer(i, option int) State {
	n := len(s.Answers)
	if i >= n {
		n = i + 1
	}
	answers := make([]int, n)
	copy(answers, s.Answers)
	answers[i] = option
	s.Answers = answers
	return s
}
