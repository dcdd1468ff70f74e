package models

// ComfortLevel is a self-reported familiarity with the topic
type ComfortLevel struct {
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Plan        StudyPlan `json:"plan" yaml:"plan"`
}

// Label returns the display label of the level
func (l ComfortLevel) Label() string {
	return l.Name + " - " + l.Description
}

// StudyPlan is a short personalized plan for a comfort level
type StudyPlan struct {
	Title string   `json:"title" yaml:"title"`
	Steps []string `json:"steps" yaml:"steps"`
}
