package models

// Section is a titled block of markdown text
type Section struct {
	Title string `json:"title" yaml:"title"`
	Body  string `json:"body" yaml:"body"`
}

// Lesson holds all static content of the Bernoulli lesson
type Lesson struct {
	Title      string             `json:"title" yaml:"title"`
	Credit     []string           `json:"credit" yaml:"credit"`
	Intro      []Section          `json:"intro" yaml:"intro"`
	Alignment  string             `json:"alignment" yaml:"alignment"`
	Explorer   Section            `json:"explorer" yaml:"explorer"`
	Standards  []Standard         `json:"standards" yaml:"standards"`
	Avatars    []string           `json:"avatars" yaml:"avatars"`
	Quiz       []QuizItem         `json:"quiz" yaml:"quiz"`
	Reflection Reflection         `json:"reflection" yaml:"reflection"`
	Summary    Section            `json:"summary" yaml:"summary"`
	Strands    []Strand           `json:"strands" yaml:"strands"`
	Resources  []ResourceCategory `json:"resources" yaml:"resources"`
	Levels     []ComfortLevel     `json:"levels" yaml:"levels"`
	Footer     string             `json:"footer" yaml:"footer"`
}

// Reflection holds the reflection prompt and feedback texts
type Reflection struct {
	Prompt   string `json:"prompt" yaml:"prompt"`
	Accepted string `json:"accepted" yaml:"accepted"`
	Empty    string `json:"empty" yaml:"empty"`
}
