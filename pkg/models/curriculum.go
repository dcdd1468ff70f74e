package models

// Standard is a Common Core math standard the lesson aligns with
type Standard struct {
	Code  string `json:"code" yaml:"code"`
	Title string `json:"title" yaml:"title"`
}

// Label returns the display label, e.g. "HSF-IF.B.4 - Interpret key features..."
func (s Standard) Label() string {
	return s.Code + " - " + s.Title
}

// Emphasis is the resource emphasis a curriculum strand selects
type Emphasis string

const (
	EmphasisEquationBuilding Emphasis = "equation_building"
	EmphasisKeyFeatures      Emphasis = "key_features"
	EmphasisGraphing         Emphasis = "graphing"
	EmphasisSolvingEquations Emphasis = "solving_equations"
)

// Strand is a curriculum strand used to tailor recommended practice
type Strand struct {
	Code     string   `json:"code" yaml:"code"`
	Title    string   `json:"title" yaml:"title"`
	Emphasis Emphasis `json:"emphasis" yaml:"emphasis"`
	Focus    string   `json:"focus" yaml:"focus"`       // Short heading, e.g. "Creating Equations"
	Blurb    string   `json:"blurb" yaml:"blurb"`       // What the resources emphasize
	Practice []string `json:"practice" yaml:"practice"` // Recommended practice items
}

// Label returns the display label of the strand
func (s Strand) Label() string {
	return s.Code + " - " + s.Title
}
