package lesson

// Action is a user interaction. Each frontend translates its own input
// events into one of the types below.
type Action interface {
	action()
}

// SpeedChanged moves the speed slider
type SpeedChanged struct{ Speed int }

// QuizAnswerSelected picks an option in a quiz radio group
type QuizAnswerSelected struct{ Item, Option int }

// QuizChecked asks for feedback on the selected option of a question
type QuizChecked struct{ Item int }

// ReflectionStarted opens the reflection prompt
type ReflectionStarted struct{}

// ReflectionSubmitted submits reflection text
type ReflectionSubmitted struct{ Text string }

// FocusStrandChanged selects a curriculum strand
type FocusStrandChanged struct{ Strand int }

// NameEntered sets the student's name
type NameEntered struct{ Name string }

// AvatarChosen selects an avatar
type AvatarChosen struct{ Avatar int }

// StandardSelected selects a Common Core standard
type StandardSelected struct{ Standard int }

// ComfortLevelChanged selects a comfort level for the study plan
type ComfortLevelChanged struct{ Level int }

// StudyPlanRequested generates the study plan for the selected level
type StudyPlanRequested struct{}

func (SpeedChanged) action()        {}
func (QuizAnswerSelected) action()  {}
func (QuizChecked) action()         {}
func (ReflectionStarted) action()   {}
func (ReflectionSubmitted) action() {}
func (FocusStrandChanged) action()  {}
func (NameEntered) action()         {}
func (AvatarChosen) action()        {}
func (StandardSelected) action()    {}
func (ComfortLevelChanged) action() {}
func (StudyPlanRequested) action()  {}
