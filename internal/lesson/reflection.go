package lesson

import "strings"

// ReflectionResult is the outcome of a reflection submission
type ReflectionResult struct {
	Accepted bool
}

// EvaluateReflection accepts any text that is not blank
func EvaluateReflection(text string) ReflectionResult {
	return ReflectionResult{Accepted: strings.TrimSpace(text) != ""}
}

// ReflectionFeedback is rendered after a submission. A rejected submission is
// a warning, not an error.
type ReflectionFeedback struct {
	Accepted bool
	Message  string
}
