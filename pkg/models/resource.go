package models

// Resource is an external learning link
type Resource struct {
	Name        string `json:"name" yaml:"name"`
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description" yaml:"description"`
}

// ResourceCategory groups resources under a tab label
type ResourceCategory struct {
	Label     string     `json:"label" yaml:"label"`
	Resources []Resource `json:"resources" yaml:"resources"`
}
