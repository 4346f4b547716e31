package model

// ValidationResult collects structural problems found in a webhook body.
// Errors make the event invalid; warnings never do.
type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}
