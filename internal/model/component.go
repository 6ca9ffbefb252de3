package model

// ComponentDefinition is one legacy registration call found in a document.
type ComponentDefinition struct {
	// TypeName is the registration string key, e.g. "score-display".
	TypeName       string
	PropertiesText string
	MethodsText    string
	// Span covers the whole registration statement.
	Span ScopeSpan
}

// MethodEntry is a method of a legacy methods object.
type MethodEntry struct {
	Name    string
	IsAsync bool
	Params  string
	Body    ScopeSpan
}
