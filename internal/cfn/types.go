// File: internal/cfn/types.go
// Brief: Stack models returned by the client facade.

package cfn

import "time"

// StackEvent is one entry of a stack's ordered event history.
type StackEvent struct {
	Timestamp  time.Time
	LogicalID  string
	PhysicalID string
	Type       string
	Status     string
	Reason     string
}

// StackDescription is the detailed view of one live stack.
type StackDescription struct {
	Name         string
	ID           string
	Status       string
	StatusReason string
	Description  string
	Created      time.Time
	Updated      *time.Time
	Parameters   map[string]string
	Outputs      map[string]string
	Tags         map[string]string
	Capabilities []string
}

// StackSummary is one row of a stack listing.
type StackSummary struct {
	Name        string
	ID          string
	Status      string
	Description string
	Created     time.Time
	Updated     *time.Time
}

// Export is a named cross-stack output value.
type Export struct {
	Name    string
	Value   string
	StackID string
}

// Resource is one provisioned member of a stack.
type Resource struct {
	LogicalID  string
	PhysicalID string
	Type       string
	Status     string
	Updated    *time.Time
}

// Parameter is a template input override.
type Parameter struct {
	Key   string
	Value string
}

// TemplateParameter describes an input a template declares.
type TemplateParameter struct {
	Key         string
	Default     string
	Description string
	NoEcho      bool
}

// ValidationResult is the outcome of server-side template validation.
type ValidationResult struct {
	Description  string
	Capabilities []string
	Parameters   []TemplateParameter
}

// StackInput carries everything a create or update submission needs.
type StackInput struct {
	Name         string
	TemplateBody string
	Parameters   []Parameter
	Capabilities []string
	RoleARN      string
}
