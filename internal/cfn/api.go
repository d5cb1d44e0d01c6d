// File: internal/cfn/api.go
// Brief: Narrow interfaces over the CloudFormation SDK client.

// Package cfn wraps the CloudFormation control plane behind the operations
// the CLI needs. Each SDK call the package consumes is declared as a one-method
// interface so tests can inject fakes without touching the network.
package cfn

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

// CreateStackAPI covers stack creation.
type CreateStackAPI interface {
	CreateStack(ctx context.Context, params *cloudformation.CreateStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.CreateStackOutput, error)
}

// UpdateStackAPI covers applying template changes to an existing stack.
type UpdateStackAPI interface {
	UpdateStack(ctx context.Context, params *cloudformation.UpdateStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.UpdateStackOutput, error)
}

// DeleteStackAPI covers stack deletion.
type DeleteStackAPI interface {
	DeleteStack(ctx context.Context, params *cloudformation.DeleteStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error)
}

// DescribeStackEventsAPI covers the full-history event query the tailer polls.
type DescribeStackEventsAPI interface {
	DescribeStackEvents(ctx context.Context, params *cloudformation.DescribeStackEventsInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStackEventsOutput, error)
}

// DescribeStacksAPI covers stack status, parameter, and tag queries.
type DescribeStacksAPI interface {
	DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
}

// GetTemplateAPI covers fetching the live template document.
type GetTemplateAPI interface {
	GetTemplate(ctx context.Context, params *cloudformation.GetTemplateInput, optFns ...func(*cloudformation.Options)) (*cloudformation.GetTemplateOutput, error)
}

// ListStacksAPI covers stack enumeration.
type ListStacksAPI interface {
	ListStacks(ctx context.Context, params *cloudformation.ListStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ListStacksOutput, error)
}

// ListExportsAPI covers cross-stack export enumeration.
type ListExportsAPI interface {
	ListExports(ctx context.Context, params *cloudformation.ListExportsInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ListExportsOutput, error)
}

// ListStackResourcesAPI covers per-stack resource enumeration.
type ListStackResourcesAPI interface {
	ListStackResources(ctx context.Context, params *cloudformation.ListStackResourcesInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ListStackResourcesOutput, error)
}

// ValidateTemplateAPI covers server-side template validation.
type ValidateTemplateAPI interface {
	ValidateTemplate(ctx context.Context, params *cloudformation.ValidateTemplateInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ValidateTemplateOutput, error)
}

// API is the full surface the Client facade consumes.
type API interface {
	CreateStackAPI
	UpdateStackAPI
	DeleteStackAPI
	DescribeStackEventsAPI
	DescribeStacksAPI
	GetTemplateAPI
	ListStacksAPI
	ListExportsAPI
	ListStackResourcesAPI
	ValidateTemplateAPI
}

var _ API = (*cloudformation.Client)(nil)
