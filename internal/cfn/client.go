// File: internal/cfn/client.go
// Brief: CloudFormation client facade over the narrow call interfaces.

package cfn

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/go-logr/logr"
)

// Client exposes the remote stack operations the CLI consumes. It performs
// no retries of its own; throttling and idempotency are the service's job.
type Client struct {
	api API
	log logr.Logger
}

// NewClient wraps an API implementation. Tests pass fakes here.
func NewClient(api API, log logr.Logger) *Client {
	return &Client{api: api, log: log.WithName("cfn")}
}

// NewFromConfig builds a Client over the real service using resolved AWS
// configuration.
func NewFromConfig(cfg aws.Config, log logr.Logger) *Client {
	return NewClient(cloudformation.NewFromConfig(cfg), log)
}

// Create submits a stack creation and returns the new stack ID.
func (c *Client) Create(ctx context.Context, in StackInput) (string, error) {
	req := &cloudformation.CreateStackInput{
		StackName:    aws.String(in.Name),
		TemplateBody: aws.String(in.TemplateBody),
		Parameters:   toSDKParameters(in.Parameters),
		Capabilities: toSDKCapabilities(in.Capabilities),
	}
	if in.RoleARN != "" {
		req.RoleARN = aws.String(in.RoleARN)
	}
	c.log.V(1).Info("creating stack", "stack", in.Name, "parameters", len(in.Parameters))
	out, err := c.api.CreateStack(ctx, req)
	if err != nil {
		return "", wrapRemote("create stack", in.Name, err)
	}
	return aws.ToString(out.StackId), nil
}

// Update submits a stack update and returns the stack ID.
func (c *Client) Update(ctx context.Context, in StackInput) (string, error) {
	req := &cloudformation.UpdateStackInput{
		StackName:    aws.String(in.Name),
		TemplateBody: aws.String(in.TemplateBody),
		Parameters:   toSDKParameters(in.Parameters),
		Capabilities: toSDKCapabilities(in.Capabilities),
	}
	if in.RoleARN != "" {
		req.RoleARN = aws.String(in.RoleARN)
	}
	c.log.V(1).Info("updating stack", "stack", in.Name, "parameters", len(in.Parameters))
	out, err := c.api.UpdateStack(ctx, req)
	if err != nil {
		return "", wrapRemote("update stack", in.Name, err)
	}
	return aws.ToString(out.StackId), nil
}

// Delete submits a stack deletion. The acknowledgement carries no payload;
// progress is observed by tailing events.
func (c *Client) Delete(ctx context.Context, name string) error {
	c.log.V(1).Info("deleting stack", "stack", name)
	_, err := c.api.DeleteStack(ctx, &cloudformation.DeleteStackInput{StackName: aws.String(name)})
	return wrapRemote("delete stack", name, err)
}

// Events returns the stack's full event history, every page drained, sorted
// ascending by timestamp. The service returns newest-first; ties keep their
// chronological service order.
func (c *Client) Events(ctx context.Context, name string) ([]StackEvent, error) {
	var events []StackEvent
	var nextToken *string
	for {
		out, err := c.api.DescribeStackEvents(ctx, &cloudformation.DescribeStackEventsInput{
			StackName: aws.String(name),
			NextToken: nextToken,
		})
		if err != nil {
			return nil, wrapRemote("describe stack events", name, err)
		}
		for _, ev := range out.StackEvents {
			events = append(events, StackEvent{
				Timestamp:  aws.ToTime(ev.Timestamp),
				LogicalID:  aws.ToString(ev.LogicalResourceId),
				PhysicalID: aws.ToString(ev.PhysicalResourceId),
				Type:       aws.ToString(ev.ResourceType),
				Status:     string(ev.ResourceStatus),
				Reason:     aws.ToString(ev.ResourceStatusReason),
			})
		}
		nextToken = out.NextToken
		if nextToken == nil {
			break
		}
	}
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
	return events, nil
}

// Describe returns the detailed view of one stack.
func (c *Client) Describe(ctx context.Context, name string) (StackDescription, error) {
	out, err := c.api.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{StackName: aws.String(name)})
	if err != nil {
		return StackDescription{}, wrapRemote("describe stack", name, err)
	}
	if len(out.Stacks) == 0 {
		return StackDescription{}, &RemoteError{Kind: NotFound, Op: "describe stack", Stack: name, Err: fmt.Errorf("empty describe response")}
	}
	s := out.Stacks[0]
	desc := StackDescription{
		Name:         aws.ToString(s.StackName),
		ID:           aws.ToString(s.StackId),
		Status:       string(s.StackStatus),
		StatusReason: aws.ToString(s.StackStatusReason),
		Description:  aws.ToString(s.Description),
		Created:      aws.ToTime(s.CreationTime),
		Updated:      s.LastUpdatedTime,
		Parameters:   map[string]string{},
		Outputs:      map[string]string{},
		Tags:         map[string]string{},
	}
	for _, p := range s.Parameters {
		desc.Parameters[aws.ToString(p.ParameterKey)] = aws.ToString(p.ParameterValue)
	}
	for _, o := range s.Outputs {
		desc.Outputs[aws.ToString(o.OutputKey)] = aws.ToString(o.OutputValue)
	}
	for _, t := range s.Tags {
		desc.Tags[aws.ToString(t.Key)] = aws.ToString(t.Value)
	}
	for _, capability := range s.Capabilities {
		desc.Capabilities = append(desc.Capabilities, string(capability))
	}
	return desc, nil
}

// Template fetches the live template body as the service stores it.
func (c *Client) Template(ctx context.Context, name string) (string, error) {
	out, err := c.api.GetTemplate(ctx, &cloudformation.GetTemplateInput{
		StackName:     aws.String(name),
		TemplateStage: types.TemplateStageOriginal,
	})
	if err != nil {
		return "", wrapRemote("get template", name, err)
	}
	return aws.ToString(out.TemplateBody), nil
}

// List enumerates stacks, skipping deleted ones, optionally filtered by a
// case-insensitive name substring.
func (c *Client) List(ctx context.Context, filter string) ([]StackSummary, error) {
	filter = strings.ToLower(filter)
	var stacks []StackSummary
	var nextToken *string
	for {
		out, err := c.api.ListStacks(ctx, &cloudformation.ListStacksInput{NextToken: nextToken})
		if err != nil {
			return nil, wrapRemote("list stacks", "", err)
		}
		for _, s := range out.StackSummaries {
			if s.StackStatus == types.StackStatusDeleteComplete {
				continue
			}
			name := aws.ToString(s.StackName)
			if filter != "" && !strings.Contains(strings.ToLower(name), filter) {
				continue
			}
			stacks = append(stacks, StackSummary{
				Name:        name,
				ID:          aws.ToString(s.StackId),
				Status:      string(s.StackStatus),
				Description: aws.ToString(s.TemplateDescription),
				Created:     aws.ToTime(s.CreationTime),
				Updated:     s.LastUpdatedTime,
			})
		}
		nextToken = out.NextToken
		if nextToken == nil {
			break
		}
	}
	sort.Slice(stacks, func(i, j int) bool { return stacks[i].Name < stacks[j].Name })
	return stacks, nil
}

// Exports enumerates all cross-stack exports.
func (c *Client) Exports(ctx context.Context) ([]Export, error) {
	var exports []Export
	var nextToken *string
	for {
		out, err := c.api.ListExports(ctx, &cloudformation.ListExportsInput{NextToken: nextToken})
		if err != nil {
			return nil, wrapRemote("list exports", "", err)
		}
		for _, e := range out.Exports {
			exports = append(exports, Export{
				Name:    aws.ToString(e.Name),
				Value:   aws.ToString(e.Value),
				StackID: aws.ToString(e.ExportingStackId),
			})
		}
		nextToken = out.NextToken
		if nextToken == nil {
			break
		}
	}
	sort.Slice(exports, func(i, j int) bool { return exports[i].Name < exports[j].Name })
	return exports, nil
}

// Resources enumerates the provisioned members of one stack.
func (c *Client) Resources(ctx context.Context, name string) ([]Resource, error) {
	var resources []Resource
	var nextToken *string
	for {
		out, err := c.api.ListStackResources(ctx, &cloudformation.ListStackResourcesInput{
			StackName: aws.String(name),
			NextToken: nextToken,
		})
		if err != nil {
			return nil, wrapRemote("list stack resources", name, err)
		}
		for _, r := range out.StackResourceSummaries {
			resources = append(resources, Resource{
				LogicalID:  aws.ToString(r.LogicalResourceId),
				PhysicalID: aws.ToString(r.PhysicalResourceId),
				Type:       aws.ToString(r.ResourceType),
				Status:     string(r.ResourceStatus),
				Updated:    r.LastUpdatedTimestamp,
			})
		}
		nextToken = out.NextToken
		if nextToken == nil {
			break
		}
	}
	return resources, nil
}

// Validate runs server-side validation of a template body.
func (c *Client) Validate(ctx context.Context, body string) (ValidationResult, error) {
	out, err := c.api.ValidateTemplate(ctx, &cloudformation.ValidateTemplateInput{TemplateBody: aws.String(body)})
	if err != nil {
		return ValidationResult{}, wrapRemote("validate template", "", err)
	}
	result := ValidationResult{Description: aws.ToString(out.Description)}
	for _, capability := range out.Capabilities {
		result.Capabilities = append(result.Capabilities, string(capability))
	}
	for _, p := range out.Parameters {
		result.Parameters = append(result.Parameters, TemplateParameter{
			Key:         aws.ToString(p.ParameterKey),
			Default:     aws.ToString(p.DefaultValue),
			Description: aws.ToString(p.Description),
			NoEcho:      aws.ToBool(p.NoEcho),
		})
	}
	return result, nil
}

func toSDKParameters(params []Parameter) []types.Parameter {
	if len(params) == 0 {
		return nil
	}
	out := make([]types.Parameter, 0, len(params))
	for _, p := range params {
		out = append(out, types.Parameter{
			ParameterKey:   aws.String(p.Key),
			ParameterValue: aws.String(p.Value),
		})
	}
	return out
}

func toSDKCapabilities(caps []string) []types.Capability {
	if len(caps) == 0 {
		return nil
	}
	out := make([]types.Capability, 0, len(caps))
	for _, c := range caps {
		out = append(out, types.Capability(c))
	}
	return out
}
