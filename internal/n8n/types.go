package n8n

import "net/url"

// ListWorkflowsOptions filters workflow listing. Nil or empty fields
// are omitted from the query string entirely.
type ListWorkflowsOptions struct {
	Active            *bool
	Tags              string
	Name              string
	ProjectID         string
	ExcludePinnedData *bool
	Limit             *int
	Cursor            string
}

func (o *ListWorkflowsOptions) query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	setBool(q, "active", o.Active)
	setString(q, "tags", o.Tags)
	setString(q, "name", o.Name)
	setString(q, "projectId", o.ProjectID)
	setBool(q, "excludePinnedData", o.ExcludePinnedData)
	setInt(q, "limit", o.Limit)
	setString(q, "cursor", o.Cursor)
	return q
}

// ListExecutionsOptions filters execution listing.
type ListExecutionsOptions struct {
	IncludeData *bool
	Status      string
	WorkflowID  string
	ProjectID   string
	Limit       *int
	Cursor      string
}

func (o *ListExecutionsOptions) query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	setBool(q, "includeData", o.IncludeData)
	setString(q, "status", o.Status)
	setString(q, "workflowId", o.WorkflowID)
	setString(q, "projectId", o.ProjectID)
	setInt(q, "limit", o.Limit)
	setString(q, "cursor", o.Cursor)
	return q
}

// ListOptions covers the cursor-paginated collection endpoints that
// take no other filters (tags, variables, credentials).
type ListOptions struct {
	Limit  *int
	Cursor string
}

func (o *ListOptions) query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	setInt(q, "limit", o.Limit)
	setString(q, "cursor", o.Cursor)
	return q
}

// AuditOptions narrows the scope of a security audit run.
type AuditOptions struct {
	// DaysAbandonedWorkflow is the inactivity threshold, in days, after
	// which a workflow counts as abandoned.
	DaysAbandonedWorkflow *int
	// Categories limits the audit to the named risk categories
	// (credentials, database, nodes, filesystem, instance).
	Categories []string
}

// WebhookAuth carries optional HTTP basic-auth credentials for webhook
// invocations.
type WebhookAuth struct {
	Username string
	Password string
}
