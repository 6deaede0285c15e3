package gh

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ffalor/standup/pkg/util/report"
	"github.com/shurcooL/githubv4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchQuery(t *testing.T) {
	tests := []struct {
		name      string
		predicate string
		orgs      []string
		want      string
	}{
		{
			name:      "no orgs",
			predicate: "author:@me is:pr",
			want:      "state:open author:@me is:pr",
		},
		{
			name:      "one org",
			predicate: "assignee:@me",
			orgs:      []string{"acme"},
			want:      "state:open assignee:@me org:acme",
		},
		{
			name:      "multiple orgs",
			predicate: "assignee:@me",
			orgs:      []string{"acme", "globex"},
			want:      "state:open assignee:@me org:acme org:globex",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SearchQuery(tt.predicate, tt.orgs))
		})
	}
}

func TestNotifications(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notifications", r.URL.Path)
		w.Write([]byte(`[
			{
				"id": "1",
				"updated_at": "2024-01-01T00:00:00Z",
				"reason": "review_requested",
				"repository": {"name": "r", "owner": {"login": "acme"}},
				"subject": {"title": "T", "url": "https://api.github.com/repos/acme/r/pulls/5", "type": "PullRequest"}
			}
		]`))
	}))
	defer server.Close()

	g := &Gh{http: server.Client(), baseURL: server.URL}

	notifications, err := g.Notifications(context.Background())
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	n := notifications[0]
	assert.Equal(t, "1", n.ID)
	assert.Equal(t, "review_requested", n.Reason)
	assert.Equal(t, "acme", n.Repository.Owner.Login)
	assert.Equal(t, "PullRequest", n.Subject.Type)
}

func TestNotificationsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Bad credentials"}`))
	}))
	defer server.Close()

	g := &Gh{http: server.Client(), baseURL: server.URL}

	_, err := g.Notifications(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Contains(t, apiErr.Body, "Bad credentials")
	assert.Contains(t, apiErr.Error(), "401")
}

func graphqlStub(t *testing.T, response string) *Gh {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)

	return &Gh{Client: githubv4.NewEnterpriseClient(server.URL, server.Client())}
}

func TestDashboard(t *testing.T) {
	g := graphqlStub(t, `{"data": {
		"viewer": {"databaseId": 42},
		"openPrs": {"nodes": []},
		"assigned": {"nodes": [{
			"__typename": "PullRequest",
			"number": 7,
			"title": "T",
			"url": "https://github.com/acme/r/pull/7",
			"updatedAt": "2024-01-01T00:00:00Z",
			"repository": {"owner": {"login": "acme"}, "name": "r", "nameWithOwner": "acme/r"},
			"labels": {"nodes": [{"name": "blocked"}]},
			"timelineItems": {"nodes": [{"willCloseTarget": true, "source": {"number": 9, "url": "https://github.com/acme/r/pull/9"}}]},
			"isDraft": false,
			"headRefName": "fix",
			"mergeable": "MERGEABLE",
			"reviewDecision": ""
		}]}
	}}`)

	dashboard, err := g.Dashboard(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 42, dashboard.ViewerID)
	assert.Empty(t, dashboard.OpenPRs)
	require.Len(t, dashboard.Assigned, 1)

	// The shared fields must land on the Issue branch even for PR
	// nodes; the assigned transformer reads them from there.
	node := dashboard.Assigned[0]
	assert.True(t, node.IsPullRequest())
	assert.Equal(t, "r", node.Issue.Repository.Name)
	assert.Equal(t, 7, node.Issue.Number)
	assert.Equal(t, "fix", node.PullRequest.HeadRefName)

	rows := report.Assigned(dashboard.Assigned)
	require.Len(t, rows, 1)
	assert.Equal(t, "r", rows[0].Repo)
	assert.Equal(t, 7, rows[0].Number)
	assert.True(t, rows[0].Blocked)
	require.NotNil(t, rows[0].ClosingPR)
	assert.Equal(t, 9, rows[0].ClosingPR.Number)
}

func TestDashboardMissingViewerID(t *testing.T) {
	g := graphqlStub(t, `{"data": {
		"viewer": {"databaseId": 0},
		"openPrs": {"nodes": []},
		"assigned": {"nodes": []}
	}}`)

	_, err := g.Dashboard(context.Background(), nil)

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "viewer.databaseId", malformed.Field)
}

func TestMalformedResponseError(t *testing.T) {
	err := &MalformedResponseError{Field: "viewer.databaseId"}
	assert.Contains(t, err.Error(), "viewer.databaseId")

	var target *MalformedResponseError
	assert.True(t, errors.As(error(err), &target))
}
