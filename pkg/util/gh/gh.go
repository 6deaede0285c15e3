package gh

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ffalor/standup/pkg/util/types"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

const apiURL = "https://api.github.com"

type Gh struct {
	Token  string
	Client *githubv4.Client

	http    *http.Client
	baseURL string
}

func NewGh(token string) *Gh {
	src := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	httpClient := oauth2.NewClient(context.Background(), src)
	httpClient.Timeout = 30 * time.Second
	client := githubv4.NewClient(httpClient)

	return &Gh{
		Token:   token,
		Client:  client,
		http:    httpClient,
		baseURL: apiURL,
	}
}

// Notifications returns the viewer's inbox notifications.
func (g *Gh) Notifications(ctx context.Context) ([]types.Notification, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/notifications", nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch notifications: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read notifications response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	var notifications []types.Notification
	if err := json.Unmarshal(body, &notifications); err != nil {
		return nil, fmt.Errorf("decode notifications response: %w", err)
	}

	return notifications, nil
}

// Dashboard runs the batched search query for open PRs authored by the
// viewer and items assigned to the viewer, scoped to orgs when non-empty.
func (g *Gh) Dashboard(ctx context.Context, orgs []string) (*types.Dashboard, error) {
	variables := map[string]interface{}{
		"openPrsQuery":  githubv4.String(SearchQuery("author:@me is:pr", orgs)),
		"assignedQuery": githubv4.String(SearchQuery("assignee:@me", orgs)),
	}

	var query types.DashboardQuery

	err := g.Client.Query(ctx, &query, variables)
	if err != nil {
		return nil, fmt.Errorf("dashboard query: %w", err)
	}

	// The viewer id feeds notification referrer tokens downstream, so a
	// missing one is a hard failure rather than a zero default.
	if query.Viewer.DatabaseID == 0 {
		return nil, &MalformedResponseError{Field: "viewer.databaseId"}
	}

	return &types.Dashboard{
		ViewerID: query.Viewer.DatabaseID,
		OpenPRs:  query.OpenPRs.Nodes,
		Assigned: query.Assigned.Nodes,
	}, nil
}
