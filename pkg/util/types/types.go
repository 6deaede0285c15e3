package types

// Notification is one entry from the REST notifications endpoint.
type Notification struct {
	ID         string `json:"id"`
	UpdatedAt  string `json:"updated_at"`
	Reason     string `json:"reason"`
	Repository struct {
		Name  string `json:"name"`
		Owner struct {
			Login string `json:"login"`
		} `json:"owner"`
	} `json:"repository"`
	Subject struct {
		Title string `json:"title"`
		URL   string `json:"url"`
		Type  string `json:"type"`
	} `json:"subject"`
}

// Label is one label on an issue or PR.
type Label struct {
	Name string
}

// TimelineNode is one timeline entry; only cross-referenced events are
// requested, everything else decodes as a zero Event.
type TimelineNode struct {
	Event CrossReferencedEvent `graphql:"... on CrossReferencedEvent"`
}

// CrossReferencedEvent records another PR referencing this item.
// WillCloseTarget means merging the source closes this item.
type CrossReferencedEvent struct {
	WillCloseTarget bool
	Source          struct {
		PullRequest struct {
			Number int
			URL    string
		} `graphql:"... on PullRequest"`
	}
}

// IssueFragment holds the fields shared by issues and pull requests in
// search results.
type IssueFragment struct {
	Author struct {
		Login string
	}
	Labels struct {
		Nodes []Label
	} `graphql:"labels(first: 20)"`
	Number     int
	Repository struct {
		Owner struct {
			Login string
		}
		Name          string
		NameWithOwner string
	}
	TimelineItems struct {
		Nodes []TimelineNode
	} `graphql:"timelineItems(itemTypes: CROSS_REFERENCED_EVENT, last: 20)"`
	Title     string
	UpdatedAt string
	URL       string
}

// StatusCheckRollup is the aggregated CI state of a commit. Nil on
// commits with no checks at all.
type StatusCheckRollup struct {
	State string
}

// CommitNode wraps the single most recent commit of a PR.
type CommitNode struct {
	Commit struct {
		StatusCheckRollup *StatusCheckRollup
	}
}

// Review is a submitted review's state.
type Review struct {
	State string
}

// ReviewRequest is an outstanding request for review.
type ReviewRequest struct {
	RequestedReviewer struct {
		User struct {
			Login string
		} `graphql:"... on User"`
	}
}

// PullRequestFragment adds the PR-only fields on top of the shared set.
type PullRequestFragment struct {
	IssueFragment
	IsDraft        bool
	HeadRefName    string
	Mergeable      string
	ReviewDecision string
	Commits        struct {
		Nodes []CommitNode
	} `graphql:"commits(last: 1)"`
	LatestReviews struct {
		Nodes []Review
	} `graphql:"latestReviews(last: 1)"`
	ReviewRequests struct {
		Nodes []ReviewRequest
	} `graphql:"reviewRequests(last: 1)"`
}

// SearchNode is one polymorphic search result. Typename tags the
// variant; the shared fields land in Issue either way, and the
// PullRequest payload is only populated for PR nodes.
type SearchNode struct {
	Typename    string              `graphql:"__typename"`
	Issue       IssueFragment       `graphql:"... on Issue"`
	PullRequest PullRequestFragment `graphql:"... on PullRequest"`
}

// IsPullRequest reports whether the node is the PR variant.
func (n SearchNode) IsPullRequest() bool {
	return n.Typename == "PullRequest"
}

// DashboardQuery is the single batched query behind the Open PRs and
// Assigned tables. The viewer id also feeds notification referrer
// tokens.
type DashboardQuery struct {
	Viewer struct {
		DatabaseID int
	}
	OpenPRs struct {
		Nodes []SearchNode
	} `graphql:"openPrs: search(query: $openPrsQuery, type: ISSUE, first: 100)"`
	Assigned struct {
		Nodes []SearchNode
	} `graphql:"assigned: search(query: $assignedQuery, type: ISSUE, first: 100)"`
}

// Dashboard is the decoded result of a DashboardQuery.
type Dashboard struct {
	ViewerID int
	OpenPRs  []SearchNode
	Assigned []SearchNode
}

// NotificationRow is a display-ready notifications table entry.
type NotificationRow struct {
	Repo      string
	Title     string
	URL       string
	Type      string
	Reason    string
	Referrer  string
	UpdatedAt string
}

// OpenPRRow is a display-ready open-PRs table entry.
type OpenPRRow struct {
	Repo         string
	Number       int
	Title        string
	URL          string
	Branch       string
	CIStatus     string
	ReviewStatus string
	Draft        bool
	UpdatedAt    string
}

// ClosingPR references a pull request that will close an assigned item
// when it merges.
type ClosingPR struct {
	Number int
	URL    string
}

// AssignedRow is a display-ready assigned table entry. Dim is set for
// rows that need no attention right now: a PR is already closing them,
// or they are labeled blocked.
type AssignedRow struct {
	Repo      string
	Number    int
	Title     string
	URL       string
	ClosingPR *ClosingPR
	Blocked   bool
	Dim       bool
	UpdatedAt string
}
