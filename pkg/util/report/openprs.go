package report

import (
	"sort"

	"github.com/ffalor/standup/pkg/util/types"
)

// Status icons shared by the open-PRs table.
const (
	IconPass    = "✅"
	IconFail    = "❌"
	IconPending = "🟡"
	IconUnknown = "❔"
)

// OpenPRs turns search nodes for PRs authored by the viewer into rows
// sorted oldest-first, with CI and review status derived per PR.
func OpenPRs(nodes []types.SearchNode) []types.OpenPRRow {
	var rows []types.OpenPRRow

	for _, node := range nodes {
		if !node.IsPullRequest() {
			continue
		}

		pr := node.PullRequest

		rows = append(rows, types.OpenPRRow{
			Repo:         pr.Repository.Name,
			Number:       pr.Number,
			Title:        pr.Title,
			URL:          pr.URL,
			Branch:       pr.HeadRefName,
			CIStatus:     CIStatus(pr),
			ReviewStatus: ReviewStatus(pr),
			Draft:        pr.IsDraft,
			UpdatedAt:    pr.UpdatedAt,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].UpdatedAt < rows[j].UpdatedAt
	})

	return rows
}

// CIStatus collapses mergeability and the latest commit's check rollup
// into one icon. Anything not cleanly mergeable is a failure, whatever
// the checks say.
func CIStatus(pr types.PullRequestFragment) string {
	if pr.Mergeable != "MERGEABLE" {
		return IconFail
	}

	switch rollupState(pr) {
	case "PENDING":
		return IconPending
	case "SUCCESS":
		return IconPass
	default:
		return IconFail
	}
}

func rollupState(pr types.PullRequestFragment) string {
	nodes := pr.Commits.Nodes
	if len(nodes) == 0 || nodes[0].Commit.StatusCheckRollup == nil {
		return ""
	}

	return nodes[0].Commit.StatusCheckRollup.State
}

// ReviewStatus derives the review icon. Drafts show nothing; an
// overall APPROVED decision wins; otherwise the latest review decides,
// falling back to whether anyone has even been asked yet.
func ReviewStatus(pr types.PullRequestFragment) string {
	if pr.IsDraft {
		return ""
	}

	if pr.ReviewDecision == "APPROVED" {
		return IconPass
	}

	if len(pr.LatestReviews.Nodes) == 0 {
		if len(pr.ReviewRequests.Nodes) > 0 {
			return IconPending
		}
		return IconUnknown
	}

	switch pr.LatestReviews.Nodes[0].State {
	case "APPROVED":
		return IconPass
	case "CHANGES_REQUESTED":
		return IconFail
	default:
		return IconUnknown
	}
}
