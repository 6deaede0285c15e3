package report

import (
	"sort"
	"strings"

	"github.com/ffalor/standup/pkg/util/types"
)

// Assigned turns search nodes for items assigned to the viewer into
// rows grouped for triage: items a PR is about to close first, then
// explicitly blocked items, then the rest, each group oldest-first.
func Assigned(nodes []types.SearchNode) []types.AssignedRow {
	var rows []types.AssignedRow

	for _, node := range nodes {
		item := node.Issue

		closing := closingPR(item)
		blocked := isBlocked(item)

		rows = append(rows, types.AssignedRow{
			Repo:      item.Repository.Name,
			Number:    item.Number,
			Title:     item.Title,
			URL:       item.URL,
			ClosingPR: closing,
			Blocked:   blocked,
			Dim:       closing != nil || blocked,
			UpdatedAt: item.UpdatedAt,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if (a.ClosingPR != nil) != (b.ClosingPR != nil) {
			return a.ClosingPR != nil
		}
		if a.Blocked != b.Blocked {
			return a.Blocked
		}
		return a.UpdatedAt < b.UpdatedAt
	})

	return rows
}

// closingPR returns the first cross-referenced PR that will close the
// item on merge, or nil if there is none.
func closingPR(item types.IssueFragment) *types.ClosingPR {
	for _, node := range item.TimelineItems.Nodes {
		if !node.Event.WillCloseTarget {
			continue
		}

		return &types.ClosingPR{
			Number: node.Event.Source.PullRequest.Number,
			URL:    node.Event.Source.PullRequest.URL,
		}
	}

	return nil
}

// isBlocked matches any label whose name contains "blocked", e.g.
// "blocked" or "blocked-on-design".
func isBlocked(item types.IssueFragment) bool {
	for _, label := range item.Labels.Nodes {
		if strings.Contains(label.Name, "blocked") {
			return true
		}
	}

	return false
}
