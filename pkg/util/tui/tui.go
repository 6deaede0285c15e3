package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"

	"github.com/ffalor/standup/pkg/util/types"
)

// RenderNotifications formats the notifications table.
func RenderNotifications(rows []types.NotificationRow) string {
	data := make([][]string, len(rows))
	for i, row := range rows {
		data[i] = []string{
			row.Repo,
			Hyperlink(row.URL, row.Title),
			row.Type,
			row.Reason,
			row.Referrer,
			TimeAgo(row.UpdatedAt),
		}
	}

	style := func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case col == 5:
			return updatedStyle
		default:
			return cellStyle
		}
	}

	return renderTable("Notifications", []string{"Repo", "Title", "Type", "Reason", "Ref", "Updated"}, data, style)
}

// RenderOpenPRs formats the open-PRs table. Draft PR numbers render
// muted instead of the usual accent.
func RenderOpenPRs(rows []types.OpenPRRow) string {
	data := make([][]string, len(rows))
	for i, row := range rows {
		data[i] = []string{
			row.Repo,
			fmt.Sprintf("#%d", row.Number),
			Hyperlink(row.URL, row.Title),
			row.Branch,
			row.CIStatus,
			row.ReviewStatus,
			TimeAgo(row.UpdatedAt),
		}
	}

	style := func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		switch col {
		case 1:
			if rows[row].Draft {
				return mutedStyle
			}
			return numberStyle
		case 3:
			return branchStyle
		case 6:
			return updatedStyle
		default:
			return cellStyle
		}
	}

	return renderTable("Open PRs", []string{"Repo", "Number", "Title", "Branch", "CI", "Review", "Updated"}, data, style)
}

// RenderAssigned formats the assigned table. Rows that are blocked or
// already have a closing PR render dimmed.
func RenderAssigned(rows []types.AssignedRow) string {
	data := make([][]string, len(rows))
	for i, row := range rows {
		ref := ""
		if row.ClosingPR != nil {
			ref = Hyperlink(row.ClosingPR.URL, fmt.Sprintf("#%d", row.ClosingPR.Number))
		}

		data[i] = []string{
			row.Repo,
			fmt.Sprintf("#%d", row.Number),
			Hyperlink(row.URL, row.Title),
			ref,
			TimeAgo(row.UpdatedAt),
		}
	}

	style := func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if rows[row].Dim {
			return dimStyle
		}
		switch col {
		case 1:
			return numberStyle
		case 3:
			return refStyle
		case 4:
			return updatedStyle
		default:
			return cellStyle
		}
	}

	return renderTable("Assigned PRs and issues", []string{"Repo", "Number", "Title", "Ref", "Updated"}, data, style)
}

func renderTable(title string, headers []string, rows [][]string, style table.StyleFunc) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(true).
		StyleFunc(style).
		Headers(headers...).
		Rows(rows...)

	return titleStyle.Render(title) + "\n" + t.Render() + "\n"
}

// Hyperlink wraps text in an OSC 8 escape so terminals render it as a
// clickable link.
func Hyperlink(url, text string) string {
	if url == "" {
		return text
	}

	return termenv.Hyperlink(url, text)
}

// TimeAgo renders an RFC 3339 timestamp as a relative time, e.g.
// "2 days ago". Unparseable input is passed through untouched.
func TimeAgo(stamp string) string {
	t, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return stamp
	}

	return humanize.Time(t)
}
