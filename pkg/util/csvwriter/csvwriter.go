package csvwriter

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/ffalor/standup/pkg/util/types"
)

type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// Write dumps all three report sections into one csv file, for piping
// into whatever tracker wants them.
func (w *Writer) Write(path string, notifications []types.NotificationRow, openPRs []types.OpenPRRow, assigned []types.AssignedRow) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{"section", "repo", "number", "title", "url", "status", "updated"})

	for _, n := range notifications {
		writer.Write([]string{"notification", n.Repo, "", n.Title, n.URL, n.Reason, n.UpdatedAt})
	}

	for _, pr := range openPRs {
		status := strings.TrimSpace(pr.CIStatus + " " + pr.ReviewStatus)
		writer.Write([]string{"open_pr", pr.Repo, fmt.Sprintf("#%d", pr.Number), pr.Title, pr.URL, status, pr.UpdatedAt})
	}

	for _, row := range assigned {
		var status string
		if row.Blocked {
			status = "blocked"
		}
		if row.ClosingPR != nil {
			status = fmt.Sprintf("closed by #%d", row.ClosingPR.Number)
		}
		writer.Write([]string{"assigned", row.Repo, fmt.Sprintf("#%d", row.Number), row.Title, row.URL, status, row.UpdatedAt})
	}

	return writer.Error()
}
