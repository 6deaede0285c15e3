package report

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strings"

	"github.com/ffalor/standup/pkg/util/types"
)

// referrerMagic is the fixed prefix of every notification referrer
// token. The web UI only cares that the token round-trips, so the
// exact bytes matter less than keeping them stable between runs.
var referrerMagic = []byte{0x93, 0x00, 0xce, 0x4e, 0x54, 0x00, 0x00, 0x01}

// Notifications filters the inbox to repositories owned by one of orgs,
// sorts oldest-first, and rewrites each subject URL into a clickable
// web link carrying a referrer token. An empty org set yields no rows.
func Notifications(notifications []types.Notification, orgs []string, viewerID int) []types.NotificationRow {
	sorted := make([]types.Notification, len(notifications))
	copy(sorted, notifications)
	sort.SliceStable(sorted, func(i, j int) bool {
		// ISO-8601 strings sort chronologically as-is.
		return sorted[i].UpdatedAt < sorted[j].UpdatedAt
	})

	allowed := make(map[string]struct{}, len(orgs))
	for _, org := range orgs {
		allowed[org] = struct{}{}
	}

	var rows []types.NotificationRow

	for _, n := range sorted {
		if _, ok := allowed[n.Repository.Owner.Login]; !ok {
			continue
		}

		token := ReferrerToken(n.ID, viewerID)

		rows = append(rows, types.NotificationRow{
			Repo:      n.Repository.Name,
			Title:     n.Subject.Title,
			URL:       WebURL(n.Subject.URL) + "?notification_referrer_id=NT_" + token,
			Type:      n.Subject.Type,
			Reason:    n.Reason,
			Referrer:  token,
			UpdatedAt: n.UpdatedAt,
		})
	}

	return rows
}

// ReferrerToken builds the tracking token GitHub attaches to inbox
// links: unpadded base64 of the magic prefix followed by
// "<notification id>:<viewer id>".
func ReferrerToken(notificationID string, viewerID int) string {
	payload := append([]byte{}, referrerMagic...)
	payload = append(payload, fmt.Sprintf("%s:%d", notificationID, viewerID)...)

	return strings.TrimRight(base64.StdEncoding.EncodeToString(payload), "=")
}

// WebURL rewrites a REST subject URL to its web UI equivalent, e.g.
// https://api.github.com/repos/acme/r/pulls/5 -> https://github.com/acme/r/pull/5.
func WebURL(apiURL string) string {
	url := strings.Replace(apiURL, "api.", "", 1)
	url = strings.Replace(url, "repos/", "", 1)
	url = strings.Replace(url, "/pulls/", "/pull/", 1)

	return url
}
