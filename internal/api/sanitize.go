package api

import "github.com/microcosm-cc/bluemonday"

// ugcPolicy strips anything beyond basic user-generated markup from
// free-text fields before they reach the database.
var ugcPolicy = bluemonday.UGCPolicy()

func sanitizeText(s string) string {
	return ugcPolicy.Sanitize(s)
}
