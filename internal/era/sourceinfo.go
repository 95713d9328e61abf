// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package era

import "github.com/pdiddy/chronicle/pkg/types"

// SourceInfoFor describes the upstream sources serving a year. It depends
// only on the year bucket, never on fetched content.
func SourceInfoFor(year int) types.SourceInfo {
	switch NewsEraFor(year) {
	case NewsHistoric:
		return types.SourceInfo{
			Name:        "Trove & Library of Congress",
			Description: "Historical Australian and American newspapers from 1803-1963",
			URL:         "https://trove.nla.gov.au/ & https://chroniclingamerica.loc.gov/",
		}
	case NewsModern:
		return types.SourceInfo{
			Name:        "The Guardian",
			Description: "International news from 1999 onwards",
			URL:         "https://www.theguardian.com/",
		}
	default:
		return types.SourceInfo{
			Name:        "Mixed Sources",
			Description: "Combined historical and recent news sources",
		}
	}
}
