package detection

import (
	"regexp"
	"strings"

	"github.com/jrhoades1/job-application-system/internal/types"
)

var (
	remoteRe = regexp.MustCompile(`\b(?:fully remote|100% remote|remote[- ]first|work from (?:home|anywhere))\b`)
	hybridRe = regexp.MustCompile(`\bhybrid\b`)
	onsiteRe = regexp.MustCompile(`\b(?:on[- ]?site|in[- ]?office|in[- ]?person)\b`)

	// locationLabelRe captures free text after a location label, up to the
	// next sentence boundary.
	locationLabelRe = regexp.MustCompile(`(?i)(?:location|based in|located in)[:\s]+([^\n.]{3,50})`)
)

// DetectLocationMatch classifies a posting's remote status and checks it
// against the user's preferred location. When the preference mentions
// "remote", ambiguous postings get the benefit of the doubt; otherwise
// matching is permissive since geographic matching is unreliable.
func DetectLocationMatch(description string, prefs types.UserPreferences) types.LocationResult {
	if description == "" {
		return types.LocationResult{Match: true, Location: "Unknown", RemoteStatus: types.RemoteStatusUnknown}
	}

	lower := strings.ToLower(description)

	var status types.RemoteStatus
	switch {
	case remoteRe.MatchString(lower):
		status = types.RemoteStatusRemote
	case hybridRe.MatchString(lower):
		status = types.RemoteStatusHybrid
	case onsiteRe.MatchString(lower):
		status = types.RemoteStatusOnsite
	default:
		status = types.RemoteStatusUnknown
	}

	match := true
	if strings.Contains(strings.ToLower(prefs.Location), "remote") {
		match = status == types.RemoteStatusRemote || status == types.RemoteStatusUnknown
	}

	location := ""
	if m := locationLabelRe.FindStringSubmatch(description); m != nil {
		location = strings.TrimSpace(m[1])
	}

	return types.LocationResult{Match: match, Location: location, RemoteStatus: status}
}
