package resume

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// phonePatterns are tried in order; the first hit wins
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),
	regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.]?\d{4}`),
	regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{1,14}`),
}

var locationLabel = regexp.MustCompile(`(?im)^\s*(?:location|address|city|based in)\s*:\s*(.+?)\s*$`)

// extractPersonalInfo pulls the first email, phone and labelled location from text
func extractPersonalInfo(text string) types.PersonalInfo {
	info := types.PersonalInfo{}
	info.Email = emailPattern.FindString(text)
	for _, re := range phonePatterns {
		if m := re.FindString(text); m != "" {
			info.Phone = strings.TrimSpace(m)
			break
		}
	}
	if m := locationLabel.FindStringSubmatch(text); m != nil {
		info.Location = m[1]
	}
	return info
}
