package resume

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

const notSpecified = "Not specified"

// experienceLookahead bounds the header block (title, company, dates) of one entry.
const (
	experienceLookahead  = 3
	maxDescriptionLines  = 10
	keptDescriptionLines = 3
)

var jobTitleKeywords = []string{
	"engineer", "developer", "manager", "analyst", "scientist", "designer",
	"consultant", "specialist", "coordinator", "director", "assistant",
	"officer", "lead", "senior", "junior", "associate", "administrator",
	"technician", "supervisor", "executive", "architect", "researcher",
	"professor", "teacher", "instructor", "doctor", "nurse", "accountant",
	"programmer", "tester", "qa", "devops", "sre", "intern", "trainee",
}

var (
	jobTitlePatterns = compileWholeWords(jobTitleKeywords)

	dateRangePattern = regexp.MustCompile(`(?i)\b(?:19|20)\d{2}\b.*?(?:[-–—|]|\bto\b)\s*(?:\b(?:19|20)\d{2}\b|present|current)`)

	companyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:inc\.?|ltd\.?|llc|corp\.?|corporation|company|co\.?|gmbh|pvt\.?|limited)\b`),
		regexp.MustCompile(`(?i)\b(?:technologies|systems|solutions|services|consulting|group)\b`),
	}
)

// dateRange is the parsed start and end year of an employment period
type dateRange struct {
	start *int
	end   *int
}

func hasTitleKeyword(line string) bool {
	return anyWholeWord(jobTitlePatterns, line)
}

func isBullet(line string) bool {
	return strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "*") || strings.HasPrefix(line, "–")
}

// parseDateRange reads the first date range in line. An open end ("present", "current")
// resolves to currentYear.
func parseDateRange(line string, currentYear int) (dateRange, bool) {
	m := dateRangePattern.FindString(line)
	if m == "" {
		return dateRange{}, false
	}

	var dr dateRange
	years := yearPattern.FindAllString(m, -1)
	if len(years) > 0 {
		if y, err := strconv.Atoi(years[0]); err == nil {
			dr.start = types.IntPtr(y)
		}
	}

	lower := strings.ToLower(m)
	if strings.Contains(lower, "present") || strings.Contains(lower, "current") {
		dr.end = types.IntPtr(currentYear)
	} else if len(years) > 0 {
		if y, err := strconv.Atoi(years[len(years)-1]); err == nil {
			dr.end = types.IntPtr(y)
		}
	}
	return dr, true
}

func findCompany(lines []string, orgs []string) string {
	for _, line := range lines {
		for _, re := range companyPatterns {
			if re.MatchString(line) {
				return line
			}
		}
		if org, ok := matchHint(line, orgs); ok {
			return org
		}
	}
	return ""
}

// extractExperience walks the experience section and emits one entry per title line
// or date-range line, consuming its header block and description lines.
func extractExperience(lines []string, orgs []string, currentYear int) []types.ExperienceEntry {
	section := sectionLines(lines, experienceHeaders, experienceNextHeaders)
	entries := make([]types.ExperienceEntry, 0)

	i := 0
	for i < len(section) {
		line := section[i]
		titled := hasTitleKeyword(line)
		dated := dateRangePattern.MatchString(line)
		if !titled && !dated {
			i++
			continue
		}

		headerEnd := min(i+experienceLookahead, len(section))

		var dates dateRange
		for j := i; j < headerEnd; j++ {
			if dr, ok := parseDateRange(section[j], currentYear); ok {
				dates = dr
				break
			}
		}

		company := findCompany(section[i:headerEnd], orgs)
		if company == "" {
			company = notSpecified
		}

		descStart := i + 1
		if !dated {
			for descStart < headerEnd {
				hit := dateRangePattern.MatchString(section[descStart])
				descStart++
				if hit {
					break
				}
			}
		}

		description := make([]string, 0, maxDescriptionLines)
		for j := descStart; j < min(descStart+maxDescriptionLines, len(section)); j++ {
			d := section[j]
			if hasTitleKeyword(d) && !isBullet(d) {
				break
			}
			if dateRangePattern.MatchString(d) {
				break
			}
			description = append(description, d)
		}

		duration := 0
		if dates.start != nil && dates.end != nil {
			duration = max(1, (*dates.end-*dates.start)*12)
		}

		kept := description
		if len(kept) > keptDescriptionLines {
			kept = kept[:keptDescriptionLines]
		}

		entries = append(entries, types.ExperienceEntry{
			Position:       line,
			Company:        company,
			StartYear:      dates.start,
			EndYear:        dates.end,
			Description:    strings.Join(kept, " "),
			DurationMonths: duration,
		})

		i = descStart + len(description)
	}

	return entries
}
