package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://job-boards.greenhouse.io/doordashusa/jobs/7063751", PlatformGreenhouse},
		{"https://boards.greenhouse.io/company/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/company/job-id", PlatformLever},
		{"https://company.wd5.myworkdayjobs.com/en-US/External", PlatformWorkday},
		{"https://workday.com:443/jobs", PlatformWorkday},
		{"https://jobs.ashbyhq.com/acme/123", PlatformAshby},
		{"https://notgreenhouse.io.example.com/jobs", PlatformUnknown},
		{"https://example.com/careers", PlatformUnknown},
		{"://bad url", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestPlatformContentSelectors(t *testing.T) {
	assert.Equal(t, ".job__description.body", PlatformContentSelectors(PlatformGreenhouse)[0])
	assert.Contains(t, PlatformContentSelectors(PlatformLever), ".posting-description")
	assert.Contains(t, PlatformContentSelectors(PlatformWorkday), "[data-automation-id='jobDescription']")
	assert.Contains(t, PlatformContentSelectors(PlatformUnknown), ".job-description")
}

func TestPlatformNoiseSelectors(t *testing.T) {
	common := PlatformNoiseSelectors(PlatformUnknown)
	assert.Contains(t, common, "form")
	assert.Contains(t, common, ".eeo-statement")

	for _, p := range []Platform{PlatformGreenhouse, PlatformLever, PlatformWorkday, PlatformAshby} {
		got := PlatformNoiseSelectors(p)
		assert.Greater(t, len(got), len(common), string(p))
		assert.Subset(t, got, common, string(p))
	}
}
