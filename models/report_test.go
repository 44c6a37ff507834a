package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReportStatus(t *testing.T) {
	for _, valid := range []string{"pending", "resolved", "rejected"} {
		status, ok := ParseReportStatus(valid)
		assert.True(t, ok)
		assert.Equal(t, ReportStatus(valid), status)
	}

	for _, invalid := range []string{"", "Pending", "closed", "spam"} {
		_, ok := ParseReportStatus(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestReportStatusTerminal(t *testing.T) {
	assert.False(t, ReportPending.Terminal())
	assert.True(t, ReportResolved.Terminal())
	assert.True(t, ReportRejected.Terminal())
}
