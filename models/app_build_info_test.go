package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", " ", "abc123")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
}

func TestAppBuildInfo_ZeroValue(t *testing.T) {
	var info AppBuildInfo

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}

func TestBillingCycle(t *testing.T) {
	assert.True(t, BillingMonthly.Valid())
	assert.True(t, BillingAnnual.Valid())
	assert.False(t, BillingCycle("weekly").Valid())

	assert.Equal(t, BillingAnnual, BillingMonthly.Toggle())
	assert.Equal(t, BillingMonthly, BillingAnnual.Toggle())
}

func TestPlan_Free(t *testing.T) {
	assert.True(t, Plan{ID: "free"}.Free())
	assert.False(t, Plan{ID: "pro", MonthlyPrice: 19, AnnualPrice: 190}.Free())
	assert.False(t, Plan{ID: "enterprise", Custom: true}.Free())
}
