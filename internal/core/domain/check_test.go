package domain_test

import (
	"testing"

	"github.com/featvet/featvet/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

func TestCheckOutcome_Failed(t *testing.T) {
	ok := domain.CheckOutcome{Combination: domain.Combination{"a"}}
	assert.False(t, ok.Failed())

	bad := domain.CheckOutcome{
		Combination: domain.Combination{"a"},
		Err:         zerr.New("exit status 101"),
		Diagnostics: "error[E0432]: unresolved import",
	}
	assert.True(t, bad.Failed())
}

func TestReport_Passed(t *testing.T) {
	assert.True(t, domain.Report{Total: 3}.Passed())
	assert.False(t, domain.Report{
		Total:    3,
		Failures: []domain.CheckFailure{{Combination: domain.Combination{"a"}}},
	}.Passed())
}

func TestReport_SortedFailures(t *testing.T) {
	report := domain.Report{
		Total: 3,
		Failures: []domain.CheckFailure{
			{Combination: domain.Combination{"zlib"}, Diagnostics: "z"},
			{Combination: domain.Combination{"async", "mmap"}, Diagnostics: "am"},
			{Combination: domain.Combination{"mmap"}, Diagnostics: "m"},
		},
	}

	sorted := report.SortedFailures()

	assert.Equal(t, "async mmap", sorted[0].Combination.Key())
	assert.Equal(t, "mmap", sorted[1].Combination.Key())
	assert.Equal(t, "zlib", sorted[2].Combination.Key())

	// The report itself keeps its append order.
	assert.Equal(t, "zlib", report.Failures[0].Combination.Key())
}
