// Package accounts provides the chart-of-accounts and journal-code
// lookups consumed by reporting and the FEC export.
package accounts

import (
	"fmt"
	"sort"
)

// OpeningJournal is the journal code of the opening (A-Nouveaux) entry.
const OpeningJournal = "AN"

// Service provides in-memory lookups over the chart of accounts and the
// journal-code table. Unknown codes resolve to a generated default
// label rather than an error.
type Service struct {
	chart    map[string]string
	journals map[string]string
}

// NewService creates a Service over the default LMNP chart.
func NewService() *Service {
	return &Service{chart: defaultChart, journals: defaultJournals}
}

// Label returns the label of an account code, or "Compte <code>" when
// the code is not in the chart.
func (s *Service) Label(code string) string {
	if lib, ok := s.chart[code]; ok {
		return lib
	}
	return fmt.Sprintf("Compte %s", code)
}

// Exists reports whether an account code is in the chart.
func (s *Service) Exists(code string) bool {
	_, ok := s.chart[code]
	return ok
}

// JournalLabel returns the label of a journal code, or
// "Journal <code>" when unknown.
func (s *Service) JournalLabel(code string) string {
	if lib, ok := s.journals[code]; ok {
		return lib
	}
	return fmt.Sprintf("Journal %s", code)
}

// JournalCodes returns the known journal codes, sorted.
func (s *Service) JournalCodes() []string {
	codes := make([]string, 0, len(s.journals))
	for c := range s.journals {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Codes returns the known account codes, sorted.
func (s *Service) Codes() []string {
	codes := make([]string, 0, len(s.chart))
	for c := range s.chart {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}
