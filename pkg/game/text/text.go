// Package text holds the user-facing strings of the command line and the
// console summary.
package text

import (
	_ "embed"
	"sync"

	"github.com/leonelquinteros/gotext"
)

// Message keys.
const (
	SeedGenerated      = "SEED_GENERATED"
	SeedHash           = "SEED_HASH"
	SpoilerWritten     = "SPOILER_WRITTEN"
	PatchWritten       = "PATCH_WRITTEN"
	MetricsWritten     = "METRICS_WRITTEN"
	SummaryTitle       = "SUMMARY_TITLE"
	SummaryPreset      = "SUMMARY_PRESET"
	SummaryTrials      = "SUMMARY_TRIALS"
	SummaryPlaythrough = "SUMMARY_PLAYTHROUGH"
	SummarySphere      = "SUMMARY_SPHERE"
	TrialsNone         = "TRIALS_NONE"
	ErrFatal           = "ERR_FATAL"
	ErrConfiguration   = "ERR_CONFIGURATION"
)

//go:embed en.po
var en []byte

var catalog = sync.OnceValue(func() *gotext.Po {
	po := gotext.NewPo()
	po.Parse(en)
	return po
})

// Get returns the message for key. Unknown keys come back as the key itself.
func Get(key string) string {
	return Format(key, nil)
}

// Format returns the message for key with args substituted into its verbs.
func Format(key string, args []any) string {
	return catalog().Get(key, args...)
}
