// Package locale holds the user-facing message catalogs.
package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/verte-zerg/tuitap/internal/tap"
)

// Messages is one catalog. Fields ending in Fmt are fmt format strings.
type Messages struct {
	Code string

	AppTitle    string
	IntroFmt    string // %d: attempts per session
	IntroHow    string
	StartFmt    string // %d: attempts per session
	PracticeFmt string // %d, %d: current attempt, attempts per session
	Instruction string
	Target      string
	Reset       string
	Wait        string

	Success           string
	OffTarget         string
	MultiFinger       string
	ExcessiveMovement string
	ExcessiveDuration string

	OffTargetLabel   string
	MultiFingerLabel string
	MovementLabel    string
	DurationLabel    string

	ResultTitle  string
	ResultFmt    string // %d: attempts per session
	StatsTitle   string
	SuccessLabel string
	FailLabel    string
	TimesFmt     string // %d: count
	BreakdownFmt string // %s: outcome label
	Restart      string
	Note         string

	HelpStart string
	HelpBack  string
	HelpQuit  string
}

// Feedback returns the message shown for an outcome.
func (m Messages) Feedback(o tap.Outcome) string {
	switch o {
	case tap.OutcomeSuccess:
		return m.Success
	case tap.OutcomeOffTarget:
		return m.OffTarget
	case tap.OutcomeMultiFinger:
		return m.MultiFinger
	case tap.OutcomeExcessiveMovement:
		return m.ExcessiveMovement
	case tap.OutcomeExcessiveDuration:
		return m.ExcessiveDuration
	default:
		return ""
	}
}

// Label returns the short result-table label for a failed outcome.
func (m Messages) Label(o tap.Outcome) string {
	switch o {
	case tap.OutcomeOffTarget:
		return m.OffTargetLabel
	case tap.OutcomeMultiFinger:
		return m.MultiFingerLabel
	case tap.OutcomeExcessiveMovement:
		return m.MovementLabel
	case tap.OutcomeExcessiveDuration:
		return m.DurationLabel
	default:
		return o.String()
	}
}

var (
	supported = []language.Tag{language.English, language.Japanese}
	matcher   = language.NewMatcher(supported)
	catalogs  = map[language.Tag]Messages{
		language.English:  english,
		language.Japanese: japanese,
	}
)

// Supported lists the catalog codes.
func Supported() []string {
	out := make([]string, 0, len(supported))
	for _, tag := range supported {
		out = append(out, tag.String())
	}
	return out
}

// Select returns the catalog closest to pref. pref accepts BCP 47 tags and
// POSIX locale names such as ja_JP.UTF-8. An empty pref consults the
// environment; no match yields English.
func Select(pref string) Messages {
	if strings.TrimSpace(pref) == "" {
		pref = envLocale()
	}
	_, idx := language.MatchStrings(matcher, normalize(pref))
	if idx < 0 || idx >= len(supported) {
		idx = 0
	}
	return catalogs[supported[idx]]
}

func envLocale() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

// normalize strips POSIX codeset and modifier suffixes.
func normalize(pref string) string {
	pref = strings.TrimSpace(pref)
	if i := strings.IndexAny(pref, ".@"); i >= 0 {
		pref = pref[:i]
	}
	if pref == "C" || pref == "POSIX" {
		return "en"
	}
	return strings.ReplaceAll(pref, "_", "-")
}
