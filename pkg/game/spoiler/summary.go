package spoiler

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/gookit/color"

	"ravio/pkg/engine/terminal"
	"ravio/pkg/game/generate"
	"ravio/pkg/game/text"
)

var (
	styleTitle  = color.Style{color.FgMagenta, color.OpBold}
	styleHash   = color.Style{color.FgYellow, color.OpBold}
	styleLabel  = color.Style{color.FgBlue}
	styleSphere = color.Style{color.FgGreen, color.OpBold}
	styleItem   = color.Style{color.FgCyan}
	styleSubtle = color.Style{color.FgGray}
)

const ruleChar = "─"

// Printer writes the console summary. Colour is only used on a terminal.
type Printer struct {
	w      io.Writer
	width  int
	styled bool
}

// NewPrinter sizes and styles output for w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:      w,
		width:  terminal.Width(w),
		styled: terminal.IsTerminal(w),
	}
}

func (p *Printer) paint(s color.Style, msg string) string {
	if !p.styled {
		return msg
	}
	return s.Sprint(msg)
}

func (p *Printer) line(s string) {
	fmt.Fprintln(p.w, s)
}

func (p *Printer) rule() {
	p.line(p.paint(styleSubtle, strings.Repeat(ruleChar, p.width)))
}

// Summary prints the seed header and, when playthrough is set, the spheres
// one line per item.
func (p *Printer) Summary(seed *generate.Seed, playthrough bool) {
	p.rule()
	p.line(p.paint(styleTitle, text.Format(text.SummaryTitle, []any{generate.Version})))
	p.line(text.Format(text.SeedGenerated, []any{seed.Seed, seed.Attempts}))
	p.line(p.paint(styleHash, text.Format(text.SeedHash, []any{seed.Hash})))
	p.line(p.paint(styleLabel, text.Format(text.SummaryPreset, []any{seed.Settings.Preset})))

	trials := seed.Trials.String()
	if len(seed.Trials.Trials()) == 0 {
		trials = text.Get(text.TrialsNone)
	}
	p.line(p.paint(styleLabel, text.Format(text.SummaryTrials, []any{trials})))
	p.line(text.Format(text.SummaryPlaythrough, []any{len(seed.Playthrough), seed.Playthrough.Len()}))

	if playthrough {
		for i, sphere := range seed.Playthrough {
			p.line(p.paint(styleSphere, text.Format(text.SummarySphere, []any{i})))
			for _, pl := range sphere {
				p.line(p.fit("  "+pl.Check.DisplayName(), pl.Item.String()))
			}
		}
	}
	p.rule()
}

// fit right-aligns item after check within the printer's width, cutting the
// check name short if the two do not fit.
func (p *Printer) fit(check, item string) string {
	room := p.width - len(item) - 1
	if room < 4 {
		return check + " " + p.paint(styleItem, item)
	}
	if utf8.RuneCountInString(check) > room {
		check = string([]rune(check)[:room-1]) + "…"
	}
	pad := max(p.width-utf8.RuneCountInString(check)-len(item), 1)
	return check + strings.Repeat(" ", pad) + p.paint(styleItem, item)
}
