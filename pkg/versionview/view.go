package versionview

import (
	"fmt"
	"io"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MacroPower/appversion/pkg/appversion"
	"github.com/MacroPower/appversion/pkg/credits"
)

const (
	// DefaultTitle is printed in the header block.
	DefaultTitle = "Version info is provided by appversion"

	borderWidth = 65
	labelWidth  = 16
)

// View renders a [appversion.Descriptor] as a human readable report.
type View struct {
	styles Styles
	title  string
}

// Option configures a [View].
type Option func(*View)

// WithStyles sets the styles used for rendering.
func WithStyles(s Styles) Option {
	return func(v *View) {
		v.styles = s
	}
}

// WithColorProfile renders with the default styles for p.
func WithColorProfile(p termenv.Profile) Option {
	return func(v *View) {
		v.styles = NewStyles(p)
	}
}

// WithTitle replaces the header title. An empty title omits the header.
func WithTitle(title string) Option {
	return func(v *View) {
		v.title = title
	}
}

// New creates a [View]. Without options it renders plain text.
func New(opts ...Option) *View {
	v := &View{
		styles: PlainStyles(),
		title:  DefaultTitle,
	}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Render writes the report for d to w.
func (v *View) Render(w io.Writer, d *appversion.Descriptor) error {
	_, err := io.WriteString(w, v.String(d))
	if err != nil {
		return fmt.Errorf("render version info: %w", err)
	}

	return nil
}

// String returns the report for d.
func (v *View) String(d *appversion.Descriptor) string {
	var b strings.Builder

	if v.title != "" {
		b.WriteString(v.border() + "\n")
		b.WriteString(v.styles.Header.Render("    "+v.title) + "\n")
		b.WriteString(v.border() + "\n")
	}

	b.WriteString("\n")
	b.WriteString(v.line("environment", v.styles.Value.Render(d.Environment())))
	b.WriteString(v.line("version",
		v.styles.Important.Render(d.VersionString("%major%.%minor%.%patch%%pre-release%"))+
			v.styles.Additional.Render(d.VersionString("%build%")),
	))

	for _, f := range appversion.Fields() {
		val := f.Value(d)
		if val == "" {
			continue
		}

		b.WriteString(v.line(f.Name, v.styles.Value.Render(val)))
	}

	if c := d.Commit(); c != "" {
		b.WriteString(v.line("commit", v.styles.Value.Render(c)))
	}

	if c := d.Credits(); c.Len() > 0 {
		b.WriteString("\n" + v.border() + "\n\n")
		b.WriteString(v.styles.Label.Render(" "+Label("credits")+":") + "\n\n")
		b.WriteString(CreditsTable(c) + "\n")
	}

	return b.String()
}

func (v *View) border() string {
	return v.styles.Border.Render(strings.Repeat("-", borderWidth))
}

func (v *View) line(name, value string) string {
	label := fmt.Sprintf("%*s:  ", labelWidth, Label(name))

	return v.styles.Label.Render(label) + value + "\n"
}

// Label converts a field name such as "deployTimestamp" to its display form
// "DeployTimestamp".
func Label(name string) string {
	return cases.Title(language.English, cases.NoLower).String(strcase.ToLowerCamel(name))
}

// CreditsTable renders the credits as a two column table.
func CreditsTable(c *credits.Credits) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Author", "Email"})

	for _, e := range c.Entries() {
		t.AppendRow(table.Row{e.Name, e.Email})
	}

	t.SetStyle(table.StyleLight)

	return t.Render()
}
