// Command cite parses scripture citations and inserts the cited text as
// Markdown callouts. It also serves the same operations over HTTP.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/JuniperCite/core/books"
	"github.com/FocuswithJustin/JuniperCite/core/errors"
	"github.com/FocuswithJustin/JuniperCite/core/ref"
	"github.com/FocuswithJustin/JuniperCite/core/spans"
	"github.com/FocuswithJustin/JuniperCite/core/sqlite"
	"github.com/FocuswithJustin/JuniperCite/core/verses"
	"github.com/FocuswithJustin/JuniperCite/internal/api"
	"github.com/FocuswithJustin/JuniperCite/internal/logging"
	"github.com/FocuswithJustin/JuniperCite/internal/render"
	"github.com/FocuswithJustin/JuniperCite/internal/resolve"
	"github.com/FocuswithJustin/JuniperCite/internal/sources/markdown"
	"github.com/FocuswithJustin/JuniperCite/internal/sources/osis"
	sqlitesource "github.com/FocuswithJustin/JuniperCite/internal/sources/sqlite"
)

const version = "0.1.0"

// Globals are the settings shared by every command. They can also be set
// from a JSON config file (keys use underscores, e.g. "sqlite_path") and
// from JUNIPER_CITE_* environment variables.
type Globals struct {
	Config kong.ConfigFlag `help:"Load settings from a JSON file."`

	Source       string `help:"Verse source (${enum})." enum:"sqlite,markdown,osis" default:"sqlite"`
	SqlitePath   string `name:"sqlite-path" help:"SQLite database with a verse table." type:"path"`
	MarkdownRoot string `name:"markdown-root" help:"Directory of Markdown chapter files." default:"Bibeln"`
	OsisPath     string `name:"osis-path" help:"OSIS XML document (.xml or .xml.xz)." type:"path"`

	Callout      string `help:"Callout type written before the heading." default:"[!bible]+"`
	VerseNumbers bool   `name:"verse-numbers" help:"Prefix verses with ^n." default:"true" negatable:""`
	LinePerVerse bool   `name:"line-per-verse" help:"Put every verse on its own line."`
	Translation  string `help:"Translation name shown in headings." default:"Bibel 2000"`
	Lang         string `help:"Language of labels and messages (${enum})." enum:"sv,en" default:"sv"`

	CacheSize   int           `name:"cache-size" help:"Chapters kept in memory (0 disables)." default:"64"`
	CacheTTL    time.Duration `name:"cache-ttl" help:"Drop cached chapters after this long (0 keeps them)."`
	Concurrency int           `help:"Citations fetched in parallel." default:"4"`

	LogLevel  string `name:"log-level" help:"Log level (${enum})." enum:"debug,info,warn,error" default:"warn"`
	LogFormat string `name:"log-format" help:"Log format (${enum})." enum:"json,text" default:"text"`
	Debug     bool   `help:"Shorthand for --log-level=debug."`

	Out io.Writer `kong:"-"`
	In  io.Reader `kong:"-"`
}

// CLI defines the command-line interface for cite.
type CLI struct {
	Globals

	Parse   ParseCmd   `cmd:"" help:"Parse citations and print the structured result"`
	Lookup  LookupCmd  `cmd:"" help:"Resolve a book name or abbreviation"`
	Books   BooksCmd   `cmd:"" help:"List the books of the registry"`
	Merge   MergeCmd   `cmd:"" help:"Print the merged verse ranges of each citation"`
	Insert  InsertCmd  `cmd:"" help:"Render citations as Markdown callouts"`
	Serve   ServeCmd   `cmd:"" help:"Start the HTTP API server"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

func (g *Globals) lang() books.Lang {
	l, err := books.ParseLang(g.Lang)
	if err != nil {
		return books.Swedish
	}
	return l
}

func (g *Globals) initLogging() error {
	level, err := logging.ParseLevel(g.LogLevel)
	if err != nil {
		return errors.Wrap(err, "log-level")
	}
	if g.Debug {
		level = logging.LevelDebug
	}
	format, err := logging.ParseFormat(g.LogFormat)
	if err != nil {
		return errors.Wrap(err, "log-format")
	}
	logging.InitLogger(level, format)
	return nil
}

// CheckSource reports a ValidationError when the selected source has no
// path configured.
func (g *Globals) CheckSource() error {
	switch g.Source {
	case "sqlite":
		if g.SqlitePath == "" {
			return errors.NewValidation("sqlite-path", "required when --source=sqlite")
		}
	case "markdown":
		if g.MarkdownRoot == "" {
			return errors.NewValidation("markdown-root", "required when --source=markdown")
		}
	case "osis":
		if g.OsisPath == "" {
			return errors.NewValidation("osis-path", "required when --source=osis")
		}
	default:
		return errors.NewValidation("source", fmt.Sprintf("unknown source %q", g.Source))
	}
	return nil
}

// openSource opens the configured verse source. The returned function
// releases it.
func (g *Globals) openSource() (verses.Source, func() error, error) {
	if err := g.CheckSource(); err != nil {
		return nil, nil, err
	}
	var (
		src    verses.Source
		closer = func() error { return nil }
	)
	switch g.Source {
	case "sqlite":
		s, err := sqlitesource.Open(g.SqlitePath)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "open %s source", g.Source)
		}
		src, closer = s, s.Close
		logging.Debug("using sqlite source", "path", g.SqlitePath, "driver", sqlite.DriverName())
	case "markdown":
		s, err := markdown.Open(g.MarkdownRoot)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "open %s source", g.Source)
		}
		src = s
	case "osis":
		s, err := osis.Open(g.OsisPath)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "open %s source", g.Source)
		}
		src = s
	}
	if g.CacheSize > 0 {
		src = verses.NewCached(src, verses.CacheConfig{Size: g.CacheSize, TTL: g.CacheTTL})
	}
	return src, closer, nil
}

func (g *Globals) resolver(src verses.Source) *resolve.Resolver {
	return resolve.New(nil, src,
		resolve.WithConcurrency(g.Concurrency),
		resolve.WithSourceName(g.Source))
}

func (g *Globals) renderOptions() render.Options {
	return render.Options{
		Callout:          g.Callout,
		ShowVerseNumbers: g.VerseNumbers,
		LinePerVerse:     g.LinePerVerse,
		Translation:      g.Translation,
		Lang:             g.lang(),
	}
}

// input joins the positional arguments, or reads standard input when
// there are none or the only argument is "-".
func (g *Globals) input(args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(g.In)
	if err != nil {
		return "", errors.NewIO("read", "stdin", err)
	}
	return string(data), nil
}

func (g *Globals) printJSON(v any) error {
	enc := json.NewEncoder(g.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ParseCmd parses citations without reading verse text.
type ParseCmd struct {
	Input []string `arg:"" optional:"" help:"Citations separated by ';' (stdin when omitted)"`
	JSON  bool     `name:"json" help:"Print JSON"`
}

type parseLine struct {
	Citation string            `json:"citation"`
	Ref      *ref.Reference    `json:"ref,omitempty"`
	Failure  *ref.ParseFailure `json:"failure,omitempty"`
}

func (c *ParseCmd) Run(g *Globals) error {
	in, err := g.input(c.Input)
	if err != nil {
		return err
	}
	outcomes := ref.NewParser(nil).ParseList(in)

	if c.JSON {
		lines := make([]parseLine, len(outcomes))
		for i, o := range outcomes {
			line := parseLine{Citation: o.Citation, Ref: o.Ref}
			var pf *ref.ParseFailure
			if errors.As(o.Err, &pf) {
				line.Failure = pf
			}
			lines[i] = line
		}
		return g.printJSON(lines)
	}

	tw := tabwriter.NewWriter(g.Out, 0, 4, 2, ' ', 0)
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(tw, "%s\t%s\n", o.Citation, describe(o.Err))
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", o.Citation, o.Ref.Label(g.lang()), o.Ref.Book.OSIS())
	}
	return tw.Flush()
}

func describe(err error) string {
	var pf *ref.ParseFailure
	if errors.As(err, &pf) {
		return "error: " + pf.Kind.String() + ": " + pf.Reason
	}
	return "error: " + err.Error()
}

// LookupCmd resolves one book name.
type LookupCmd struct {
	Name []string `arg:"" help:"Book name or abbreviation"`
}

func (c *LookupCmd) Run(g *Globals) error {
	name := strings.Join(c.Name, " ")
	b, ok := books.Default().Lookup(name)
	if !ok {
		return errors.NewNotFound("book", name)
	}
	fmt.Fprintf(g.Out, "%s\t%s\t%s\t%s\n", b.OSIS(), b.EnglishName, b.SwedishName, b.SwedishAbbr)
	return nil
}

// BooksCmd lists the registry.
type BooksCmd struct {
	JSON bool `name:"json" help:"Print JSON"`
}

func (c *BooksCmd) Run(g *Globals) error {
	list := books.Default().Books()
	if c.JSON {
		return g.printJSON(list)
	}
	tw := tabwriter.NewWriter(g.Out, 0, 4, 2, ' ', 0)
	l := g.lang()
	for _, b := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", b.OSIS(), b.Name(l), b.Abbr(l))
	}
	return tw.Flush()
}

// MergeCmd prints merged verse ranges.
type MergeCmd struct {
	Input []string `arg:"" optional:"" help:"Citations separated by ';' (stdin when omitted)"`
}

func (c *MergeCmd) Run(g *Globals) error {
	in, err := g.input(c.Input)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(g.Out, 0, 4, 2, ' ', 0)
	for _, o := range ref.NewParser(nil).ParseList(in) {
		if o.Err != nil {
			fmt.Fprintf(tw, "%s\t%s\n", o.Citation, describe(o.Err))
			continue
		}
		fmt.Fprintf(tw, "%s\t%s %d\t%s\n", o.Citation, o.Ref.Book.OSIS(), o.Ref.Chapter(), spans.MergeReference(o.Ref))
	}
	return tw.Flush()
}

// InsertCmd resolves citations against the configured source and prints
// the Markdown callouts.
type InsertCmd struct {
	Input []string `arg:"" optional:"" help:"Citations separated by ';' (stdin when omitted)"`
}

func (c *InsertCmd) Run(ctx context.Context, g *Globals) error {
	in, err := g.input(c.Input)
	if err != nil {
		return err
	}
	if len(ref.SplitList(in)) == 0 {
		return errors.NewValidation("input", "no references")
	}
	src, closeSrc, err := g.openSource()
	if err != nil {
		return err
	}
	defer closeSrc()

	results := g.resolver(src).Resolve(ctx, in)
	if err := g.renderOptions().Write(g.Out, results); err != nil {
		return err
	}
	_, err = fmt.Fprintln(g.Out)
	return err
}

// ServeCmd runs the HTTP API.
type ServeCmd struct {
	Port           int      `help:"HTTP server port" default:"8081"`
	AllowedOrigins []string `name:"allowed-origins" help:"CORS origins (empty allows all)"`
	APIKey         string   `name:"api-key" help:"Require this X-API-Key on requests" env:"JUNIPER_CITE_API_KEY"`
	RateLimit      int      `name:"rate-limit" help:"Requests per minute per client (0 disables)"`
	RateBurst      int      `name:"rate-burst" help:"Rate limit burst size" default:"10"`
}

func (c *ServeCmd) Run(ctx context.Context, g *Globals) error {
	src, closeSrc, err := g.openSource()
	if err != nil {
		return err
	}
	defer closeSrc()

	srv, err := api.New(api.Config{
		Port:              c.Port,
		AllowedOrigins:    c.AllowedOrigins,
		RateLimitRequests: c.RateLimit,
		RateLimitBurst:    c.RateBurst,
		Auth:              api.AuthConfig{Enabled: c.APIKey != "", APIKey: c.APIKey},
		Version:           version,
		SourceName:        g.Source,
	}, g.resolver(src), g.renderOptions())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Start(ctx)
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run(g *Globals) error {
	info := sqlite.GetInfo()
	fmt.Fprintf(g.Out, "cite version %s (sqlite driver: %s, %s)\n", version, info.DriverType, info.Package)
	return nil
}

func newParser(cli *CLI, stdout, stderr io.Writer, exit func(int)) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("cite"),
		kong.Description("Scripture citation parser and Markdown inserter"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Configuration(kong.JSON, "~/.config/juniper-cite/config.json"),
		kong.DefaultEnvars("JUNIPER_CITE"),
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
		kong.Bind(&cli.Globals),
	)
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cli := &CLI{}
	cli.Out, cli.In = stdout, stdin

	code := -1
	parser, err := newParser(cli, stdout, stderr, func(c int) { code = c })
	if err != nil {
		fmt.Fprintln(stderr, "cite:", err)
		return 2
	}
	kctx, err := parser.Parse(args)
	if code >= 0 {
		return code
	}
	if err != nil {
		parser.Errorf("%s", err)
		return 2
	}
	if err := cli.initLogging(); err != nil {
		parser.Errorf("%s", err)
		return 2
	}
	kctx.BindTo(ctx, (*context.Context)(nil))
	if err := kctx.Run(); err != nil {
		parser.Errorf("%s", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
