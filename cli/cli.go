package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/morph/cli/cmd"
	"github.com/ardnew/morph/log"
	"github.com/ardnew/morph/pkg"
)

// CLI is the top-level command-line interface for morph.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Data       []string `help:"Data file(s) merged in order, or '-' for stdin"          name:"data"        short:"d"`
	Set        []string `help:"Assign key=text or key:=expr after loading data files"   name:"set"         short:"D"`
	Path       []string `help:"Directories searched for relative data and template files" name:"path"     short:"I" type:"path"`
	DateFormat string   `help:"Format dates referenced outside format() with PATTERN"  name:"date-format" placeholder:"PATTERN"`

	Render  cmd.Render  `cmd:"" default:"withargs" help:"Render a template"`
	Format  cmd.Format  `cmd:""                    help:"Format values with a pattern"`
	Vars    cmd.Vars    `cmd:""                    help:"List the data paths a template references"`
	Repl    cmd.Repl    `cmd:""                    help:"Evaluate expressions interactively"`
	Init    cmd.Init    `cmd:""                    help:"Initialize configuration file"`
	Version cmd.Version `cmd:""                    help:"Print version"`
}

// Run executes the morph CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  pkg.CacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		// Commands receive ctx as it is when they run, after the values
		// stuffed below.
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+".json"),
		kong.Configuration(resolve, configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize logger configuration before commands capture the logger.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithOptions(ctx, cmd.Options{
		Logger:     log.Default(),
		DateFormat: cli.DateFormat,
		Data:       cli.Data,
		Set:        cli.Set,
		Search:     searchPath(cli.Path...),
	})

	return ktx.Run(&cli)
}
