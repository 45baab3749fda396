package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/mgnsk/dumbuno"
)

type options struct {
	Players     int    `short:"n" long:"players" description:"Number of players in the circle (default: 5)"`
	MinHandSize int    `long:"min-hand" description:"Smallest initial hand (default: 3)"`
	MaxHandSize int    `long:"max-hand" description:"Largest initial hand (default: 12)"`
	Seed        uint64 `long:"seed" description:"Seed for dealing hands"`
	Config      string `short:"c" long:"config" description:"YAML config file"`
	Verbose     bool   `short:"v" long:"verbose" description:"Log game events to stderr"`
}

func parseArgs(args []string) (config, bool, error) {
	var opts options
	p := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)

	rest, err := p.ParseArgs(args)
	if err != nil {
		return config{}, false, err
	}
	if len(rest) > 0 {
		return config{}, false, fmt.Errorf("unexpected argument %q", rest[0])
	}

	cfg := defaultConfig()

	if opts.Config != "" {
		if err := loadConfig(opts.Config, &cfg); err != nil {
			return config{}, false, err
		}
	}

	// Flags given on the command line take precedence over the config file.
	// Defaults come from defaultConfig, so the options carry no default tags.
	if given(p, "players") {
		cfg.Players = opts.Players
	}
	if given(p, "min-hand") {
		cfg.MinHandSize = opts.MinHandSize
	}
	if given(p, "max-hand") {
		cfg.MaxHandSize = opts.MaxHandSize
	}
	if given(p, "seed") {
		seed := opts.Seed
		cfg.Seed = &seed
	}

	return cfg, opts.Verbose, nil
}

// given reports whether the option was set on the command line.
func given(p *flags.Parser, name string) bool {
	o := p.FindOptionByLongName(name)
	return o != nil && o.IsSet() && !o.IsSetDefault()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	return zap.NewDevelopment()
}

func run(args []string, stdout io.Writer) error {
	cfg, verbose, err := parseArgs(args)
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, ferr.Message)
			return nil
		}
		return err
	}

	logger, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	opts := append(cfg.gameOptions(),
		dumbuno.WithOutput(stdout),
		dumbuno.WithLogger(logger),
	)

	g, err := dumbuno.New(opts...)
	if err != nil {
		return err
	}

	res, err := g.Run()
	if err != nil {
		return err
	}

	logger.Info("game over",
		zap.String("game_id", g.ID()),
		zap.Int("winner", res.Winner),
		zap.Int("turns", res.Turns),
	)

	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
