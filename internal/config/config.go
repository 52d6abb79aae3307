package config

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/CristiGvl/picoMemGraph/internal/graph"
	"github.com/CristiGvl/picoMemGraph/internal/platform"
	"github.com/CristiGvl/picoMemGraph/internal/units"
)

// ReadTimeout bounds a single report, CLI or HTTP
const ReadTimeout = 10 * time.Second

// ErrInvalid marks a configuration that parsed but cannot be used
var ErrInvalid = errors.New("invalid configuration")

// Config holds runtime configuration
type Config struct {
	Length        int
	HumanReadable bool
	Decimals      int
	ProcRoot      string

	LogLevel string
	LogFile  string

	Serve bool
	Bind  string
	Port  string

	// Program is the optional positional argument
	Program string
}

// Defaults returns the configuration used when no flags are given
func Defaults() *Config {
	return &Config{
		Length:   graph.DefaultLength,
		Decimals: units.DefaultDecimals,
		ProcRoot: platform.DefaultProcRoot,
		LogLevel: "warn",
		Bind:     "0.0.0.0",
		Port:     "8080",
	}
}

// RegisterFlags registers c's fields on fs
func (c *Config) RegisterFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Length, "length", "l", c.Length, "Specify the length of the graph")
	fs.BoolVarP(&c.HumanReadable, "human-readable", "H", c.HumanReadable, "Print sizes in human readable format")
	fs.IntVar(&c.Decimals, "decimals", c.Decimals, "Decimal places in human readable sizes")
	fs.StringVar(&c.ProcRoot, "proc-root", c.ProcRoot, "Mount point of procfs")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Diagnostics level (debug, info, warn, error)")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Also write diagnostics to this file, rotated by size")
	fs.BoolVar(&c.Serve, "serve", c.Serve, "Serve memory snapshots over HTTP instead of printing one")
	fs.StringVar(&c.Bind, "bind", c.Bind, "IP address to bind the server to")
	fs.StringVar(&c.Port, "port", c.Port, "Port to run the server on")
}

// Validate reports the first unusable setting
func (c *Config) Validate() error {
	if c.Length < 1 {
		return fmt.Errorf("%w: length must be at least 1, got %d", ErrInvalid, c.Length)
	}
	if c.Decimals < 0 {
		return fmt.Errorf("%w: decimals must not be negative, got %d", ErrInvalid, c.Decimals)
	}
	if c.ProcRoot == "" {
		return fmt.Errorf("%w: proc-root must not be empty", ErrInvalid)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Serve && c.Program != "" {
		return fmt.Errorf("%w: program %q cannot be combined with --serve", ErrInvalid, c.Program)
	}
	return nil
}

// Units returns the formatter selected by the display flags
func (c *Config) Units() units.Formatter {
	return units.Formatter{Human: c.HumanReadable, Decimals: c.Decimals}
}

// Load parses args (without the program name) into a validated Config.
// Usage and parse errors are printed to output. pflag.ErrHelp is returned
// unchanged when help was requested.
func Load(name string, args []string, output io.Writer) (*Config, error) {
	cfg := Defaults()
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(output)
	cfg.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Program = fs.Arg(0)
	default:
		return nil, fmt.Errorf("%w: expected at most one program, got %d", ErrInvalid, fs.NArg())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
