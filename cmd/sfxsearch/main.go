// Command sfxsearch builds a suffix tree over a text or file and reports
// which of the given patterns occur in it.
//
//	sfxsearch -text mississippi issi issip pississ
//	sfxsearch -c query.yaml -export json -o tree.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-suffixtree/sfxtree"
)

// build time variables
var (
	Version   string
	GitCommit string
)

func _main() (err error) {
	var (
		configFilePath string
		showVersion    bool
		flags          Config
	)
	flag.StringVar(&configFilePath, "c", "", "[C]onfig file path")
	flag.StringVar(&flags.Text, "text", "", "text to index")
	flag.StringVar(&flags.File, "file", "", "file to index")
	flag.StringVar(&flags.Export, "export", "", "export the tree as json or cbor")
	flag.StringVar(&flags.Output, "o", "", "export [o]utput path, default stdout")
	flag.StringVar(&flags.LogLevel, "log-level", "", "log level, default INFO")
	flag.BoolVar(&showVersion, "v", false, "show version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("sfxsearch %s (%s)\n", Version, GitCommit)
		return nil
	}

	cfg := &Config{}
	if err = loadConfig(configFilePath, cfg); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.override(flags, flag.Args())
	if err = cfg.Parse(); err != nil {
		return err
	}

	logger.New(cfg.LogLevel)
	defer logger.OnExit()
	log := logger.Sugar.WithServiceName("sfxsearch")

	return run(log, cfg, os.Stdout)
}

// override replaces config file values with those set on the command line.
// Positional arguments are additional patterns.
func (cfg *Config) override(flags Config, args []string) {
	if flags.Text != "" || flags.File != "" {
		cfg.Text, cfg.File = flags.Text, flags.File
	}
	if flags.Export != "" {
		cfg.Export = flags.Export
	}
	if flags.Output != "" {
		cfg.Output = flags.Output
	}
	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}
	cfg.Patterns = append(cfg.Patterns, args...)
}

func run(log logger.Logger, cfg *Config, stdout io.Writer) error {
	input, err := cfg.Input()
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	tree := sfxtree.Build(input, sfxtree.WithLogger(log))
	log.Infof("indexed %d symbols: nodes=%d, leaves=%d", tree.Len(), tree.NodeCount(), tree.LeafCount())

	for _, p := range cfg.Patterns {
		found := sfxtree.SearchString(tree, p)
		log.Debugf("search %q: %v", p, found)
		if _, err = fmt.Fprintf(stdout, "%t\t%s\n", found, p); err != nil {
			return err
		}
	}

	if cfg.Export == ExportNone {
		return nil
	}
	return writeExport(tree, cfg, stdout)
}

func writeExport(tree *sfxtree.Tree[byte], cfg *Config, stdout io.Writer) error {
	var (
		b   []byte
		err error
	)
	labels := sfxtree.StringLabelMap(tree)
	switch cfg.Export {
	case ExportJSON:
		b, err = json.MarshalIndent(labels, "", "    ")
		b = append(b, '\n')
	case ExportCBOR:
		b, err = sfxtree.EncodeExportCBOR(labels)
	default:
		return fmt.Errorf("%w: %q", ErrBadExport, cfg.Export)
	}
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}

	if cfg.Output == "" || cfg.Output == "-" {
		_, err = stdout.Write(b)
		return err
	}
	return os.WriteFile(cfg.Output, b, 0644)
}

func main() {
	if err := _main(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
