package cmd

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"cppgen/pkg/catalog"
	"cppgen/pkg/config"
	"cppgen/pkg/diag"
	"cppgen/pkg/event"
	"cppgen/pkg/jsonindex"
	"cppgen/pkg/parser"
)

var (
	indexHeaders []string
	indexOutput  string
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Parse headers into a single JSON catalog of enums and classes",
	Long: `Parses every given header with its own Parser and event bus,
merging the resulting enum and class data into one catalog keyed by fully
qualified name. On a name collision across files, the later file's
definition wins and a warning is printed.`,
	RunE: runIndex,
}

func init() {
	// index reuses the boost::program_options "headers,h" shorthand from
	// IndexCode.cpp, which collides with cobra's default --help shorthand;
	// register --help without one first so cobra doesn't claim -h itself.
	indexCmd.Flags().Bool("help", false, "help for index")
	indexCmd.Flags().StringArrayVarP(&indexHeaders, "headers", "h", nil, "header file to index (repeatable)")
	indexCmd.Flags().StringVarP(&indexOutput, "output", "o", "", "output JSON file (required)")
	indexCmd.MarkFlagRequired("headers")
	indexCmd.MarkFlagRequired("output")
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	outputPath := indexOutput
	if outputPath == "" {
		outputPath = cfg.OutputIndex
	}

	var headers []string
	for _, target := range indexHeaders {
		found, err := config.DiscoverHeaders(target, cfg)
		if err != nil {
			return errors.Wrapf(err, "discovering headers under %s", target)
		}
		headers = append(headers, found...)
	}

	result := catalog.NewCatalog()

	for _, header := range headers {
		fmt.Printf("parsing %s...\n", header)
		content, err := os.ReadFile(header)
		if err != nil {
			return errors.Wrapf(err, "reading %s", header)
		}

		bus := event.NewBus()
		enumsCollector := catalog.NewEnumCollector()
		classesCollector := catalog.NewClassCollector()
		enumsCollector.SetFile(header)
		classesCollector.SetFile(header)

		fileCatalog := catalog.NewCatalog()
		enumsCollector.OnEnumAvailable(func(key string, data catalog.EnumData) {
			if _, exists := result.Enums[key]; exists {
				diag.Warnf("%s: enum %s redefines an earlier definition", header, key)
			}
			fileCatalog.Enums[key] = data
		})
		classesCollector.OnClassAvailable(func(key string, data catalog.ClassData) {
			if _, exists := result.Classes[key]; exists {
				diag.Warnf("%s: class %s redefines an earlier definition", header, key)
			}
			fileCatalog.Classes[key] = data
		})

		enumsCollector.Attach(bus)
		classesCollector.Attach(bus)

		bus.Subscribe(event.IncludeDirective, func(e event.Event) {
			reportInclude(header, cfg, e.Include)
		})

		p := parser.New(bus)
		ok, leftover := p.Parse(string(content))

		enumsCollector.Detach()
		classesCollector.Detach()

		result.Merge(fileCatalog)

		if !ok {
			diag.Emit(diag.Diagnostic{
				Severity: diag.SeverityError,
				File:     header,
				Message:  fmt.Sprintf("parse stopped; unrecognized input starting at: %.60q", leftover),
			})
			continue
		}
		fmt.Println("  success")
	}

	fmt.Printf("writing %s...\n", outputPath)
	if err := jsonindex.WriteFile(outputPath, result); err != nil {
		return errors.Wrap(err, "writing catalog")
	}

	fmt.Printf("indexed %d enum(s), %d class(es)\n", len(result.Enums), len(result.Classes))
	return nil
}
