package cmd

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"cppgen/pkg/catalog"
	"cppgen/pkg/codegen"
	"cppgen/pkg/config"
	"cppgen/pkg/diag"
	"cppgen/pkg/event"
	"cppgen/pkg/parser"
)

var (
	generateInput  string
	generateCpp    string
	generateHeader string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate to_string/operator<< for every enum in a header",
	Long: `Parses INPUT, collects every enum it declares, and emits a header and a
source file implementing a to_string overload and an operator<< overload
for each one.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "input C++ file to scan for enums (required)")
	generateCmd.Flags().StringVarP(&generateCpp, "cpp", "c", "", "output .cpp source file (required)")
	generateCmd.Flags().StringVarP(&generateHeader, "header", "h", "", "output header file (required)")
	generateCmd.MarkFlagRequired("input")
	generateCmd.MarkFlagRequired("cpp")
	generateCmd.MarkFlagRequired("header")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	outputCpp := generateCpp
	outputHeader := generateHeader
	if outputCpp == "" {
		outputCpp = cfg.OutputSource
	}
	if outputHeader == "" {
		outputHeader = cfg.OutputHeader
	}

	content, err := os.ReadFile(generateInput)
	if err != nil {
		return errors.Wrapf(err, "reading %s", generateInput)
	}

	bus := event.NewBus()
	collector := catalog.NewEnumCollector()
	collector.SetFile(generateInput)
	enums := make(map[string]catalog.EnumData)
	collector.OnEnumAvailable(func(key string, data catalog.EnumData) {
		enums[key] = data
	})
	collector.Attach(bus)
	defer collector.Detach()

	bus.Subscribe(event.IncludeDirective, func(e event.Event) {
		reportInclude(generateInput, cfg, e.Include)
	})

	p := parser.New(bus)
	ok, leftover := p.Parse(string(content))
	if !ok {
		diag.Emit(diag.Diagnostic{
			Severity: diag.SeverityError,
			File:     generateInput,
			Message:  fmt.Sprintf("parse stopped; unrecognized input starting at: %.60q", leftover),
		})
		return errors.Newf("failed to parse %s", generateInput)
	}

	if len(enums) == 0 {
		diag.Warnf("%s: no enums found", generateInput)
	}

	headerFile, err := os.Create(outputHeader)
	if err != nil {
		return errors.Wrapf(err, "creating %s", outputHeader)
	}
	defer headerFile.Close()
	if err := codegen.WriteEnumHeader(headerFile, enums, generateInput); err != nil {
		return errors.Wrap(err, "writing header")
	}

	cppFile, err := os.Create(outputCpp)
	if err != nil {
		return errors.Wrapf(err, "creating %s", outputCpp)
	}
	defer cppFile.Close()
	if err := codegen.WriteEnumSource(cppFile, enums, outputHeader); err != nil {
		return errors.Wrap(err, "writing source")
	}

	fmt.Printf("generated %d enum(s) -> %s, %s\n", len(enums), outputHeader, outputCpp)
	return nil
}
