package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"cppgen/pkg/jsonindex"
	"cppgen/pkg/lineparser"
	"cppgen/pkg/linefilter"
)

var (
	rewriteInput   string
	rewriteOutput  string
	rewriteCatalog string
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Expand getter/setter and serialization sentinels in a header",
	Long: `Loads a catalog produced by "cppgen index", then streams INPUT line by
line through a class-tracking mini-parser and a chain of line filters: a
getter/setter filter and a cereal save/load filter, each expanding its own
sentinel line into generated methods using the catalog's record for
whichever class the line currently falls inside.`,
	RunE: runRewrite,
}

func init() {
	rewriteCmd.Flags().StringVarP(&rewriteInput, "input", "i", "", "input file to rewrite (required)")
	rewriteCmd.Flags().StringVarP(&rewriteOutput, "output", "o", "", "output file (required)")
	rewriteCmd.Flags().StringVar(&rewriteCatalog, "catalog", "", "catalog JSON file produced by 'cppgen index' (required)")
	rewriteCmd.MarkFlagRequired("input")
	rewriteCmd.MarkFlagRequired("output")
	rewriteCmd.MarkFlagRequired("catalog")
}

func runRewrite(cmd *cobra.Command, args []string) error {
	cat, err := jsonindex.ReadFile(rewriteCatalog)
	if err != nil {
		return errors.Wrapf(err, "loading catalog %s", rewriteCatalog)
	}

	reader := linefilter.NewReader()
	mini := lineparser.New()
	getset := linefilter.NewGetSetFilter(cat)
	cereal := linefilter.NewCerealFilter(cat)
	writer := linefilter.NewWriter()

	reader.OnLine(mini.Feed)

	mini.OnClassPush(getset.HandleClassPush)
	mini.OnClassPop(getset.HandleClassPop)
	mini.OnLine(getset.HandleLine)

	getset.OnClassPush(cereal.HandleClassPush)
	getset.OnClassPop(cereal.HandleClassPop)
	getset.OnLine(cereal.HandleLine)

	cereal.OnLine(writer.Consume)

	if err := reader.ReadFile(rewriteInput); err != nil {
		return errors.Wrapf(err, "reading %s", rewriteInput)
	}

	if err := writer.WriteFile(rewriteOutput); err != nil {
		return errors.Wrapf(err, "writing %s", rewriteOutput)
	}

	fmt.Printf("rewrote %s -> %s\n", rewriteInput, rewriteOutput)
	return nil
}
