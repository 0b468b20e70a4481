package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"dowry-calculator/internal/domain"
	"dowry-calculator/internal/service"
)

type valuateOptions struct {
	name       string
	occupation string
	income     string
	education  string
	complexion string
	buffaloes  string
	ownsHouse  bool
	seed       int64
	asJSON     bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &valuateOptions{seed: -1}

	cmd := &cobra.Command{
		Use:   "valuate",
		Short: "Compute the satirical dowry valuation from the terminal",
		Long: "valuate runs the same validation and scoring as POST /api/predict.\n" +
			"Dowry is illegal under the Dowry Prohibition Act, 1961. This tool is satire.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValuate(out, errOut, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.name, "name", "", "full name")
	flags.StringVar(&opts.occupation, "occupation", "", "occupation (free text)")
	flags.StringVar(&opts.income, "income", "", "monthly income")
	flags.StringVar(&opts.education, "education", "", "secondary|bachelor|master|doctorate|other")
	flags.StringVar(&opts.complexion, "complexion", "", "light|medium|dark")
	flags.StringVar(&opts.buffaloes, "buffaloes", "", "number of buffaloes owned")
	flags.BoolVar(&opts.ownsHouse, "owns-house", false, "owns a house")
	flags.Int64Var(&opts.seed, "seed", -1, "seed for the message pick (negative for random)")
	flags.BoolVar(&opts.asJSON, "json", false, "print the result as JSON")

	return cmd
}

func runValuate(out, errOut io.Writer, opts *valuateOptions) error {
	input, err := service.ValidateSubmission(map[string]any{
		service.FieldName:          opts.name,
		service.FieldOccupation:    opts.occupation,
		service.FieldMonthlyIncome: opts.income,
		service.FieldEducation:     opts.education,
		service.FieldComplexion:    opts.complexion,
		service.FieldAssetCount:    opts.buffaloes,
		service.FieldOwnsProperty:  opts.ownsHouse,
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			printFieldErrors(errOut, verr)
		}
		return err
	}

	var rnd service.RandSource = service.DefaultRandSource
	if opts.seed >= 0 {
		rnd = rand.New(rand.NewPCG(uint64(opts.seed), uint64(opts.seed)))
	}
	result := service.DefaultScoringEngine.Score(input, rnd)

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	printResult(out, input, result)
	return nil
}

func printFieldErrors(w io.Writer, verr *service.ValidationError) {
	fields := make([]string, 0, len(verr.Fields))
	for f := range verr.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(w, "%s: %s\n", f, verr.Fields[f].Message)
	}
}

func printResult(w io.Writer, input domain.SubmissionInput, result domain.ValuationResult) {
	fmt.Fprintf(w, "Estimated value for %s: %s\n", input.Name, result.DisplayAmount)
	fmt.Fprintf(w, "Items: %s\n", strings.Join(result.Items, ", "))
	fmt.Fprintln(w, result.Message)
	fmt.Fprintln(w, "Reality check: dowry is illegal. Say No to Dowry!")
}
