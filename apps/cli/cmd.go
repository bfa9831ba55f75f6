package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
	ut "github.com/go-playground/universal-translator"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/trezcool/cgpa/core"
	"github.com/trezcool/cgpa/core/cgpa"
	logsvc "github.com/trezcool/cgpa/services/logger"
)

var (
	bold = color.New(color.Bold).SprintFunc()

	// indexed by cgpa.Classification.Rank
	rankColors = []color.Attribute{color.FgRed, color.FgYellow, color.FgMagenta, color.FgBlue, color.FgGreen}
)

// commandLine holds what every sub command needs once the persistent flags are parsed.
type commandLine struct {
	conf       *core.Config
	logLevel   string
	svc        *cgpa.Service
	translator ut.Translator
}

func newCommand(conf *core.Config) *cobra.Command {
	cli := &commandLine{conf: conf}

	cmd := &cobra.Command{
		Use:           "cgpa",
		Short:         "cgpa computes a credit-weighted CGPA from semester SGPAs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return cli.setup(cmd)
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&cli.logLevel, "log-level", "l", "warn", "log level (trace, debug, info, warn, error, fatal, panic)")

	cmd.AddCommand(
		cli.newCalcCommand(),
		cli.newPlanCommand(),
		cli.newClassifyCommand(),
		cli.newVersionCommand(),
	)
	return cmd
}

func (cli *commandLine) setup(cmd *cobra.Command) error {
	if _, err := logrus.ParseLevel(cli.logLevel); err != nil {
		return errors.Errorf("invalid log level %q", cli.logLevel)
	}
	logger := logsvc.NewConsoleLogger(logsvc.NewStdLogger(cmd.ErrOrStderr(), cli.logLevel))

	validate, translator := core.NewValidator()
	cgpa.InitValidators(validate, translator)
	cli.translator = translator
	cli.svc = cgpa.NewService(cgpa.ServiceDeps{
		Logger:        logger,
		Validate:      validate,
		ReferencePlan: cli.conf.Credits.DefaultPlan,
	})
	return nil
}

func (cli *commandLine) newCalcCommand() *cobra.Command {
	var (
		semesters, completed int
		grades, credits      string
		asJSON               bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the CGPA of the completed semesters",
		Long: `Compute the CGPA of the completed semesters.

SGPAs are given in semester order. Credits default to the reference plan
of the program; pass --credits to use a custom load (one entry per semester).`,
		Example: `  cgpa calc --grades 8,9,7.5,8.5
  cgpa calc --semesters 8 --completed 3 --grades 8,9,7.5 --credits 20,22,18,20,20,20,20,20`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sgpas, err := core.ParseFloatList(grades)
			if err != nil {
				return errors.Wrap(err, "--grades")
			}
			calc := cgpa.Calculation{
				NumSemesters:       semesters,
				CompletedSemesters: completed,
				Grades:             sgpas,
			}
			if calc.CompletedSemesters == 0 {
				calc.CompletedSemesters = len(sgpas)
			}
			if calc.NumSemesters == 0 {
				calc.NumSemesters = calc.CompletedSemesters
				if calc.NumSemesters < len(cli.svc.ReferencePlan()) {
					calc.NumSemesters = len(cli.svc.ReferencePlan())
				}
			}
			if credits != "" {
				calc.UseCustomCredits = true
				if calc.Credits, err = core.ParseIntList(credits); err != nil {
					return errors.Wrap(err, "--credits")
				}
			}

			res, err := cli.svc.Calculate(calc)
			if err != nil {
				return cli.describeError(err)
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			printResult(cmd, res)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&semesters, "semesters", "n", 0, "number of semesters in the program (default: max of the reference plan length and --completed)")
	flags.IntVarP(&completed, "completed", "c", 0, "semesters with a published SGPA (default: number of grades)")
	flags.StringVarP(&grades, "grades", "g", "", "comma separated SGPAs, eg. 8,9,7.5")
	flags.StringVar(&credits, "credits", "", "comma separated credits per semester of the program")
	flags.BoolVar(&asJSON, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("grades")
	return cmd
}

func (cli *commandLine) newPlanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plan [SEMESTERS]",
		Short: "Print the default credit plan of a program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			semesters := len(cli.svc.ReferencePlan())
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return errors.Wrap(err, "invalid number of semesters")
				}
				semesters = n
			}
			plan, err := cli.svc.CreditPlan(semesters)
			if err != nil {
				return cli.describeError(err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SEMESTER\tCREDITS")
			for i, cr := range plan {
				fmt.Fprintf(w, "%d\t%d\n", i+1, cr)
			}
			fmt.Fprintf(w, "total\t%d\n", cgpa.TotalCredits(plan))
			return w.Flush()
		},
	}
}

func (cli *commandLine) newClassifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [CGPA]",
		Short: "Print the standing of a CGPA, or the classification table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "FROM\tSTANDING")
				for _, b := range cli.svc.Classifications() {
					from := fmt.Sprintf("%.1f", b.LowerBound)
					if b.LowerBound == 0 {
						from = "-"
					}
					fmt.Fprintf(w, "%s\t%s\n", from, colorize(b.Label))
				}
				return w.Flush()
			}

			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.Wrap(err, "invalid CGPA")
			}
			cmd.Println(colorize(cgpa.Classify(value)))
			return nil
		},
	}
}

func (cli *commandLine) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s\n", cli.conf.Build)
		},
	}
}

func printResult(cmd *cobra.Command, res cgpa.Result) {
	cmd.Printf("%s %.2f\n", bold("CGPA:"), res.CGPA)
	cmd.Printf("%s %d\n", bold("Total credits:"), res.TotalCredits)
	cmd.Printf("%s %s\n", bold("Standing:"), colorize(res.Classification))
	cmd.Println()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEMESTER\tCREDITS\tSGPA\tWEIGHTED")
	for _, row := range res.Breakdown {
		fmt.Fprintf(w, "%d\t%d\t%.2f\t%.2f\n", row.Semester, row.Credits, row.GradePoint, row.Weighted)
	}
	_ = w.Flush()

	cmd.Println()
	if res.RemainingSemesters > 0 {
		cmd.Printf("Based on the first %d semester(s); %d semester(s) remaining.\n", res.CompletedSemesters, res.RemainingSemesters)
	}
	cmd.Println(res.Trend.Message())
}

func colorize(c cgpa.Classification) string {
	rank := c.Rank()
	if rank < 0 || rank >= len(rankColors) {
		return string(c)
	}
	return color.New(rankColors[rank]).Sprint(string(c))
}
