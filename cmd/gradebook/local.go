package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ahrav/go-gradebook/internal/calculator"
	"github.com/ahrav/go-gradebook/internal/domain"
	"github.com/ahrav/go-gradebook/internal/worker"
)

func newGradeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "grade <score>...",
		Short: "Print the letter grade for each score",
		Long: `Print the letter grade for each score. Nothing is printed unless
every score can be graded.`,
		Example: `  gradebook grade 59 90 100`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scores, err := parseInts(args)
			if err != nil {
				return err
			}

			g, err := worker.NewGrader(a.cfg)
			if err != nil {
				return err
			}

			a.logger.Debug("grading locally", "scores", len(scores), "scale", g.Scale().Bands)

			grades := make([]domain.LetterGrade, len(scores))
			for i, s := range scores {
				if grades[i], err = g.DetermineLetterGrade(s); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for i, s := range scores {
				fmt.Fprintf(out, "%d %s\n", s, grades[i])
			}
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Print the sum of two integers",
		Example: `  gradebook add 2 2
  gradebook add -- -3 7`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseInts(args)
			if err != nil {
				return err
			}
			var sc calculator.SimpleCalculator
			fmt.Fprintln(cmd.OutOrStdout(), sc.Add(ops[0], ops[1]))
			return nil
		},
	}
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", arg)
		}
		out = append(out, n)
	}
	return out, nil
}
