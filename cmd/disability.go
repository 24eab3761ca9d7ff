package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Xiaoy312/sap-hr-cli/internal/model"
	"github.com/Xiaoy312/sap-hr-cli/internal/output"
)

type disabilityResult struct {
	EmployeeID int                       `yaml:"employee" json:"employee"`
	Coverage   *model.DisabilityCoverage `yaml:"coverage" json:"coverage"`
}

var disabilityCmd = &cobra.Command{
	Use:   "disability <employee-id>",
	Short: "Read an employee's disability coverage tier",
	Long: `Derives the salary-insurance tier (26 or 52 weeks) from the absence
quota balance. A null coverage means the employee has no quota record.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := employeeArg(args)
		if err != nil {
			return err
		}
		benefits, err := newBenefits()
		if err != nil {
			return err
		}
		coverage, err := benefits.DisabilityCoverage(id)
		if err != nil {
			return err
		}
		return output.Print(disabilityResult{EmployeeID: id, Coverage: coverage})
	},
}

func init() {
	rootCmd.AddCommand(disabilityCmd)
}
