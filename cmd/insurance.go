package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Xiaoy312/sap-hr-cli/internal/output"
)

type insuranceResult struct {
	EmployeeID int   `yaml:"employee" json:"employee"`
	Insured    *bool `yaml:"insured"  json:"insured"`
}

var healthCmd = &cobra.Command{
	Use:   "health <employee-id>",
	Short: "Check whether an employee has valid health insurance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := employeeArg(args)
		if err != nil {
			return err
		}
		benefits, err := newBenefits()
		if err != nil {
			return err
		}
		insured, err := benefits.HasHealthInsurance(id)
		if err != nil {
			return err
		}
		return output.Print(insuranceResult{EmployeeID: id, Insured: insured})
	},
}

var dentalCmd = &cobra.Command{
	Use:   "dental <employee-id>",
	Short: "Check whether an employee has valid dental insurance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := employeeArg(args)
		if err != nil {
			return err
		}
		benefits, err := newBenefits()
		if err != nil {
			return err
		}
		insured, err := benefits.HasDentalInsurance(id)
		if err != nil {
			return err
		}
		return output.Print(insuranceResult{EmployeeID: id, Insured: insured})
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(dentalCmd)
}
