package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Xiaoy312/sap-hr-cli/internal/model"
	"github.com/Xiaoy312/sap-hr-cli/internal/output"
)

type eventResult struct {
	EmployeeID int                    `yaml:"employee" json:"employee"`
	Event      *model.EmploymentEvent `yaml:"event"    json:"event"`
}

var eventCmd = &cobra.Command{
	Use:   "event <employee-id>",
	Short: "Read an employee's latest employment modification event",
	Long: `Searches the personnel actions history for the first cessation/re-hire
or permanent movement action and reports its type and start date. A null
event means no matching action exists, which is a normal answer.`,
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
		event, err := benefits.ModificationEvent(id)
		if err != nil {
			return err
		}
		return output.Print(eventResult{EmployeeID: id, Event: event})
	},
}

func init() {
	rootCmd.AddCommand(eventCmd)
}
