package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Xiaoy312/sap-hr-cli/internal/model"
	"github.com/Xiaoy312/sap-hr-cli/internal/output"
)

type identityResult struct {
	EmployeeID int          `yaml:"employee" json:"employee"`
	Person     model.Person `yaml:"person"   json:"person"`
}

type genderResult struct {
	EmployeeID int          `yaml:"employee" json:"employee"`
	Gender     model.Gender `yaml:"gender"   json:"gender"`
}

var identityCmd = &cobra.Command{
	Use:   "identity <employee-id>",
	Short: "Read an employee's identity record (name and gender)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := employeeArg(args)
		if err != nil {
			return err
		}
		directory, err := newDirectory()
		if err != nil {
			return err
		}
		person, err := directory.Identity(id)
		if err != nil {
			return err
		}
		return output.Print(identityResult{EmployeeID: id, Person: person})
	},
}

var genderCmd = &cobra.Command{
	Use:   "gender <employee-id>",
	Short: "Read an employee's gender",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := employeeArg(args)
		if err != nil {
			return err
		}
		directory, err := newDirectory()
		if err != nil {
			return err
		}
		gender, err := directory.Gender(id)
		if err != nil {
			return err
		}
		return output.Print(genderResult{EmployeeID: id, Gender: gender})
	},
}

func init() {
	rootCmd.AddCommand(identityCmd)
	rootCmd.AddCommand(genderCmd)
}
