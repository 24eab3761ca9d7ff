package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Xiaoy312/sap-hr-cli/internal/model"
	"github.com/Xiaoy312/sap-hr-cli/internal/output"
)

type addressResult struct {
	EmployeeID int           `yaml:"employee" json:"employee"`
	Address    model.Address `yaml:"address"  json:"address"`
}

var addressCmd = &cobra.Command{
	Use:   "address <employee-id>",
	Short: "Read an employee's mailing address",
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
		address, err := directory.Address(id)
		if err != nil {
			return err
		}
		return output.Print(addressResult{EmployeeID: id, Address: address})
	},
}

func init() {
	rootCmd.AddCommand(addressCmd)
}
