package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Xiaoy312/sap-hr-cli/internal/model"
	"github.com/Xiaoy312/sap-hr-cli/internal/output"
)

type emailsResult struct {
	EmployeeID int                        `yaml:"employee" json:"employee"`
	Emails     map[model.EmailType]string `yaml:"emails"   json:"emails"`
}

var emailsCmd = &cobra.Command{
	Use:   "emails <employee-id>",
	Short: "Read an employee's work and personal email addresses",
	Long: `Reads the communication history and extracts the work and personal email
addresses. Either or both may be missing; other communication channels
are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := employeeArg(args)
		if err != nil {
			return err
		}
		directory, err := newDirectory()
		if err != nil {
			return err
		}
		emails, err := directory.EmailAddresses(id)
		if err != nil {
			return err
		}
		return output.Print(emailsResult{EmployeeID: id, Emails: emails})
	},
}

func init() {
	rootCmd.AddCommand(emailsCmd)
}
