package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Xiaoy312/sap-hr-cli/internal/output"
	"github.com/Xiaoy312/sap-hr-cli/internal/sapgui"
)

type checkResult struct {
	User string `yaml:"user" json:"user"`
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that an authenticated SAP session is reachable",
	Long: `Connects to the SAP GUI scripting engine and locates the first session
with a logged-in user. Always goes live, even under --synthetic: the
point is to verify the host.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := sapgui.Attach()
		if err != nil {
			return err
		}
		session, err := sapgui.ActiveSession(engine)
		if err != nil {
			return err
		}
		user, err := session.User()
		if err != nil {
			return err
		}
		return output.Print(checkResult{User: user})
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
