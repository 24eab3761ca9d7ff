package cmd

import (
	"fmt"
	"strconv"

	"github.com/Xiaoy312/sap-hr-cli/internal/hr"
	"github.com/Xiaoy312/sap-hr-cli/internal/pa20"
	"github.com/Xiaoy312/sap-hr-cli/internal/sapgui"
)

// employeeArg parses the single positional employee-ID argument.
func employeeArg(args []string) (int, error) {
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid employee ID %q: expected a positive integer", args[0])
	}
	return id, nil
}

// liveClient attaches to the running SAP GUI. Attachment is cheap; the
// authenticated session is located per query, not here.
func liveClient() (*pa20.Client, error) {
	engine, err := sapgui.Attach()
	if err != nil {
		return nil, err
	}
	return pa20.NewClient(engine), nil
}

// newDirectory composes the directory service per the resolved mode.
func newDirectory() (hr.Directory, error) {
	if syntheticMode {
		return hr.NewSyntheticDirectory(), nil
	}
	client, err := liveClient()
	if err != nil {
		return nil, err
	}
	return hr.NewDirectory(client), nil
}

// newBenefits composes the eligibility service per the resolved mode.
func newBenefits() (hr.Benefits, error) {
	if syntheticMode {
		return hr.NewSyntheticBenefits(), nil
	}
	client, err := liveClient()
	if err != nil {
		return nil, err
	}
	return hr.NewBenefits(client), nil
}
