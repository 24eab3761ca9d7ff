package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/Xiaoy312/sap-hr-cli/internal/hr"
	"github.com/Xiaoy312/sap-hr-cli/internal/version"
)

// mcpServer exposes the personnel queries as MCP tools. The SAP session
// is a single-cursor resource, so every handler runs under one mutex;
// concurrent tool calls queue instead of interleaving screen navigation.
type mcpServer struct {
	directory hr.Directory
	benefits  hr.Benefits
	mu        sync.Mutex
	mcp       *mcpserver.MCPServer
}

// newMCPServer composes the services per the resolved mode and registers
// all tools.
func newMCPServer() (*mcpServer, error) {
	directory, err := newDirectory()
	if err != nil {
		return nil, err
	}
	benefits, err := newBenefits()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{directory: directory, benefits: benefits}
	s.mcp = mcpserver.NewMCPServer("sap-hr-cli", version.Version)
	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the requested transport.
func (s *mcpServer) serve(transport string, port int) error {
	switch transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", transport)
	}
}

// employeeTool declares a tool whose only argument is the employee ID.
func employeeTool(name, description string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithNumber("employee", mcp.Description("Employee identifier (positive integer)"), mcp.Required()),
	)
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		employeeTool("identity", "Read an employee's identity record (name and gender) from SAP"),
		s.employeeHandler(func(id int) (interface{}, error) {
			person, err := s.directory.Identity(id)
			if err != nil {
				return nil, err
			}
			return identityResult{EmployeeID: id, Person: person}, nil
		}),
	)
	s.mcp.AddTool(
		employeeTool("gender", "Read an employee's gender from SAP"),
		s.employeeHandler(func(id int) (interface{}, error) {
			gender, err := s.directory.Gender(id)
			if err != nil {
				return nil, err
			}
			return genderResult{EmployeeID: id, Gender: gender}, nil
		}),
	)
	s.mcp.AddTool(
		employeeTool("address", "Read an employee's mailing address from SAP"),
		s.employeeHandler(func(id int) (interface{}, error) {
			address, err := s.directory.Address(id)
			if err != nil {
				return nil, err
			}
			return addressResult{EmployeeID: id, Address: address}, nil
		}),
	)
	s.mcp.AddTool(
		employeeTool("emails", "Read an employee's work and personal email addresses from SAP"),
		s.employeeHandler(func(id int) (interface{}, error) {
			emails, err := s.directory.EmailAddresses(id)
			if err != nil {
				return nil, err
			}
			return emailsResult{EmployeeID: id, Emails: emails}, nil
		}),
	)
	s.mcp.AddTool(
		employeeTool("modification_event", "Read an employee's latest employment modification event (type and date); null when none exists"),
		s.employeeHandler(func(id int) (interface{}, error) {
			event, err := s.benefits.ModificationEvent(id)
			if err != nil {
				return nil, err
			}
			return eventResult{EmployeeID: id, Event: event}, nil
		}),
	)
	s.mcp.AddTool(
		employeeTool("health_insurance", "Check whether an employee has valid health insurance (true/false/null)"),
		s.employeeHandler(func(id int) (interface{}, error) {
			insured, err := s.benefits.HasHealthInsurance(id)
			if err != nil {
				return nil, err
			}
			return insuranceResult{EmployeeID: id, Insured: insured}, nil
		}),
	)
	s.mcp.AddTool(
		employeeTool("dental_insurance", "Check whether an employee has valid dental insurance (true/false/null)"),
		s.employeeHandler(func(id int) (interface{}, error) {
			insured, err := s.benefits.HasDentalInsurance(id)
			if err != nil {
				return nil, err
			}
			return insuranceResult{EmployeeID: id, Insured: insured}, nil
		}),
	)
	s.mcp.AddTool(
		employeeTool("disability_coverage", "Read an employee's disability coverage tier (26/52 weeks); null when no quota record exists"),
		s.employeeHandler(func(id int) (interface{}, error) {
			coverage, err := s.benefits.DisabilityCoverage(id)
			if err != nil {
				return nil, err
			}
			return disabilityResult{EmployeeID: id, Coverage: coverage}, nil
		}),
	)
}

// employeeHandler adapts one query into an MCP tool handler: validate the
// employee argument, serialize against the session, answer in YAML.
func (s *mcpServer) employeeHandler(query func(id int) (interface{}, error)) mcpserver.ToolHandlerFunc {
	return func(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := intParam(request.GetArguments(), "employee", 0)
		if id <= 0 {
			return mcp.NewToolResultError("employee must be a positive integer"), nil
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		result, err := query(id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		b, err := yaml.Marshal(result)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(b)), nil
	}
}

// intParam reads an integer tool argument, tolerating the float64 JSON
// numbers MCP clients send.
func intParam(params map[string]interface{}, key string, fallback int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return fallback
	}
}
