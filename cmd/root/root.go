// Package root is the hcpctl command line: it picks exactly one operation from
// the flags, runs the precondition gate and dispatches.
package root

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/openshift/hcpctl/cmd/log"
	"github.com/openshift/hcpctl/cmd/params"
	"github.com/openshift/hcpctl/cmd/preflight"
	"github.com/openshift/hcpctl/cmd/settings"
	"github.com/openshift/hcpctl/cmd/util"
	"github.com/openshift/hcpctl/support/awsutil"
	"github.com/openshift/hcpctl/support/rosacli"
	"github.com/openshift/hcpctl/support/runner"

	"github.com/spf13/cobra"
)

const userAgent = "hcpctl"

const permissionsHint = `AWS denied a call made as %s.
  Grant that identity the EC2 and IAM permissions ROSA hosted control planes need,
  or run the step with credentials that have them.
`

// errReported marks errors whose message has already been printed.
var errReported = errors.New("already reported")

type App struct {
	Out    io.Writer
	ErrOut io.Writer

	Runner     runner.Runner
	Clients    ClientFactory
	Operations map[Operation]OperationFunc
	// LoadSettings defaults to settings.Load.
	LoadSettings func() (*settings.Settings, error)
}

func NewApp() *App {
	return &App{
		Out:          os.Stdout,
		ErrOut:       os.Stderr,
		Runner:       runner.New(),
		Clients:      &defaultClients{agent: userAgent},
		Operations:   DefaultOperations(),
		LoadSettings: settings.Load,
	}
}

// Execute runs the command line and returns the process exit status.
func (a *App) Execute(ctx context.Context, args []string) int {
	cmd := a.NewCommand()
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if !errors.Is(err, errReported) {
		fmt.Fprintf(a.ErrOut, "Error: %v\n", err)
	}
	return util.ExitCode(err)
}

func (a *App) NewCommand() *cobra.Command {
	selected := map[Operation]*bool{}

	cmd := &cobra.Command{
		Use:           "hcpctl [--create-vpc | --create-permission | --install-hcp | --delete-hcp | --create-admin | --install-operators]",
		Short:         "Provisions a ROSA hosted control plane cluster one step at a time",
		Long:          longHelp,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return a.usageError(cmd, fmt.Sprintf("Unknown argument: `%s`", args[0]))
			}
			return nil
		},
	}
	cmd.SetOut(a.Out)
	cmd.SetErr(a.ErrOut)

	for _, op := range AllOperations {
		selected[op] = cmd.Flags().Bool(string(op), false, descriptions[op])
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		if arg := unknownArgument(err); arg != "" {
			return a.usageError(c, fmt.Sprintf("Unknown argument: `%s`", arg))
		}
		return a.usageError(c, err.Error())
	})

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		var ops []Operation
		for _, op := range AllOperations {
			if *selected[op] {
				ops = append(ops, op)
			}
		}
		switch len(ops) {
		case 0:
			_ = cmd.Help()
			return util.NewExitError(util.ExitUsage, errReported)
		case 1:
			return a.run(cmd.Context(), ops[0])
		default:
			names := make([]string, 0, len(ops))
			for _, op := range ops {
				names = append(names, "--"+string(op))
			}
			return a.usageError(cmd, fmt.Sprintf("Only one operation may be given, got %s", strings.Join(names, ", ")))
		}
	}
	return cmd
}

func (a *App) usageError(cmd *cobra.Command, msg string) error {
	fmt.Fprintln(a.ErrOut, msg)
	_ = cmd.Help()
	return util.NewExitError(util.ExitUsage, errReported)
}

// unknownArgument extracts the offending token from a pflag parse error.
func unknownArgument(err error) string {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "unknown flag: "):
		return strings.TrimPrefix(msg, "unknown flag: ")
	case strings.HasPrefix(msg, "unknown shorthand flag: "):
		if i := strings.LastIndex(msg, " in "); i >= 0 {
			return msg[i+len(" in "):]
		}
	}
	return ""
}

func (a *App) run(ctx context.Context, op Operation) error {
	s, err := a.LoadSettings()
	if err != nil {
		return util.NewExitError(util.ExitUsage, err)
	}
	if err := log.SetLevel(s.LogLevel); err != nil {
		return util.NewExitError(util.ExitUsage, err)
	}

	// partitions other than aws only resolve from a region inside them
	region := ""
	if p, err := params.Load(s.ParamsFile); err == nil {
		region = p.Region
	}
	stsClient, err := a.Clients.STS(ctx, region)
	if err != nil {
		return util.NewExitError(util.ExitAuth, err)
	}
	rosa := rosacli.New(a.Runner)
	gate := &preflight.Gate{
		Runner: a.Runner,
		STS:    stsClient,
		Rosa:   rosa,
		Out:    a.Out,
	}
	identity, err := gate.Run(ctx, preflight.Options{Tools: op.tools(), ParamsFile: s.ParamsFile})
	if err != nil {
		return err
	}

	p, err := params.Load(s.ParamsFile)
	if err != nil {
		return util.NewExitError(util.ExitUsage, err)
	}
	if err := p.Validate(); err != nil {
		return util.NewExitError(util.ExitUsage, fmt.Errorf("invalid parameter file %s: %w", s.ParamsFile, err))
	}

	fn, ok := a.Operations[op]
	if !ok {
		return fmt.Errorf("operation %s is not implemented", op)
	}
	env := &Env{
		Settings: s,
		Params:   p,
		Identity: identity,
		Clients:  a.Clients,
		Rosa:     rosa,
		Log:      log.Log.WithName(string(op)),
		Out:      a.Out,
	}
	out, err := fn(ctx, env)
	if err != nil {
		if awsutil.IsPermissionsError(err) {
			fmt.Fprintf(a.ErrOut, permissionsHint, identity.ARN)
		}
		return err
	}
	if len(out) == 0 {
		return nil
	}

	fmt.Fprintln(a.Out, "Add these to your environment or parameter file:")
	if err := out.WriteExports(a.Out); err != nil {
		return err
	}
	if err := params.Save(s.ParamsFile, out); err != nil {
		return err
	}
	log.Info("Saved parameters", "file", s.ParamsFile, "count", len(out))
	return nil
}

const longHelp = `hcpctl provisions a ROSA hosted control plane cluster on AWS from the
parameters in a NAME=value file (HCP_PARAMS_FILE, default hcp.env).

Exactly one operation flag must be given. Operations are normally run in
this order, each one saving the identifiers the next one needs:

  --create-vpc          creates the network and saves VPC_ID, PUBLIC_SUBNET_ID, PRIVATE_SUBNET_ID
  --create-permission   creates the roles and OIDC config and saves OIDC_ID, AWS_ACCOUNT_ID
  --install-hcp         installs the cluster
  --create-admin        creates a cluster-admin user
  --install-operators   installs OpenShift GitOps (run oc login first)
  --delete-hcp          deletes the cluster

Required parameters: CLUSTER_NAME, REGION, VPC_CIDR, PUBLIC_CIDR, PRIVATE_CIDR,
ACCOUNT_ROLES_PREFIX, OPERATOR_ROLES_PREFIX.

Exit status is 0 on success, 1 on usage, tool or parameter errors and failed
steps, and 2 when AWS credentials or the rosa login are not usable.`
