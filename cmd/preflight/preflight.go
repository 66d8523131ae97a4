// Package preflight verifies that the local tools, the cloud credentials, the
// cluster service session and the parameter file are all usable before any
// provisioning step mutates state.
package preflight

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/openshift/hcpctl/cmd/params"
	"github.com/openshift/hcpctl/cmd/util"
	"github.com/openshift/hcpctl/support/awsapi"
	"github.com/openshift/hcpctl/support/awsutil"
	"github.com/openshift/hcpctl/support/rosacli"
	"github.com/openshift/hcpctl/support/runner"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/fatih/color"
)

// Tool is a command line binary an operation shells out to.
type Tool struct {
	// Name is the binary looked up in PATH.
	Name string
	// VersionArgs proves the binary actually runs.
	VersionArgs []string
	InstallURL  string
}

var (
	AWSTool = Tool{
		Name:        "aws",
		VersionArgs: []string{"--version"},
		InstallURL:  "https://docs.aws.amazon.com/cli/latest/userguide/getting-started-install.html",
	}
	RosaTool = Tool{
		Name:        rosacli.Binary,
		VersionArgs: []string{"version"},
		InstallURL:  "https://console.redhat.com/openshift/downloads",
	}
	OCTool = Tool{
		Name:        "oc",
		VersionArgs: []string{"version", "--client"},
		InstallURL:  "https://console.redhat.com/openshift/downloads",
	}
)

// DefaultTools are required by every operation.
func DefaultTools() []Tool {
	return []Tool{AWSTool, RosaTool}
}

// ClusterTools are required by operations that talk to the running cluster.
func ClusterTools() []Tool {
	return append(DefaultTools(), OCTool)
}

var ocmAccountIDPattern = regexp.MustCompile(`^[0-9A-Za-z]+$`)

// Identity is the AWS principal the gate resolved.
type Identity struct {
	AccountID string
	ARN       string
	Partition string
}

type Options struct {
	Tools      []Tool
	ParamsFile string
}

type Gate struct {
	Runner runner.Runner
	STS    awsapi.STSAPI
	Rosa   *rosacli.Client
	Out    io.Writer
}

// Run executes every check in order and stops at the first failure. The
// returned error carries the exit status for the failed check.
func (g *Gate) Run(ctx context.Context, opts Options) (*Identity, error) {
	for _, tool := range opts.Tools {
		if err := g.checkTool(ctx, tool); err != nil {
			g.failed(fmt.Sprintf("%s CLI", tool.Name), fmt.Sprintf("install it from %s", tool.InstallURL))
			return nil, util.NewExitError(util.ExitUsage, err)
		}
		g.pass(fmt.Sprintf("%s CLI", tool.Name))
	}

	identity, err := g.checkCredentials(ctx)
	if err != nil {
		g.failed("AWS credentials", "configure credentials with `aws configure` or the AWS_PROFILE environment variable")
		return nil, util.NewExitError(util.ExitAuth, err)
	}
	g.pass("AWS credentials")

	if err := g.checkSession(ctx); err != nil {
		g.failed("ROSA login", fmt.Sprintf("get an offline token from %s and run `rosa login --token=<token>`", rosacli.TokenURL))
		return nil, util.NewExitError(util.ExitAuth, err)
	}
	g.pass("ROSA login")

	ok, err := params.Exists(opts.ParamsFile)
	if err == nil && !ok {
		err = fmt.Errorf("%w: %s", params.ErrNotFound, opts.ParamsFile)
	}
	if err != nil {
		g.failed("parameter file", fmt.Sprintf("create %s with the cluster inputs or point HCP_PARAMS_FILE at it", opts.ParamsFile))
		return nil, util.NewExitError(util.ExitUsage, err)
	}
	g.pass("parameter file")

	return identity, nil
}

func (g *Gate) checkTool(ctx context.Context, tool Tool) error {
	if _, err := g.Runner.LookPath(tool.Name); err != nil {
		return fmt.Errorf("%s CLI not found: %w", tool.Name, err)
	}
	if _, err := g.Runner.Output(ctx, tool.Name, tool.VersionArgs...); err != nil {
		return fmt.Errorf("%s CLI is not invocable: %w", tool.Name, err)
	}
	return nil
}

func (g *Gate) checkCredentials(ctx context.Context) (*Identity, error) {
	out, err := g.STS.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get caller identity: %w", err)
	}
	accountID := aws.ToString(out.Account)
	if !awsutil.IsValidAccountID(accountID) {
		return nil, fmt.Errorf("invalid AWS account %q returned by caller identity", accountID)
	}
	partition, err := awsutil.PartitionFromARN(aws.ToString(out.Arn))
	if err != nil {
		return nil, err
	}
	return &Identity{
		AccountID: accountID,
		ARN:       aws.ToString(out.Arn),
		Partition: partition,
	}, nil
}

func (g *Gate) checkSession(ctx context.Context) error {
	whoami, err := g.Rosa.Whoami(ctx)
	if err != nil {
		return fmt.Errorf("rosa session is not usable: %w", err)
	}
	id := strings.TrimSpace(whoami.OCMAccountID)
	if !ocmAccountIDPattern.MatchString(id) {
		return errors.New("rosa session has no valid OCM account, log in again")
	}
	return nil
}

func (g *Gate) pass(check string) {
	fmt.Fprintf(g.Out, "Checking %s... %s\n", check, color.GreenString("Pass"))
}

func (g *Gate) failed(check, hint string) {
	fmt.Fprintf(g.Out, "Checking %s... %s\n", check, color.RedString("Failed"))
	fmt.Fprintf(g.Out, "  %s\n", hint)
}
