// Package rosacli drives the rosa command line tool, which is the only
// supported client of the managed cluster service.
package rosacli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openshift/hcpctl/support/runner"
)

const (
	Binary = "rosa"

	// TokenURL is where an operator obtains an offline token for `rosa login`.
	TokenURL = "https://console.redhat.com/openshift/token/rosa"
)

type Client struct {
	runner runner.Runner
}

func New(r runner.Runner) *Client {
	return &Client{runner: r}
}

// Whoami is the subset of `rosa whoami -o json` consumed here.
type Whoami struct {
	AWSAccountID    string `json:"AWS Account ID"`
	AWSARN          string `json:"AWS ARN"`
	OCMAPI          string `json:"OCM API"`
	OCMAccountID    string `json:"OCM Account ID"`
	OCMAccountEmail string `json:"OCM Account Email"`
	OCMUsername     string `json:"OCM Account Username"`
}

type oidcConfig struct {
	ID        string `json:"id"`
	IssuerURL string `json:"issuer_url"`
}

// CreateClusterOptions are the inputs of a hosted control plane STS cluster.
type CreateClusterOptions struct {
	Name                string
	Region              string
	PublicSubnetID      string
	PrivateSubnetID     string
	OIDCConfigID        string
	OperatorRolesPrefix string
	InstallerRoleARN    string
	SupportRoleARN      string
	WorkerRoleARN       string
}

func (o CreateClusterOptions) args() []string {
	return []string{
		"create", "cluster",
		"--cluster-name", o.Name,
		"--sts",
		"--hosted-cp",
		"--mode", "auto",
		"--yes",
		"--region", o.Region,
		"--subnet-ids", strings.Join([]string{o.PublicSubnetID, o.PrivateSubnetID}, ","),
		"--oidc-config-id", o.OIDCConfigID,
		"--operator-roles-prefix", o.OperatorRolesPrefix,
		"--role-arn", o.InstallerRoleARN,
		"--support-role-arn", o.SupportRoleARN,
		"--worker-iam-role", o.WorkerRoleARN,
	}
}

func (c *Client) Whoami(ctx context.Context) (*Whoami, error) {
	out, err := c.runner.Output(ctx, Binary, "whoami", "--output", "json")
	if err != nil {
		return nil, err
	}
	whoami := &Whoami{}
	if err := json.Unmarshal(out, whoami); err != nil {
		return nil, fmt.Errorf("cannot parse rosa whoami output: %w", err)
	}
	return whoami, nil
}

func (c *Client) CreateAccountRoles(ctx context.Context, prefix string) error {
	return c.runner.Run(ctx, Binary, "create", "account-roles",
		"--hosted-cp",
		"--prefix", prefix,
		"--mode", "auto",
		"--yes",
	)
}

// CreateOIDCConfig creates a managed OIDC configuration and returns its id.
func (c *Client) CreateOIDCConfig(ctx context.Context) (string, error) {
	out, err := c.runner.Output(ctx, Binary, "create", "oidc-config",
		"--mode", "auto",
		"--managed",
		"--yes",
		"--output", "json",
	)
	if err != nil {
		return "", err
	}
	cfg := &oidcConfig{}
	if err := json.Unmarshal(out, cfg); err != nil {
		return "", fmt.Errorf("cannot parse oidc-config output: %w", err)
	}
	if cfg.ID == "" {
		return "", fmt.Errorf("oidc-config output did not contain an id")
	}
	return cfg.ID, nil
}

func (c *Client) CreateOperatorRoles(ctx context.Context, prefix, oidcConfigID, installerRoleARN string) error {
	return c.runner.Run(ctx, Binary, "create", "operator-roles",
		"--hosted-cp",
		"--prefix", prefix,
		"--oidc-config-id", oidcConfigID,
		"--installer-role-arn", installerRoleARN,
		"--mode", "auto",
		"--yes",
	)
}

func (c *Client) CreateCluster(ctx context.Context, opts CreateClusterOptions) error {
	return c.runner.Run(ctx, Binary, opts.args()...)
}

func (c *Client) DeleteCluster(ctx context.Context, name string) error {
	return c.runner.Run(ctx, Binary, "delete", "cluster", "--cluster", name, "--yes")
}

// CreateAdmin requests a break-glass cluster-admin user. Credentials are
// printed by rosa itself and never captured.
func (c *Client) CreateAdmin(ctx context.Context, name string) error {
	return c.runner.Run(ctx, Binary, "create", "admin", "--cluster", name)
}
