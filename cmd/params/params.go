// Package params loads and persists the parameter set: a shell-sourceable
// NAME=value file that carries the user supplied cluster inputs and the
// identifiers produced by earlier provisioning steps.
package params

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"os"
	"regexp"
	"strings"

	"gopkg.in/ini.v1"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

const (
	ClusterName         = "CLUSTER_NAME"
	Region              = "REGION"
	VPCCIDR             = "VPC_CIDR"
	PublicCIDR          = "PUBLIC_CIDR"
	PrivateCIDR         = "PRIVATE_CIDR"
	AccountRolesPrefix  = "ACCOUNT_ROLES_PREFIX"
	OperatorRolesPrefix = "OPERATOR_ROLES_PREFIX"
	AdditionalTags      = "ADDITIONAL_TAGS"

	VPCID           = "VPC_ID"
	PublicSubnetID  = "PUBLIC_SUBNET_ID"
	PrivateSubnetID = "PRIVATE_SUBNET_ID"
	OIDCConfigID    = "OIDC_ID"
	AccountID       = "AWS_ACCOUNT_ID"

	exportPrefix = "export "
)

// UserKeys are the parameters that must be present before any operation runs.
var UserKeys = []string{
	ClusterName,
	Region,
	VPCCIDR,
	PublicCIDR,
	PrivateCIDR,
	AccountRolesPrefix,
	OperatorRolesPrefix,
}

// ErrNotFound is returned by Load when the parameter file does not exist.
var ErrNotFound = errors.New("parameter file not found")

type Params struct {
	ClusterName         string
	Region              string
	VPCCIDR             string
	PublicCIDR          string
	PrivateCIDR         string
	AccountRolesPrefix  string
	OperatorRolesPrefix string
	AdditionalTags      []string

	VPCID           string
	PublicSubnetID  string
	PrivateSubnetID string
	OIDCConfigID    string
	AccountID       string

	raw map[string]string
}

func loadOptions() ini.LoadOptions {
	return ini.LoadOptions{
		SkipUnrecognizableLines: true,
		IgnoreInlineComment:     true,
		KeyValueDelimiters:      "=",
	}
}

// Exists reports whether the parameter file is present.
func Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cannot stat parameter file %s: %w", path, err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("parameter file %s is a directory", path)
	}
	return true, nil
}

// Load reads the parameter file. It does not validate; see Validate.
func Load(path string) (*Params, error) {
	ok, err := Exists(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	f, err := ini.LoadSources(loadOptions(), path)
	if err != nil {
		return nil, fmt.Errorf("cannot parse parameter file %s: %w", path, err)
	}
	raw := map[string]string{}
	for _, key := range f.Section(ini.DefaultSection).Keys() {
		raw[normalizeKey(key.Name())] = key.String()
	}
	return fromMap(raw), nil
}

func fromMap(raw map[string]string) *Params {
	p := &Params{
		ClusterName:         raw[ClusterName],
		Region:              raw[Region],
		VPCCIDR:             raw[VPCCIDR],
		PublicCIDR:          raw[PublicCIDR],
		PrivateCIDR:         raw[PrivateCIDR],
		AccountRolesPrefix:  raw[AccountRolesPrefix],
		OperatorRolesPrefix: raw[OperatorRolesPrefix],
		VPCID:               raw[VPCID],
		PublicSubnetID:      raw[PublicSubnetID],
		PrivateSubnetID:     raw[PrivateSubnetID],
		OIDCConfigID:        raw[OIDCConfigID],
		AccountID:           raw[AccountID],
		raw:                 raw,
	}
	for _, tag := range strings.Split(raw[AdditionalTags], ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			p.AdditionalTags = append(p.AdditionalTags, tag)
		}
	}
	return p
}

func normalizeKey(name string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(name), exportPrefix))
}

// Validate checks that every user supplied parameter is present and that the
// CIDR ranges are well formed and nested.
func (p *Params) Validate() error {
	var errs []error
	for _, key := range UserKeys {
		if strings.TrimSpace(p.raw[key]) == "" {
			errs = append(errs, fmt.Errorf("missing required parameter %s", key))
		}
	}
	if len(errs) > 0 {
		return utilerrors.NewAggregate(errs)
	}

	_, vpcNet, err := net.ParseCIDR(p.VPCCIDR)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", VPCCIDR, p.VPCCIDR, err)
	}
	for _, subnet := range []struct{ key, value string }{
		{PublicCIDR, p.PublicCIDR},
		{PrivateCIDR, p.PrivateCIDR},
	} {
		ip, subnetNet, err := net.ParseCIDR(subnet.value)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s %q: %w", subnet.key, subnet.value, err))
			continue
		}
		vpcOnes, _ := vpcNet.Mask.Size()
		subnetOnes, _ := subnetNet.Mask.Size()
		if !vpcNet.Contains(ip) || subnetOnes < vpcOnes {
			errs = append(errs, fmt.Errorf("%s %s is not inside %s %s", subnet.key, subnet.value, VPCCIDR, p.VPCCIDR))
		}
	}
	return utilerrors.NewAggregate(errs)
}

// RequireDerived fails when any of the named keys has not been produced by an earlier operation yet.
func (p *Params) RequireDerived(keys ...string) error {
	var errs []error
	for _, key := range keys {
		if strings.TrimSpace(p.raw[key]) == "" {
			errs = append(errs, fmt.Errorf("missing parameter %s, run the step that produces it first", key))
		}
	}
	return utilerrors.NewAggregate(errs)
}

// KeyValue is a single derived parameter.
type KeyValue struct {
	Key   string
	Value string
}

// Output is the ordered set of values an operation produced.
type Output []KeyValue

// WriteExports prints the output as a block of shell export statements.
func (o Output) WriteExports(w io.Writer) error {
	for _, kv := range o {
		if _, err := fmt.Fprintf(w, "%s%s=%s\n", exportPrefix, kv.Key, shellQuote(kv.Value)); err != nil {
			return err
		}
	}
	return nil
}

var (
	shellName      = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	shellSafeValue = regexp.MustCompile(`^[A-Za-z0-9_@%+=:,./-]*$`)
)

// shellQuote single quotes v unless every byte is safe unquoted.
func shellQuote(v string) string {
	if shellSafeValue.MatchString(v) {
		return v
	}
	return "'" + strings.ReplaceAll(v, "'", `'\''`) + "'"
}

// assignment returns the variable name and the offset of '=' when line is a
// NAME=value or export NAME=value statement.
func assignment(line string) (string, int, bool) {
	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		return "", 0, false
	}
	name := strings.TrimSpace(line[:eq])
	name = strings.TrimSpace(strings.TrimPrefix(name, exportPrefix))
	if !shellName.MatchString(name) {
		return "", 0, false
	}
	return name, eq, true
}

// Save records the output in the parameter file. Assignments to keys in out
// are rewritten in place, missing keys are appended in the style the file
// already uses and every other line is kept as is.
func Save(path string, out Output) error {
	if len(out) == 0 {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot stat parameter file %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read parameter file %s: %w", path, err)
	}

	values := make(map[string]string, len(out))
	for _, kv := range out {
		values[kv.Key] = kv.Value
	}

	var lines []string
	if len(data) > 0 {
		lines = strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	}
	written := map[string]bool{}
	useExport := false
	for i, line := range lines {
		name, eq, ok := assignment(line)
		if !ok {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), exportPrefix) {
			useExport = true
		}
		value, update := values[name]
		if !update {
			continue
		}
		lines[i] = line[:eq+1] + shellQuote(value)
		written[name] = true
	}

	for _, kv := range out {
		if written[kv.Key] {
			continue
		}
		prefix := ""
		if useExport {
			prefix = exportPrefix
		}
		lines = append(lines, prefix+kv.Key+"="+shellQuote(kv.Value))
		written[kv.Key] = true
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), info.Mode().Perm()); err != nil {
		return fmt.Errorf("cannot write parameter file %s: %w", path, err)
	}
	return nil
}
