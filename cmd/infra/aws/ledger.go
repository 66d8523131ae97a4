package aws

import (
	"fmt"
	"strings"
)

type ResourceKind string

const (
	KindVPC                       ResourceKind = "vpc"
	KindSubnet                    ResourceKind = "subnet"
	KindInternetGateway           ResourceKind = "internet-gateway"
	KindInternetGatewayAttachment ResourceKind = "internet-gateway-attachment"
	KindRouteTable                ResourceKind = "route-table"
	KindRouteTableAssociation     ResourceKind = "route-table-association"
	KindElasticIP                 ResourceKind = "elastic-ip"
	KindNATGateway                ResourceKind = "nat-gateway"
)

// Resource is a created cloud object. Parent is the object it was created in
// or attached to, when that matters for teardown.
type Resource struct {
	Kind   ResourceKind
	ID     string
	Parent string
}

func (r Resource) String() string {
	if r.Parent == "" {
		return fmt.Sprintf("%s/%s", r.Kind, r.ID)
	}
	return fmt.Sprintf("%s/%s (%s)", r.Kind, r.ID, r.Parent)
}

// Ledger is the ordered record of resources created by one run.
type Ledger struct {
	resources []Resource
}

func (l *Ledger) Record(kind ResourceKind, id, parent string) {
	l.resources = append(l.resources, Resource{Kind: kind, ID: id, Parent: parent})
}

// Resources returns the recorded resources in creation order.
func (l *Ledger) Resources() []Resource {
	out := make([]Resource, len(l.resources))
	copy(out, l.resources)
	return out
}

func (l *Ledger) String() string {
	parts := make([]string, 0, len(l.resources))
	for _, r := range l.resources {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, ", ")
}
