package util

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/rest"
	crclient "sigs.k8s.io/controller-runtime/pkg/client"
	crconfig "sigs.k8s.io/controller-runtime/pkg/client/config"
)

// GetConfig creates a REST config from the current kubeconfig context
func GetConfig() (*rest.Config, error) {
	cfg, err := crconfig.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("unable to load kubeconfig: %w", err)
	}
	cfg.QPS = 100
	cfg.Burst = 100
	return cfg, nil
}

// GetClient creates a controller-runtime client for the cluster the current context points at
func GetClient(scheme *runtime.Scheme) (crclient.Client, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	client, err := crclient.New(cfg, crclient.Options{Scheme: scheme})
	if err != nil {
		return nil, fmt.Errorf("unable to get kubernetes client: %w", err)
	}
	return client, nil
}

// ParseAWSTags does exactly that
func ParseAWSTags(tags []string) (map[string]string, error) {
	tagMap := make(map[string]string, len(tags))
	for _, tagStr := range tags {
		parts := strings.SplitN(tagStr, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("invalid tag specification: %q (expecting \"key=value\")", tagStr)
		}
		if _, exists := tagMap[parts[0]]; exists {
			return nil, fmt.Errorf("duplicate tag key: %q", parts[0])
		}
		tagMap[parts[0]] = parts[1]
	}
	return tagMap, nil
}
