//go:build !gcloud

package metrics

import "context"

// NewProvider records instruments locally without exporting them.
func NewProvider(_ context.Context, cfg Config) (*Provider, error) {
	return newNoopProvider(cfg), nil
}
