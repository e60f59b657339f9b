//go:build !gcloud

package config

// Validate accepts an empty NATS_URL, which turns event publishing off.
func (c *PubSubConfig) Validate() error {
	return nil
}
