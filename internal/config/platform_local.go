//go:build !gcloud

package config

func (c *Config) validatePlatform() error {
	return nil
}
