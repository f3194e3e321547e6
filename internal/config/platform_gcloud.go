//go:build gcloud

package config

func (c *Config) validatePlatform() error {
	if c.GCPProjectID == "" {
		return ErrGCPProjectIDMissing
	}
	return nil
}
