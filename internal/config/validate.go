package config

import (
	"fmt"
)

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if err := validateWindow(&c.Window); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	if err := validateDisplay(&c.Display); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

func validateWindow(wc *WindowConfig) error {
	if wc.SizerThickness < 0 {
		return fmt.Errorf("sizer thickness cannot be negative")
	}
	if wc.BorderRadius < 0 {
		return fmt.Errorf("border radius cannot be negative")
	}
	if wc.MinWidth < 0 || wc.MinHeight < 0 {
		return fmt.Errorf("minimum size cannot be negative")
	}

	// Options parses the policy and every length
	if _, err := wc.Options(); err != nil {
		return err
	}
	return nil
}

func validateDisplay(d *DisplayConfig) error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %vx%v", d.Width, d.Height)
	}
	if d.ContentWidth < 0 || d.ContentHeight < 0 {
		return fmt.Errorf("content size cannot be negative")
	}
	return nil
}
