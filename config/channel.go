package config

import (
	"errors"
	"fmt"
)

// Errors returned when a sales channel has no usable Easy credentials
var (
	ErrMissingEnvironment = errors.New("no Easy environment configured")
	ErrMissingSecretKey   = errors.New("no Easy secret key configured")
)

//go:generate mockgen -source=channel.go -destination=mock_channel.go -package=config

// ChannelConfig resolves checkout settings for a sales channel. Settings are
// looked up fresh on every call so concurrent requests for different channels
// never observe each other's credentials.
type ChannelConfig interface {
	Environment(channelID string) (string, error)
	SecretKey(channelID string) (string, error)
	TermsAndConditionsURL(channelID string) (string, error)
	ChargeNow(channelID string) (string, error)
	CheckoutFinishURL(channelID string) (string, error)
}

// Channels is the ChannelConfig implementation backed by service
// configuration. Every channel currently shares one set of Easy credentials.
type Channels struct {
	Cfg *Config
}

// Environment returns the Easy environment for the channel
func (c *Channels) Environment(channelID string) (string, error) {
	if c.Cfg.EasyEnvironment == "" {
		return "", fmt.Errorf("sales channel [%s]: %w", channelID, ErrMissingEnvironment)
	}
	return c.Cfg.EasyEnvironment, nil
}

// SecretKey returns the Easy secret key for the channel
func (c *Channels) SecretKey(channelID string) (string, error) {
	if c.Cfg.EasySecretKey == "" {
		return "", fmt.Errorf("sales channel [%s]: %w", channelID, ErrMissingSecretKey)
	}
	return c.Cfg.EasySecretKey, nil
}

// TermsAndConditionsURL returns the terms URL sent with every checkout
func (c *Channels) TermsAndConditionsURL(channelID string) (string, error) {
	return c.Cfg.TermsURL, nil
}

// ChargeNow returns "yes" when payments for the channel are captured
// immediately
func (c *Channels) ChargeNow(channelID string) (string, error) {
	return c.Cfg.ChargeNow, nil
}

// CheckoutFinishURL returns the finish page URL for embedded checkouts
func (c *Channels) CheckoutFinishURL(channelID string) (string, error) {
	return c.Cfg.CheckoutFinishURL, nil
}
