// Package rpcclient dials bitcoind-compatible JSON-RPC endpoints.
package rpcclient

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/btcsuite/btcd/rpcclient"
)

// Dial connects to the node at rawURL in HTTP POST mode. Only plain http endpoints are
// supported.
func Dial(rawURL, user, password string) (*rpcclient.Client, error) {
	cfg, err := ConnConfig(rawURL, user, password)
	if err != nil {
		return nil, err
	}
	return rpcclient.New(cfg, nil)
}

// ConnConfig builds the btcd connection settings for rawURL.
func ConnConfig(rawURL, user, password string) (*rpcclient.ConnConfig, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil
}
