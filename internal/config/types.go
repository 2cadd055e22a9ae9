package config

import (
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/blockns-org/bns-cli/internal/domain"
)

// RuntimeConfig represents the complete runtime configuration.
// This is injected into use cases and contains all resolved settings.
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Registry settings
	ContractAddress common.Address
	TargetChainID   string // 0x-prefixed hex, chain the registry is deployed on
	TLD             string // display-only suffix, never part of the stored name

	// Endpoints
	WalletRPC string // wallet provider bridge endpoint
	NodeRPC   string // node endpoint; falls back to the target network's RPC URL

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration
	PollInterval   time.Duration // receipt and provider-event polling cadence

	// Resolved configurations
	Networks NetworkTable
}

// TargetNetwork returns the network entry for the registry's chain, or nil
// if the table has no entry for it.
func (c *RuntimeConfig) TargetNetwork() *Network {
	return c.Networks.ByChainID(c.TargetChainID)
}

// Network describes one chain the client knows how to display and, when
// the provider lacks it, register via an add-chain request.
type Network struct {
	ChainID  string                `yaml:"chainId"`
	Name     string                `yaml:"name"`
	RPCURL   string                `yaml:"rpcUrl"`
	Explorer string                `yaml:"explorer,omitempty"`
	Currency domain.NativeCurrency `yaml:"currency"`
}

// Descriptor converts the network entry into the add-chain request shape
// the wallet provider expects.
func (n *Network) Descriptor() domain.ChainDescriptor {
	d := domain.ChainDescriptor{
		ChainID:        n.ChainID,
		ChainName:      n.Name,
		RPCURLs:        []string{n.RPCURL},
		NativeCurrency: n.Currency,
	}
	if n.Explorer != "" {
		d.BlockExplorerURLs = []string{n.Explorer}
	}
	return d
}

// TxURL returns the explorer link for a transaction hash, or "" when the
// network has no explorer configured.
func (n *Network) TxURL(hash common.Hash) string {
	if n.Explorer == "" {
		return ""
	}
	return joinURL(n.Explorer, "tx", hash.Hex())
}

// BNSFile is the parsed bns.toml project file.
type BNSFile struct {
	Registry RegistryFileConfig `toml:"registry"`
	Wallet   WalletFileConfig   `toml:"wallet"`
}

// RegistryFileConfig is the [registry] section of bns.toml.
type RegistryFileConfig struct {
	Address string `toml:"address"`
	ChainID string `toml:"chain_id"`
	TLD     string `toml:"tld,omitempty"`
	NodeRPC string `toml:"node_rpc,omitempty"`
}

// WalletFileConfig is the [wallet] section of bns.toml.
type WalletFileConfig struct {
	RPC string `toml:"rpc,omitempty"`
}
