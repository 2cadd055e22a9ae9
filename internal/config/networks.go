package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/blockns-org/bns-cli/internal/domain"
)

// NetworkTable maps 0x-prefixed hex chain IDs to network entries. It is
// the Go rendition of the static chain-id-to-name table the dapp shipped.
type NetworkTable map[string]*Network

// ByChainID looks up a network by hex chain ID (case-insensitive).
func (t NetworkTable) ByChainID(chainID string) *Network {
	if n, ok := t[strings.ToLower(chainID)]; ok {
		return n
	}
	return nil
}

// ByName looks up a network by its display name.
func (t NetworkTable) ByName(name string) *Network {
	for _, n := range t {
		if strings.EqualFold(n.Name, name) {
			return n
		}
	}
	return nil
}

// Sorted returns all entries ordered by chain ID for stable output.
func (t NetworkTable) Sorted() []*Network {
	networks := make([]*Network, 0, len(t))
	for _, n := range t {
		networks = append(networks, n)
	}
	sort.Slice(networks, func(i, j int) bool {
		return networks[i].ChainID < networks[j].ChainID
	})
	return networks
}

// DisplayName returns the configured name for a chain ID, or the raw hex
// ID when the chain is unknown.
func (t NetworkTable) DisplayName(chainID string) string {
	if n := t.ByChainID(chainID); n != nil {
		return n.Name
	}
	return chainID
}

// defaultNetworks covers the chains the registry is commonly deployed on.
// A networks.yaml in the project root extends or overrides these.
var defaultNetworks = NetworkTable{
	"0x1": {
		ChainID:  "0x1",
		Name:     "Ethereum Mainnet",
		RPCURL:   "https://eth.llamarpc.com",
		Explorer: "https://etherscan.io",
		Currency: domain.NativeCurrency{Name: "Ether", Symbol: "ETH", Decimals: 18},
	},
	"0xaa36a7": {
		ChainID:  "0xaa36a7",
		Name:     "Sepolia",
		RPCURL:   "https://rpc.sepolia.org",
		Explorer: "https://sepolia.etherscan.io",
		Currency: domain.NativeCurrency{Name: "Sepolia Ether", Symbol: "ETH", Decimals: 18},
	},
	"0x89": {
		ChainID:  "0x89",
		Name:     "Polygon Mainnet",
		RPCURL:   "https://polygon-rpc.com",
		Explorer: "https://polygonscan.com",
		Currency: domain.NativeCurrency{Name: "MATIC", Symbol: "MATIC", Decimals: 18},
	},
	"0x13881": {
		ChainID:  "0x13881",
		Name:     "Polygon Mumbai Testnet",
		RPCURL:   "https://rpc-mumbai.maticvigil.com/",
		Explorer: "https://mumbai.polygonscan.com",
		Currency: domain.NativeCurrency{Name: "Mumbai Matic", Symbol: "MATIC", Decimals: 18},
	},
}

// networksFile is the on-disk shape of networks.yaml.
type networksFile struct {
	Networks []*Network `yaml:"networks"`
}

// LoadNetworks returns the built-in network table merged with any
// networks.yaml found at the project root. File entries win on conflict.
func LoadNetworks(projectRoot string) (NetworkTable, error) {
	table := NetworkTable{}
	for id, n := range defaultNetworks {
		table[id] = n
	}

	path := filepath.Join(projectRoot, "networks.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return table, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file networksFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for _, n := range file.Networks {
		if n.ChainID == "" {
			return nil, fmt.Errorf("network %q in %s is missing chainId", n.Name, path)
		}
		table[strings.ToLower(n.ChainID)] = n
	}

	return table, nil
}

// joinURL concatenates explorer URL segments without doubling slashes.
func joinURL(base string, parts ...string) string {
	url := strings.TrimRight(base, "/")
	for _, p := range parts {
		url += "/" + strings.Trim(p, "/")
	}
	return url
}
