package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	cfg := &RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, ".bns"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Timeout:        v.GetDuration("timeout"),
		PollInterval:   v.GetDuration("poll_interval"),
	}

	bnsFile, err := loadBNSFile(projectRoot)
	if err != nil {
		return nil, err
	}

	// Flags and env override the project file
	address := firstNonEmpty(v.GetString("contract"), bnsFile.Registry.Address)
	if address == "" {
		return nil, fmt.Errorf("no registry contract address configured (set [registry] address in bns.toml or --contract)")
	}
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid registry contract address: %s", address)
	}
	cfg.ContractAddress = common.HexToAddress(address)

	cfg.TargetChainID = strings.ToLower(firstNonEmpty(v.GetString("chain_id"), bnsFile.Registry.ChainID))
	if cfg.TargetChainID == "" {
		return nil, fmt.Errorf("no target chain configured (set [registry] chain_id in bns.toml or --chain-id)")
	}

	cfg.TLD = firstNonEmpty(v.GetString("tld"), bnsFile.Registry.TLD)
	cfg.WalletRPC = firstNonEmpty(v.GetString("wallet_rpc"), bnsFile.Wallet.RPC)

	networks, err := LoadNetworks(projectRoot)
	if err != nil {
		return nil, err
	}
	cfg.Networks = networks

	cfg.NodeRPC = firstNonEmpty(v.GetString("node_rpc"), bnsFile.Registry.NodeRPC)
	if cfg.NodeRPC == "" {
		if target := cfg.TargetNetwork(); target != nil {
			cfg.NodeRPC = target.RPCURL
		}
	}
	if cfg.NodeRPC == "" {
		return nil, fmt.Errorf("no node RPC endpoint for chain %s (add it to networks.yaml or set --node-rpc)", cfg.TargetChainID)
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to find bns.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		bnsToml := filepath.Join(dir, "bns.toml")
		if _, err := os.Stat(bnsToml); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a bns project (bns.toml not found)")
		}
		dir = parent
	}
}

// loadBNSFile parses bns.toml at the project root. A missing file is not
// an error; everything can come from flags and env.
func loadBNSFile(projectRoot string) (*BNSFile, error) {
	var file BNSFile
	path := filepath.Join(projectRoot, "bns.toml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &file, nil
	}
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &file, nil
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".bns"))

	// Set up environment variables
	v.SetEnvPrefix("BNS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "0")
	v.SetDefault("poll_interval", "2s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)

	v.Set("project_root", projectRoot)

	// Config file is optional
	_ = v.ReadInConfig()

	return v
}

// BindGlobalFlags binds the root command's persistent flags into viper so
// flag values override file and env settings.
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	cmd.Flags().Visit(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		v.Set(key, f.Value.String())
	})
	cmd.InheritedFlags().Visit(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		v.Set(key, f.Value.String())
	})
}

func firstNonEmpty(values ...string) string {
	for _, val := range values {
		if val != "" {
			return val
		}
	}
	return ""
}
