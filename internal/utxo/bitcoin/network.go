package bitcoin

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
)

// ChainParams returns the btcd parameters of network.
func ChainParams(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	case "simnet":
		return &chaincfg.SimNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
