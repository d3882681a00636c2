package model

type Coin string
type Network string

var (
	BTC Coin = "BTC"
	LTC Coin = "LTC"
	RVN Coin = "RVN"
)

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
	Signet  Network = "signet"
	Simnet  Network = "simnet"
)
