package chain

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-validator/pkg/safe"
)

// ErrCoinNotFound is returned when an input spends a coin that no repository knows about.
var ErrCoinNotFound = errors.New("coin not found")

// coinResolverBatchSize controls how many txids are fetched in one repository call.
// It is a var to allow overriding in tests.
var coinResolverBatchSize = 1000

// CoinResolver attaches resolved coins to transaction inputs. Repositories are consulted in
// order; txids a repository does not know are passed on to the next one.
type CoinResolver struct {
	repos   []CoinRepository
	coin    model.Coin
	network model.Network
}

// NewCoinResolver constructs a CoinResolver for a specific network.
func NewCoinResolver(coin model.Coin, network model.Network, repos ...CoinRepository) *CoinResolver {
	return &CoinResolver{
		repos:   repos,
		coin:    coin,
		network: network,
	}
}

// ResolveBlock converts raw into a block whose inputs carry their coins. Outputs created by
// earlier transactions of the same block are seeded locally and never looked up.
func (r *CoinResolver) ResolveBlock(ctx context.Context, raw *RawBlock) (*model.Block, error) {
	if raw == nil {
		return nil, errors.New("resolve nil block")
	}

	hashes := make([]chainhash.Hash, len(raw.Txs))
	inBlock := make(map[chainhash.Hash]struct{}, len(raw.Txs))
	for i, tx := range raw.Txs {
		hashes[i] = tx.TxHash()
		inBlock[hashes[i]] = struct{}{}
	}

	coins, err := r.fetch(ctx, externalTxIDs(raw.Txs, inBlock))
	if err != nil {
		return nil, fmt.Errorf("resolve prev outputs for block %d: %w", raw.Block.Height, err)
	}

	block := raw.Block
	block.Transactions = make([]model.Transaction, 0, len(raw.Txs))
	block.TxIDs = make([]string, 0, len(raw.Txs))
	for i, msg := range raw.Txs {
		tx, err := attach(msg, coins)
		if err != nil {
			return nil, fmt.Errorf("tx %s: %w", hashes[i], err)
		}
		block.Transactions = append(block.Transactions, tx)
		block.TxIDs = append(block.TxIDs, hashes[i].String())

		if err := seed(coins, hashes[i], msg, block.Context()); err != nil {
			return nil, fmt.Errorf("tx %s: %w", hashes[i], err)
		}
	}

	return &block, nil
}

// ResolveTransaction attaches coins to the inputs of a single transaction.
func (r *CoinResolver) ResolveTransaction(ctx context.Context, msg *wire.MsgTx) (*model.Transaction, error) {
	coins, err := r.fetch(ctx, externalTxIDs([]*wire.MsgTx{msg}, nil))
	if err != nil {
		return nil, fmt.Errorf("resolve prev outputs for tx %s: %w", msg.TxHash(), err)
	}
	tx, err := attach(msg, coins)
	if err != nil {
		return nil, fmt.Errorf("tx %s: %w", msg.TxHash(), err)
	}
	return &tx, nil
}

func externalTxIDs(txs []*wire.MsgTx, inBlock map[chainhash.Hash]struct{}) []string {
	seen := make(map[chainhash.Hash]struct{})
	txids := make([]string, 0)
	for _, tx := range txs {
		if blockchain.IsCoinBaseTx(tx) {
			continue
		}
		for _, in := range tx.TxIn {
			hash := in.PreviousOutPoint.Hash
			if _, ok := inBlock[hash]; ok {
				continue
			}
			if _, dup := seen[hash]; dup {
				continue
			}
			seen[hash] = struct{}{}
			txids = append(txids, hash.String())
		}
	}
	return txids
}

func (r *CoinResolver) fetch(ctx context.Context, txids []string) (map[model.OutPointKey]model.OutPoint, error) {
	coins := make(map[model.OutPointKey]model.OutPoint)
	missing := txids

	for _, repo := range r.repos {
		if len(missing) == 0 {
			break
		}
		found := make(map[string]struct{}, len(missing))

		size := coinResolverBatchSize
		if size <= 0 {
			size = 1000
		}
		for start := 0; start < len(missing); start += size {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			end := start + size
			if end > len(missing) {
				end = len(missing)
			}

			fromRepo, err := repo.CoinsByTxIDs(ctx, r.coin, r.network, missing[start:end])
			if err != nil {
				return nil, fmt.Errorf("query coins for txids: %w", err)
			}
			for txid, unspent := range fromRepo {
				for _, c := range unspent {
					out, err := outPointFromCoin(c)
					if err != nil {
						return nil, fmt.Errorf("coin %s:%d: %w", c.TxID, c.Vout, err)
					}
					coins[out.Key()] = out
				}
				if len(unspent) > 0 {
					found[txid] = struct{}{}
				}
			}
		}

		next := make([]string, 0, len(missing)-len(found))
		for _, txid := range missing {
			if _, ok := found[txid]; !ok {
				next = append(next, txid)
			}
		}
		missing = next
	}

	return coins, nil
}

func attach(msg *wire.MsgTx, coins map[model.OutPointKey]model.OutPoint) (model.Transaction, error) {
	tx := model.Transaction{
		Version:  msg.Version,
		IsSegwit: msg.HasWitness(),
		Inputs:   make([]model.TxIn, 0, len(msg.TxIn)),
		Outputs:  make([]model.TxOut, 0, len(msg.TxOut)),
		LockTime: msg.LockTime,
	}
	coinbase := blockchain.IsCoinBaseTx(msg)

	for idx, in := range msg.TxIn {
		key := model.OutPointKey{TxID: in.PreviousOutPoint.Hash, Vout: in.PreviousOutPoint.Index}
		prev := model.OutPoint{TxID: key.TxID, Vout: key.Vout}
		if !coinbase {
			resolved, ok := coins[key]
			if !ok {
				return model.Transaction{}, fmt.Errorf("input %d spends %s:%d: %w", idx, key.TxID, key.Vout, ErrCoinNotFound)
			}
			prev = resolved
		}

		var witness [][]byte
		if len(in.Witness) > 0 {
			witness = make([][]byte, len(in.Witness))
			copy(witness, in.Witness)
		}
		tx.Inputs = append(tx.Inputs, model.TxIn{
			Script:         in.SignatureScript,
			Sequence:       in.Sequence,
			PreviousOutput: prev,
			Witness:        witness,
		})
	}

	for _, out := range msg.TxOut {
		tx.Outputs = append(tx.Outputs, model.TxOut{Value: out.Value, PkScript: out.PkScript})
	}
	return tx, nil
}

func seed(coins map[model.OutPointKey]model.OutPoint, hash chainhash.Hash, msg *wire.MsgTx, block model.BlockContext) error {
	coinbase := blockchain.IsCoinBaseTx(msg)
	for idx, out := range msg.TxOut {
		vout, err := safe.Uint32(idx)
		if err != nil {
			return fmt.Errorf("output index overflow: %w", err)
		}
		coins[model.OutPointKey{TxID: hash, Vout: vout}] = model.OutPoint{
			TxID:        hash,
			Vout:        vout,
			Data:        model.TxOut{Value: out.Value, PkScript: out.PkScript, Cached: true},
			BlockHeight: block.Height,
			BlockTime:   block.Time,
			IsCoinbase:  coinbase,
		}
	}
	return nil
}

func outPointFromCoin(c model.UnspentCoin) (model.OutPoint, error) {
	hash, err := chainhash.NewHashFromStr(c.TxID)
	if err != nil {
		return model.OutPoint{}, fmt.Errorf("parse txid: %w", err)
	}
	script, err := hex.DecodeString(c.PkScriptHex)
	if err != nil {
		return model.OutPoint{}, fmt.Errorf("decode pk script: %w", err)
	}
	blockTime, err := clock.UnixSeconds(c.BlockTime)
	if err != nil {
		return model.OutPoint{}, err
	}
	return model.OutPoint{
		TxID:        *hash,
		Vout:        c.Vout,
		Data:        model.TxOut{Value: c.Value, PkScript: script},
		BlockHeight: c.BlockHeight,
		BlockTime:   blockTime,
		IsCoinbase:  c.IsCoinbase,
	}, nil
}

// CreatedCoins returns the coins created by every transaction of block, ready to be stored
// so that later blocks can resolve them.
func CreatedCoins(block *model.Block) ([]model.UnspentCoin, error) {
	if len(block.TxIDs) != len(block.Transactions) {
		return nil, fmt.Errorf("block %d has %d txids for %d transactions", block.Height, len(block.TxIDs), len(block.Transactions))
	}

	blockTime := block.Timestamp()
	coins := make([]model.UnspentCoin, 0, len(block.Transactions))
	for i := range block.Transactions {
		tx := &block.Transactions[i]
		coinbase := tx.IsCoinbase()
		for idx, out := range tx.Outputs {
			vout, err := safe.Uint32(idx)
			if err != nil {
				return nil, fmt.Errorf("tx %s output index overflow: %w", block.TxIDs[i], err)
			}
			coins = append(coins, model.UnspentCoin{
				Coin:        block.Coin,
				Network:     block.Network,
				TxID:        block.TxIDs[i],
				Vout:        vout,
				Value:       out.Value,
				PkScriptHex: hex.EncodeToString(out.PkScript),
				BlockHeight: block.Height,
				BlockTime:   blockTime,
				IsCoinbase:  coinbase,
			})
		}
	}
	return coins, nil
}
