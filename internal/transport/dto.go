package transport

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
)

type blockContextDTO struct {
	Height uint32 `json:"height"`
	Time   uint32 `json:"time"`
}

type coinDTO struct {
	Value       int64  `json:"value"`
	PkScript    string `json:"pk_script"`
	BlockHeight uint32 `json:"block_height"`
	BlockTime   uint32 `json:"block_time"`
	Coinbase    bool   `json:"coinbase"`
}

type inputDTO struct {
	TxID      string   `json:"txid"`
	Vout      uint32   `json:"vout"`
	ScriptSig string   `json:"script_sig"`
	Sequence  *uint32  `json:"sequence,omitempty"`
	Witness   []string `json:"witness,omitempty"`
	Coin      coinDTO  `json:"coin"`
}

type outputDTO struct {
	Value    int64  `json:"value"`
	PkScript string `json:"pk_script"`
}

type transactionDTO struct {
	Version  int32       `json:"version"`
	Segwit   bool        `json:"segwit"`
	LockTime uint32      `json:"lock_time"`
	Inputs   []inputDTO  `json:"inputs"`
	Outputs  []outputDTO `json:"outputs"`
}

type validateRequest struct {
	Transaction transactionDTO  `json:"transaction"`
	Block       blockContextDTO `json:"block"`
}

// validateRawRequest carries a serialized transaction. Without a block the candidate
// block after the node tip is used.
type validateRawRequest struct {
	Hex   string           `json:"hex"`
	Block *blockContextDTO `json:"block,omitempty"`
}

type validationResponse struct {
	TxID     string          `json:"txid"`
	Valid    bool            `json:"valid"`
	Fee      uint64          `json:"fee"`
	Weight   int64           `json:"weight"`
	TotalIn  int64           `json:"total_in"`
	TotalOut int64           `json:"total_out"`
	Reason   string          `json:"reason,omitempty"`
	Message  string          `json:"message,omitempty"`
	Block    blockContextDTO `json:"block"`
}

type validationRecordDTO struct {
	BlockHeight uint32    `json:"block_height"`
	BlockHash   string    `json:"block_hash"`
	Index       uint32    `json:"index"`
	Valid       bool      `json:"valid"`
	Fee         uint64    `json:"fee"`
	Weight      int64     `json:"weight"`
	Reason      string    `json:"reason,omitempty"`
	Message     string    `json:"message,omitempty"`
	ValidatedAt time.Time `json:"validated_at"`
}

type validationRecordsResponse struct {
	TxID    string                `json:"txid"`
	Results []validationRecordDTO `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (b blockContextDTO) model() model.BlockContext {
	return model.BlockContext{Height: b.Height, Time: b.Time}
}

func toBlockContextDTO(b model.BlockContext) blockContextDTO {
	return blockContextDTO{Height: b.Height, Time: b.Time}
}

func (t transactionDTO) model() (*model.Transaction, error) {
	tx := &model.Transaction{
		Version:  t.Version,
		IsSegwit: t.Segwit,
		LockTime: t.LockTime,
		Inputs:   make([]model.TxIn, 0, len(t.Inputs)),
		Outputs:  make([]model.TxOut, 0, len(t.Outputs)),
	}

	for i, in := range t.Inputs {
		txIn, err := in.model()
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		tx.Inputs = append(tx.Inputs, txIn)
	}
	for i, out := range t.Outputs {
		pkScript, err := hex.DecodeString(out.PkScript)
		if err != nil {
			return nil, fmt.Errorf("output %d pk_script: %w", i, err)
		}
		tx.Outputs = append(tx.Outputs, model.TxOut{Value: out.Value, PkScript: pkScript})
	}
	return tx, nil
}

func (in inputDTO) model() (model.TxIn, error) {
	var txid chainhash.Hash
	if in.TxID != "" {
		hash, err := chainhash.NewHashFromStr(in.TxID)
		if err != nil {
			return model.TxIn{}, fmt.Errorf("txid: %w", err)
		}
		txid = *hash
	}
	script, err := hex.DecodeString(in.ScriptSig)
	if err != nil {
		return model.TxIn{}, fmt.Errorf("script_sig: %w", err)
	}
	pkScript, err := hex.DecodeString(in.Coin.PkScript)
	if err != nil {
		return model.TxIn{}, fmt.Errorf("coin pk_script: %w", err)
	}

	witness := make([][]byte, 0, len(in.Witness))
	for j, item := range in.Witness {
		raw, err := hex.DecodeString(item)
		if err != nil {
			return model.TxIn{}, fmt.Errorf("witness %d: %w", j, err)
		}
		witness = append(witness, raw)
	}

	sequence := wire.MaxTxInSequenceNum
	if in.Sequence != nil {
		sequence = *in.Sequence
	}

	return model.TxIn{
		Script:   script,
		Sequence: sequence,
		Witness:  witness,
		PreviousOutput: model.OutPoint{
			TxID:        txid,
			Vout:        in.Vout,
			Data:        model.TxOut{Value: in.Coin.Value, PkScript: pkScript},
			BlockHeight: in.Coin.BlockHeight,
			BlockTime:   in.Coin.BlockTime,
			IsCoinbase:  in.Coin.Coinbase,
		},
	}, nil
}

func toValidationRecords(txid string, results []model.ValidationResult) validationRecordsResponse {
	resp := validationRecordsResponse{TxID: txid, Results: make([]validationRecordDTO, 0, len(results))}
	for _, r := range results {
		resp.Results = append(resp.Results, validationRecordDTO{
			BlockHeight: r.BlockHeight,
			BlockHash:   r.BlockHash,
			Index:       r.Index,
			Valid:       r.Valid,
			Fee:         r.Fee,
			Weight:      r.Weight,
			Reason:      r.Reason,
			Message:     r.Message,
			ValidatedAt: r.ValidatedAt,
		})
	}
	return resp
}
