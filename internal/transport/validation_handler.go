package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/consensus"
	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
)

// maxRequestBytes fits the hex encoding of a transaction at the weight limit.
const maxRequestBytes = 16 << 20

// ValidationHandler serves the JSON validation endpoints.
type ValidationHandler struct {
	evaluator TxEvaluator
	resolver  TxResolver
	tip       BlockContextSource
	results   ResultStore
	metrics   ValidationMetrics
	coin      model.Coin
	network   model.Network
	logger    *zap.Logger
}

// NewValidationHandler wires the validation endpoints. resolver, tip and results may be nil,
// in which case the endpoints that need them answer 501.
func NewValidationHandler(
	evaluator TxEvaluator,
	resolver TxResolver,
	tip BlockContextSource,
	results ResultStore,
	metrics ValidationMetrics,
	coin model.Coin,
	network model.Network,
	logger *zap.Logger,
) *ValidationHandler {
	return &ValidationHandler{
		evaluator: evaluator,
		resolver:  resolver,
		tip:       tip,
		results:   results,
		metrics:   metrics,
		coin:      coin,
		network:   network,
		logger:    logger,
	}
}

// Register mounts the endpoints on the gateway mux.
func (h *ValidationHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		method  string
		pattern string
		handler gwruntime.HandlerFunc
	}{
		{http.MethodPost, "/v1/transactions/validate", h.Validate},
		{http.MethodPost, "/v1/transactions/validate-raw", h.ValidateRaw},
		{http.MethodGet, "/v1/transactions/{txid}/validations", h.Results},
	}
	for _, r := range routes {
		if err := mux.HandlePath(r.method, r.pattern, r.handler); err != nil {
			return fmt.Errorf("register %s %s: %w", r.method, r.pattern, err)
		}
	}
	return nil
}

// Validate checks a transaction whose inputs already carry their coins.
func (h *ValidationHandler) Validate(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req validateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	tx, err := req.Transaction.model()
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	h.writeJSON(w, http.StatusOK, h.evaluate(tx, req.Block.model()))
}

// ValidateRaw decodes a serialized transaction, resolves its coins and checks it.
func (h *ValidationHandler) ValidateRaw(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	if h.resolver == nil {
		h.writeError(w, http.StatusNotImplemented, errors.New("coin resolution is not configured"))
		return
	}

	var req validateRawRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	msg, err := bitcoin.DecodeTransaction(req.Hex)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	var block model.BlockContext
	switch {
	case req.Block != nil:
		block = req.Block.model()
	case h.tip != nil:
		if block, err = h.tip.NextBlockContext(r.Context()); err != nil {
			h.logger.Error("next block context failed", zap.Error(err))
			h.writeError(w, http.StatusBadGateway, errors.New("node unavailable"))
			return
		}
	default:
		h.writeError(w, http.StatusBadRequest, errors.New("block context is required"))
		return
	}

	tx, err := h.resolver.ResolveTransaction(r.Context(), msg)
	if err != nil {
		if errors.Is(err, chain.ErrCoinNotFound) {
			h.writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		h.logger.Error("resolve transaction failed", zap.String("txid", msg.TxHash().String()), zap.Error(err))
		h.writeError(w, http.StatusBadGateway, errors.New("coin resolution failed"))
		return
	}

	h.writeJSON(w, http.StatusOK, h.evaluate(tx, block))
}

// Results returns the stored verdicts for a transaction id.
func (h *ValidationHandler) Results(w http.ResponseWriter, r *http.Request, params map[string]string) {
	if h.results == nil {
		h.writeError(w, http.StatusNotImplemented, errors.New("result store is not configured"))
		return
	}

	txid := params["txid"]
	if _, err := chainhash.NewHashFromStr(txid); err != nil || len(txid) != chainhash.MaxHashStringSize {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid txid %q", txid))
		return
	}

	results, err := h.results.ValidationResultsByTxID(r.Context(), h.coin, h.network, txid)
	if err != nil {
		h.logger.Error("load validation results failed", zap.String("txid", txid), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, errors.New("load validation results failed"))
		return
	}
	if len(results) == 0 {
		h.writeError(w, http.StatusNotFound, fmt.Errorf("no validation results for %s", txid))
		return
	}

	h.writeJSON(w, http.StatusOK, toValidationRecords(txid, results))
}

func (h *ValidationHandler) evaluate(tx *model.Transaction, block model.BlockContext) validationResponse {
	started := time.Now()
	verdict, err := h.evaluator.Evaluate(tx, block)

	resp := validationResponse{
		TxID:     tx.TxHash().String(),
		Valid:    err == nil,
		Fee:      verdict.Fee,
		Weight:   verdict.Weight,
		TotalIn:  verdict.TotalIn,
		TotalOut: verdict.TotalOut,
		Block:    toBlockContextDTO(block),
	}
	if err != nil {
		kind, _ := consensus.KindOf(err)
		resp.Reason = string(kind)
		resp.Message = err.Error()
		resp.Weight = consensus.Weight(tx)
	}

	if h.metrics != nil {
		h.metrics.ObserveTransaction(resp.Reason, resp.Fee, resp.Weight, started)
	}
	return resp
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}

func (h *ValidationHandler) writeError(w http.ResponseWriter, code int, err error) {
	h.writeJSON(w, code, errorResponse{Error: err.Error()})
}

func (h *ValidationHandler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response failed", zap.Error(err))
	}
}
