package service

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// SecondsPerDay is the day-index granularity shared with the reward
// contract.
const SecondsPerDay = 86400

// SignedClaim is the attestation the on-chain contract redeems.
type SignedClaim struct {
	Score     int64  `json:"score"`
	DayIndex  int64  `json:"day_index"`
	Signature string `json:"signature"`
}

// RewardSigner produces score attestations. The payload layout is a
// hard compatibility constraint with the contract's ecrecover check:
// keccak256(address ++ uint256(score) ++ uint256(dayIndex)), wrapped
// in the eth_sign message prefix, V offset by 27.
type RewardSigner struct {
	key   *ecdsa.PrivateKey
	clock Clock
}

func NewRewardSigner(hexKey string, clock Clock) (*RewardSigner, error) {
	if hexKey == "" {
		return nil, fmt.Errorf("signer private key is empty")
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid signer private key: %w", err)
	}

	return &RewardSigner{key: key, clock: clock}, nil
}

// Address returns the signer's public address, the value the contract
// is configured to trust.
func (s *RewardSigner) Address() common.Address {
	return crypto.PubkeyToAddress(s.key.PublicKey)
}

func (s *RewardSigner) Sign(claimant common.Address, score int64) (*SignedClaim, error) {
	dayIndex := s.clock.Now().Unix() / SecondsPerDay

	payload := crypto.Keccak256(
		claimant.Bytes(),
		common.LeftPadBytes(big.NewInt(score).Bytes(), 32),
		common.LeftPadBytes(big.NewInt(dayIndex).Bytes(), 32),
	)

	sig, err := crypto.Sign(accounts.TextHash(payload), s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign claim: %w", err)
	}
	// Solidity's ecrecover expects V in {27, 28}.
	sig[64] += 27

	return &SignedClaim{
		Score:     score,
		DayIndex:  dayIndex,
		Signature: hexutil.Encode(sig),
	}, nil
}
