package keeper

import (
	"cosmossdk.io/math"

	"github.com/veilswap/veil/x/pair/types"
)

// CheckSwapInvariant verifies that applying a priced swap to the reserves
// does not lose value from the pool. offerPool and askPool are the pre-trade
// reserves, returnAmount the net amount leaving the ask pool.
//
// The return formula floors cp/(offer_pool+offer_amount), which can
// overpay the trader by under one ask-side unit; scaled through the product,
// the constant product may dip below old_k by strictly less than one
// offer-side unit of product. Any larger decrease means the pricing math
// lost value and the swap must not be committed.
func CheckSwapInvariant(offerPool, askPool, offerAmount, returnAmount math.Int) error {
	oldK, err := SafeMul(offerPool, askPool)
	if err != nil {
		return err
	}
	newOffer, err := SafeAdd(offerPool, offerAmount)
	if err != nil {
		return err
	}
	newAsk, err := SafeSub(askPool, returnAmount)
	if err != nil {
		return types.ErrInsufficientLiquidity.Wrapf(
			"return amount %s exceeds ask pool %s", returnAmount, askPool)
	}
	newK, err := SafeMul(newOffer, newAsk)
	if err != nil {
		return err
	}
	if newK.Add(newOffer).LTE(oldK) {
		return types.ErrDegenerateState.Wrapf(
			"constant product lost value: old_k=%s, new_k=%s", oldK, newK)
	}
	return nil
}
