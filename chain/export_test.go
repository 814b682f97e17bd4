package chain

// Test bridge: expose the private move-order kernels to chain_test
// without widening the production API.

// OrderSig aliases the private order signature for white-box tests.
type OrderSig = orderSig

var (
	// PressOrder exposes pressOrder for the no-gap invariant tests.
	PressOrder = pressOrder
	// PressesInDirection exposes pressesInDirection.
	PressesInDirection = pressesInDirection
)
