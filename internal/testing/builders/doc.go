// Package builders provides fluent transaction builder helpers for testing.
//
// Accounts are derived deterministically from a name, so fixtures do not
// depend on random keys:
//
//	alice, bob := Alice(), Bob()
//	gateway := Gateway()
//
// # Payments
//
//	Pay(alice, bob, "10").Build()
//	PayAsset(alice, bob, USD(gateway), "100.50").MemoText("invoice 7").Build()
//	CreateAccount(alice, bob, "1").SignedBy(alice).Build()
//
// # Trust lines
//
//	TrustUSD(alice, gateway, "1000").Build()
//	TrustLine(alice, EUR(gateway), "").Build() // maximum limit
//	Authorize(gateway, alice, "USD", operation.AuthorizeFlag).Build()
//
// # Offers
//
//	SellOffer(alice, Native(), USD(gateway), "100", "0.25").Build()
//	CancelOffer(alice, Native(), USD(gateway), "42").Build()
//
// # Claimable balances
//
//	Claimable(alice, Native(), "5", bob, carol).Build()
//	TimeLocked(alice, bob, Native(), "5", deadline).Build()
//
// # Timeouts
//
//	clock := NewManualClockAt(time.Unix(1000, 0))
//	Pay(alice, bob, "1").Timeout(30, clock).Build() // MaxTime 1030
//
// Every builder defaults to the base fee, no expiry and the test network;
// Fee, TimeBounds and Network override them. Build advances the source
// account's sequence number like the real builder does.
package builders
