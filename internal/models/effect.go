package models

// Bucket identifies which cumulative wallet total an effect touches.
type Bucket int

const (
	BucketIncome Bucket = iota + 1
	BucketExpenses
)

// Effect is the signed adjustment a transaction applies to its wallet:
// BalanceDelta to the balance and BucketDelta to exactly one bucket total.
type Effect struct {
	BalanceDelta float64
	Bucket       Bucket
	BucketDelta  float64
}

// EffectOf maps a transaction type and amount to its wallet effect.
// Unknown types produce the zero Effect.
func EffectOf(t TransactionType, amount float64) Effect {
	switch t {
	case TransactionTypeIncome:
		return Effect{BalanceDelta: amount, Bucket: BucketIncome, BucketDelta: amount}
	case TransactionTypeExpense:
		return Effect{BalanceDelta: -amount, Bucket: BucketExpenses, BucketDelta: amount}
	}
	return Effect{}
}

// Inverse returns the effect that cancels e.
func (e Effect) Inverse() Effect {
	return Effect{BalanceDelta: -e.BalanceDelta, Bucket: e.Bucket, BucketDelta: -e.BucketDelta}
}
