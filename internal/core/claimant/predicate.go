package claimant

import (
	"strconv"

	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

// Predicate is a node of a claim condition tree. The set of
// implementations is closed.
type Predicate interface {
	toXDR() xdr.ClaimPredicate
	isPredicate()
}

type unconditional struct{}

type beforeAbsolute struct{ at int64 }

type beforeRelative struct{ seconds int64 }

type not struct{ inner Predicate }

type and struct{ left, right Predicate }

type or struct{ left, right Predicate }

func (unconditional) isPredicate()  {}
func (beforeAbsolute) isPredicate() {}
func (beforeRelative) isPredicate() {}
func (not) isPredicate()            {}
func (and) isPredicate()            {}
func (or) isPredicate()             {}

// Unconditional lets the claimant claim at any time.
func Unconditional() Predicate { return unconditional{} }

// BeforeAbsoluteTime holds while the close time is before the given unix
// timestamp, passed as a decimal string.
func BeforeAbsoluteTime(unix string) (Predicate, error) {
	v, err := parseInt64("absBefore", unix)
	if err != nil {
		return nil, err
	}
	return beforeAbsolute{at: v}, nil
}

// BeforeRelativeTime holds for the given number of seconds after the
// balance is created.
func BeforeRelativeTime(seconds string) (Predicate, error) {
	v, err := parseInt64("relBefore", seconds)
	if err != nil {
		return nil, err
	}
	return beforeRelative{seconds: v}, nil
}

// Not negates p.
func Not(p Predicate) (Predicate, error) {
	if p == nil {
		return nil, errInvalidPredicate
	}
	return not{inner: p}, nil
}

// And holds when both a and b hold.
func And(a, b Predicate) (Predicate, error) {
	if a == nil || b == nil {
		return nil, errInvalidPredicate
	}
	return and{left: a, right: b}, nil
}

// Or holds when either a or b holds.
func Or(a, b Predicate) (Predicate, error) {
	if a == nil || b == nil {
		return nil, errInvalidPredicate
	}
	return or{left: a, right: b}, nil
}

var errInvalidPredicate = kerrors.Validation("predicate", "Predicate should be a claim predicate")

func parseInt64(field, s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, kerrors.Validation(field, "%s must be a decimal int64 string", field)
	}
	return v, nil
}

func (unconditional) toXDR() xdr.ClaimPredicate {
	return xdr.ClaimPredicate{Type: xdr.ClaimPredicateUnconditional}
}

func (p beforeAbsolute) toXDR() xdr.ClaimPredicate {
	v := p.at
	return xdr.ClaimPredicate{Type: xdr.ClaimPredicateBeforeAbsoluteTime, AbsBefore: &v}
}

func (p beforeRelative) toXDR() xdr.ClaimPredicate {
	v := p.seconds
	return xdr.ClaimPredicate{Type: xdr.ClaimPredicateBeforeRelativeTime, RelBefore: &v}
}

func (p not) toXDR() xdr.ClaimPredicate {
	inner := p.inner.toXDR()
	return xdr.ClaimPredicate{Type: xdr.ClaimPredicateNot, NotPredicate: &inner}
}

func (p and) toXDR() xdr.ClaimPredicate {
	return xdr.ClaimPredicate{
		Type:          xdr.ClaimPredicateAnd,
		AndPredicates: []xdr.ClaimPredicate{p.left.toXDR(), p.right.toXDR()},
	}
}

func (p or) toXDR() xdr.ClaimPredicate {
	return xdr.ClaimPredicate{
		Type:         xdr.ClaimPredicateOr,
		OrPredicates: []xdr.ClaimPredicate{p.left.toXDR(), p.right.toXDR()},
	}
}

// PredicateToXDR returns the wire form of p.
func PredicateToXDR(p Predicate) xdr.ClaimPredicate {
	return p.toXDR()
}

// PredicateFromXDR rebuilds a Predicate from its wire form.
func PredicateFromXDR(x xdr.ClaimPredicate) (Predicate, error) {
	switch x.Type {
	case xdr.ClaimPredicateUnconditional:
		return unconditional{}, nil
	case xdr.ClaimPredicateBeforeAbsoluteTime:
		if x.AbsBefore != nil {
			return beforeAbsolute{at: *x.AbsBefore}, nil
		}
	case xdr.ClaimPredicateBeforeRelativeTime:
		if x.RelBefore != nil {
			return beforeRelative{seconds: *x.RelBefore}, nil
		}
	case xdr.ClaimPredicateNot:
		if x.NotPredicate != nil {
			inner, err := PredicateFromXDR(*x.NotPredicate)
			if err != nil {
				return nil, err
			}
			return not{inner: inner}, nil
		}
	case xdr.ClaimPredicateAnd:
		l, r, err := pairFromXDR(x.AndPredicates)
		if err != nil {
			return nil, err
		}
		return and{left: l, right: r}, nil
	case xdr.ClaimPredicateOr:
		l, r, err := pairFromXDR(x.OrPredicates)
		if err != nil {
			return nil, err
		}
		return or{left: l, right: r}, nil
	}
	return nil, kerrors.Decode(xdr.ErrUnknownDiscriminant, "claim predicate %d", x.Type)
}

func pairFromXDR(ps []xdr.ClaimPredicate) (Predicate, Predicate, error) {
	if len(ps) != 2 {
		return nil, nil, kerrors.Decode(xdr.ErrMaxLength, "claim predicate needs 2 children, got %d", len(ps))
	}
	l, err := PredicateFromXDR(ps[0])
	if err != nil {
		return nil, nil, err
	}
	r, err := PredicateFromXDR(ps[1])
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}
