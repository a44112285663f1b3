package cli

import (
	"encoding/base64"
	"encoding/hex"
	"io"
	"reflect"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/ugorji/go/codec"

	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
	"github.com/LeJamon/goKurdBase/internal/core/asset"
	"github.com/LeJamon/goKurdBase/internal/core/claimant"
	"github.com/LeJamon/goKurdBase/internal/core/operation"
	"github.com/LeJamon/goKurdBase/internal/core/price"
	"github.com/LeJamon/goKurdBase/internal/core/tx"
)

// jsonHandle renders maps with sorted keys so output is stable.
var jsonHandle = func() *codec.JsonHandle {
	h := &codec.JsonHandle{}
	h.Canonical = true
	h.Indent = 2
	h.HTMLCharsAsIs = true
	return h
}()

func writeJSON(w io.Writer, v any) error {
	if err := codec.NewEncoder(w, jsonHandle).Encode(v); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// describeEnvelope returns a JSON-ready view of a parsed envelope.
func describeEnvelope(env tx.Envelope) map[string]any {
	hash := env.Hash()
	view := map[string]any{
		"hash":       hex.EncodeToString(hash[:]),
		"signatures": describeSignatures(env.Signatures()),
	}
	switch t := env.(type) {
	case *tx.Transaction:
		view["type"] = t.EnvelopeType().String()
		view["source"] = t.Source()
		view["fee"] = int64(t.Fee())
		view["sequence"] = t.Sequence()
		view["memo"] = map[string]any{"type": string(t.Memo().Type()), "value": t.Memo().Value()}
		if tb := t.TimeBounds(); tb != nil {
			view["timeBounds"] = map[string]any{"minTime": tb.MinTime, "maxTime": tb.MaxTime}
		}
		ops := make([]any, 0, len(t.Operations()))
		for _, op := range t.Operations() {
			ops = append(ops, describeOperation(op))
		}
		view["operations"] = ops
	case *tx.FeeBumpTransaction:
		view["type"] = xdr.EnvelopeTypeTxFeeBump.String()
		view["feeSource"] = t.FeeSource()
		view["fee"] = t.Fee()
		view["innerTransaction"] = describeEnvelope(t.InnerTransaction())
	}
	return view
}

func describeSignatures(sigs []xdr.DecoratedSignature) []any {
	out := make([]any, 0, len(sigs))
	for _, sig := range sigs {
		out = append(out, map[string]any{
			"hint":      hex.EncodeToString(sig.Hint[:]),
			"signature": base64.StdEncoding.EncodeToString(sig.Signature),
		})
	}
	return out
}

func describeOperation(op operation.Operation) map[string]any {
	view := map[string]any{
		"type":      op.Type().String(),
		"threshold": string(op.Threshold()),
	}
	if op.Source != "" {
		view["source"] = op.Source
	}
	if body, ok := describeValue(reflect.ValueOf(op.Body)).(map[string]any); ok {
		for k, v := range body {
			view[k] = v
		}
	}
	return view
}

// describeValue walks exported fields, rendering domain values in their
// textual form.
func describeValue(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	if v.CanInterface() {
		switch x := v.Interface().(type) {
		case asset.Asset:
			return x.String()
		case claimant.Claimant:
			return map[string]any{
				"destination": x.Destination(),
				"predicate":   describePredicate(claimant.PredicateToXDR(x.Predicate())),
			}
		case price.Rational:
			return strconv.Itoa(int(x.N)) + "/" + strconv.Itoa(int(x.D))
		case price.Decimal:
			return decimal.Decimal(x).String()
		case []byte:
			return hex.EncodeToString(x)
		}
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return describeValue(v.Elem())
	case reflect.Struct:
		out := make(map[string]any, v.NumField())
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			fv := v.Field(i)
			if (fv.Kind() == reflect.Pointer || fv.Kind() == reflect.Slice) && fv.IsNil() {
				continue
			}
			out[lowerFirst(f.Name)] = describeValue(fv)
		}
		return out
	case reflect.Slice, reflect.Array:
		out := make([]any, v.Len())
		for i := range out {
			out[i] = describeValue(v.Index(i))
		}
		return out
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Bool:
		return v.Bool()
	}
	return nil
}

func describePredicate(p xdr.ClaimPredicate) any {
	switch p.Type {
	case xdr.ClaimPredicateAnd:
		return map[string]any{"and": describePredicates(p.AndPredicates)}
	case xdr.ClaimPredicateOr:
		return map[string]any{"or": describePredicates(p.OrPredicates)}
	case xdr.ClaimPredicateNot:
		if p.NotPredicate == nil {
			return map[string]any{"not": nil}
		}
		return map[string]any{"not": describePredicate(*p.NotPredicate)}
	case xdr.ClaimPredicateBeforeAbsoluteTime:
		if p.AbsBefore != nil {
			return map[string]any{"absBefore": strconv.FormatInt(*p.AbsBefore, 10)}
		}
	case xdr.ClaimPredicateBeforeRelativeTime:
		if p.RelBefore != nil {
			return map[string]any{"relBefore": strconv.FormatInt(*p.RelBefore, 10)}
		}
	}
	return map[string]any{"unconditional": true}
}

func describePredicates(ps []xdr.ClaimPredicate) []any {
	out := make([]any, len(ps))
	for i, p := range ps {
		out[i] = describePredicate(p)
	}
	return out
}

// lowerFirst turns a Go field name into a JSON key: "SendMax" -> "sendMax",
// "OfferID" -> "offerID".
func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[n:]
}
