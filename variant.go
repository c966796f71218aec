package parsearch

import (
	"strconv"

	"github.com/hupe1980/parsearch/internal/round"
)

// Variant selects the boundary convention the workers follow.
type Variant int

const (
	// RightLooking workers compare themselves with the next worker; rounds run
	// until one candidate is left, which is then checked for equality.
	RightLooking Variant = iota

	// LeftLooking workers compare themselves with the previous worker; rounds run
	// until the target is found or the interval is empty.
	LeftLooking

	// RightLookingSweep runs right-looking rounds until at most P slots remain and
	// checks those in a single parallel sweep.
	RightLookingSweep
)

// Variants returns all supported variants.
func Variants() []Variant {
	return []Variant{RightLooking, LeftLooking, RightLookingSweep}
}

// String returns the stable name of the variant.
func (v Variant) String() string {
	switch v {
	case RightLooking:
		return "right-looking"
	case LeftLooking:
		return "left-looking"
	case RightLookingSweep:
		return "right-looking-sweep"
	default:
		return "variant(" + strconv.Itoa(int(v)) + ")"
	}
}

// ParseVariant returns the variant with the given name.
func ParseVariant(name string) (Variant, error) {
	for _, v := range Variants() {
		if v.String() == name {
			return v, nil
		}
	}
	return 0, &ErrInvalidVariant{Variant: name}
}

func (v Variant) policy() (round.Policy, bool) {
	switch v {
	case RightLooking:
		return round.RightLooking{}, true
	case LeftLooking:
		return round.LeftLooking{}, true
	case RightLookingSweep:
		return round.RightLookingSweep{}, true
	default:
		return nil, false
	}
}
