package pricing

// Type identifies how a Pricing computes an amount.
type Type int

const (
	// Unrecognized is any code this build does not know.
	Unrecognized Type = iota
	Free
	Single
	ByNumberObjects
	ByArea
	FromPricingLayer
	FromChildrenOfGroup
	Manual
)

func getTypeCodes() map[Type]string {
	return map[Type]string{
		Free:                "FREE",
		Single:              "SINGLE",
		ByNumberObjects:     "BY_NUMBER_OBJECTS",
		ByArea:              "BY_AREA",
		FromPricingLayer:    "FROM_PRICING_LAYER",
		FromChildrenOfGroup: "FROM_CHILDREN_OF_GROUP",
		Manual:              "MANUAL",
	}
}

// ParseType maps a persisted code to a Type. Unknown codes yield Unrecognized.
func ParseType(code string) Type {
	for t, c := range getTypeCodes() {
		if c == code {
			return t
		}
	}
	return Unrecognized
}

// Code returns the persisted code, or "UNRECOGNIZED".
func (t Type) Code() string {
	if c, ok := getTypeCodes()[t]; ok {
		return c
	}
	return "UNRECOGNIZED"
}

func (t Type) String() string {
	return t.Code()
}

func (t Type) IsRecognized() bool {
	_, ok := getTypeCodes()[t]
	return ok
}

// RequiresUnitPrice reports the types that multiply a unit price.
func (t Type) RequiresUnitPrice() bool {
	return t == Single || t == ByNumberObjects || t == ByArea
}
