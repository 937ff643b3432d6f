package blockvec

// Floats is a constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Numeric is the constraint satisfied by every block and vector element type.
//
// Each instantiation keeps its native arithmetic: integer division truncates
// toward zero, floating-point operations follow IEEE 754.
type Numeric interface {
	Floats | Integers
}
