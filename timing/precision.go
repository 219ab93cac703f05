package timing

// A Precision selects the resolution of a fixed-point encoding. For Binary
// encodings the exponent is the number of fractional bits, for Decimal
// encodings it is the number of decimal digits after the second.
type Precision interface {
	Exponent() uint
}

// Binary precisions.
type (
	Bits16 struct{}
	Bits20 struct{}
	Bits24 struct{}
	Bits30 struct{}
	Bits32 struct{}
)

// Exponent returns 16.
func (Bits16) Exponent() uint { return 16 }

// Exponent returns 20.
func (Bits20) Exponent() uint { return 20 }

// Exponent returns 24.
func (Bits24) Exponent() uint { return 24 }

// Exponent returns 30.
func (Bits30) Exponent() uint { return 30 }

// Exponent returns 32.
func (Bits32) Exponent() uint { return 32 }

// Decimal precisions.
type (
	Milli struct{}
	Micro struct{}
	Nano  struct{}
	Pico  struct{}
)

// Exponent returns 3.
func (Milli) Exponent() uint { return 3 }

// Exponent returns 6.
func (Micro) Exponent() uint { return 6 }

// Exponent returns 9.
func (Nano) Exponent() uint { return 9 }

// Exponent returns 12.
func (Pico) Exponent() uint { return 12 }

func exponentOf[P Precision]() uint {
	var p P
	return p.Exponent()
}
