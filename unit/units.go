package unit

// Unit tags the magnitude of a Value.
type Unit int

const (
	// Undefined is the unit of the zero Value.
	Undefined Unit = iota
	// Unitless marks a dimensionless Value.
	Unitless
	// PgC is petagrams of carbon.
	PgC
	// PgCPerYear is a carbon flux in petagrams per year.
	PgCPerYear
	// PPMVCO2 is an atmospheric CO2 concentration.
	PPMVCO2
	// GtC is gigatonnes of carbon.
	GtC
)

// String returns the unit's display name.
func (u Unit) String() string {
	switch u {
	case Undefined:
		return "(undefined)"
	case Unitless:
		return "(unitless)"
	case PgC:
		return "Pg C"
	case PgCPerYear:
		return "Pg C/yr"
	case PPMVCO2:
		return "ppmv CO2"
	case GtC:
		return "Gt C"
	default:
		return "unknown"
	}
}
