package animl

import (
	"xml-binder/model"
)

// UserType is the kind of an Author.
type UserType string

const (
	UserHuman    UserType = "human"
	UserDevice   UserType = "device"
	UserSoftware UserType = "software"
)

func (u UserType) IsValid() bool {
	switch u {
	case UserHuman, UserDevice, UserSoftware:
		return true
	default:
		return false
	}
}

// PurposeType tells whether referenced data was produced or consumed by a step.
type PurposeType string

const (
	PurposeProduced PurposeType = "produced"
	PurposeConsumed PurposeType = "consumed"
)

func (p PurposeType) IsValid() bool {
	return p == PurposeProduced || p == PurposeConsumed
}

// ParameterType is the datatype of a Parameter value or of the values of a
// Series.
type ParameterType string

const (
	ParameterInt32       ParameterType = "Int32"
	ParameterInt64       ParameterType = "Int64"
	ParameterFloat32     ParameterType = "Float32"
	ParameterFloat64     ParameterType = "Float64"
	ParameterString      ParameterType = "String"
	ParameterBoolean     ParameterType = "Boolean"
	ParameterDateTime    ParameterType = "DateTime"
	ParameterEmbeddedXML ParameterType = "EmbeddedXML"
	ParameterPNG         ParameterType = "PNG"
	ParameterSVG         ParameterType = "SVG"
)

func (p ParameterType) IsValid() bool {
	switch p {
	case ParameterInt32, ParameterInt64, ParameterFloat32, ParameterFloat64, ParameterString,
		ParameterBoolean, ParameterDateTime, ParameterEmbeddedXML, ParameterPNG, ParameterSVG:
		return true
	default:
		return false
	}
}

// Dependency tells whether a Series is an independent or a dependent variable.
type Dependency string

const (
	Independent Dependency = "independent"
	Dependent   Dependency = "dependent"
)

func (d Dependency) IsValid() bool {
	return d == Independent || d == Dependent
}

// PlotScale is the axis scale suggested for plotting a Series.
type PlotScale string

const (
	PlotLinear PlotScale = "linear"
	PlotLn     PlotScale = "ln"
	PlotLog    PlotScale = "log"
	PlotNone   PlotScale = "none"
)

func (p PlotScale) IsValid() bool {
	switch p {
	case PlotLinear, PlotLn, PlotLog, PlotNone:
		return true
	default:
		return false
	}
}

// UnitText is an SI base unit symbol, or "1" for a dimensionless quantity.
type UnitText string

const (
	UnitOne      UnitText = "1"
	UnitMetre    UnitText = "m"
	UnitKilogram UnitText = "kg"
	UnitSecond   UnitText = "s"
	UnitAmpere   UnitText = "A"
	UnitKelvin   UnitText = "K"
	UnitMole     UnitText = "mol"
	UnitCandela  UnitText = "cd"
)

func (u UnitText) IsValid() bool {
	switch u {
	case UnitOne, UnitMetre, UnitKilogram, UnitSecond, UnitAmpere, UnitKelvin, UnitMole, UnitCandela:
		return true
	default:
		return false
	}
}

func init() {
	for _, register := range []func(*model.Family) error{
		model.RegisterEnum[UserType],
		model.RegisterEnum[PurposeType],
		model.RegisterEnum[ParameterType],
		model.RegisterEnum[Dependency],
		model.RegisterEnum[PlotScale],
		model.RegisterEnum[UnitText],
	} {
		if err := register(Family); err != nil {
			panic(err)
		}
	}
}
