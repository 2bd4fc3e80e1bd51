package animl

import (
	"xml-binder/field"
	"xml-binder/model"
)

// SIUnit expresses a unit in SI base units: the value in the base unit is
// factor * value^exponent + offset.
type SIUnit struct {
	Exponent string
	Factor   string
	Offset   string
	Unit     UnitText
}

// Unit is the unit of a Parameter or a Series.
type Unit struct {
	Label    string
	Quantity string
	SIUnits  []*SIUnit
}

// Append adds u to the SI definition of the unit and returns it.
func (u *Unit) Append(si *SIUnit) *SIUnit {
	u.SIUnits = append(u.SIUnits, si)

	return si
}

// ValueSet is one of the encodings of the values of a Series.
type ValueSet interface {
	valueSet()
}

// AutoIncrementedValueSet generates values from a start value and an
// increment.
type AutoIncrementedValueSet struct {
	StartValue Numeric
	Increment  Numeric
	EndIndex   *int32
	StartIndex *int32
}

// EncodedValueSet holds values as base64 text.
type EncodedValueSet struct {
	Value      []byte
	EndIndex   *int32
	StartIndex *int32
}

// IndividualValueSet lists every value.
type IndividualValueSet struct {
	Values     []Value
	EndIndex   *int32
	StartIndex *int32
}

func (*AutoIncrementedValueSet) valueSet() {}
func (*EncodedValueSet) valueSet()         {}
func (*IndividualValueSet) valueSet()      {}

// Series is a vector of values of one ParameterType.
type Series struct {
	Name       string
	Dependency Dependency
	ID         string
	PlotScale  PlotScale
	SeriesID   string
	SeriesType ParameterType
	Visible    *bool

	ValueSets []ValueSet
	Unit      *Unit
}

// Append adds vs to the series and returns it.
func (s *Series) Append(vs ValueSet) ValueSet {
	s.ValueSets = append(s.ValueSets, vs)

	return vs
}

// SeriesSet groups series of the same length.
type SeriesSet struct {
	Name   string
	ID     string
	Length int32
	Series []*Series
}

// Append adds s to the set and returns it.
func (s *SeriesSet) Append(series *Series) *Series {
	s.Series = append(s.Series, series)

	return series
}

func indexFields() []*field.Field {
	return []*field.Field{
		field.Attribute("endIndex", "Optional[int]", field.Use("int32")),
		field.Attribute("startIndex", "Optional[int]", field.Use("int32")),
	}
}

func init() {
	model.MustDefine[SIUnit](Family, "",
		field.Attribute("exponent", "Optional[str]"),
		field.Attribute("factor", "Optional[str]"),
		field.Attribute("offset", "Optional[str]"),
		field.Text("unit", "UnitText", field.Default(UnitOne)),
	)
	model.MustDefine[Unit](Family, "",
		field.Attribute("label", "str"),
		field.Attribute("quantity", "Optional[str]"),
		field.Child("siunits", "Optional[List[SIUnit]]"),
	)

	model.MustDefine[AutoIncrementedValueSet](Family, "", append([]*field.Field{
		field.Child("startValue", numericUnion),
		field.Child("increment", numericUnion),
	}, indexFields()...)...)
	model.MustDefine[EncodedValueSet](Family, "", append([]*field.Field{
		field.Text("value", "Optional[bytes]", field.Use("ascii")),
	}, indexFields()...)...)
	model.MustDefine[IndividualValueSet](Family, "", append([]*field.Field{
		field.Child("values", "List["+valueUnion+"]"),
	}, indexFields()...)...)

	model.MustDefine[Series](Family, "",
		field.Attribute("name", "str"),
		field.Attribute("dependency", "Dependency"),
		optionalID(),
		field.Attribute("plotScale", "Optional[PlotScale]"),
		field.Attribute("seriesID", "str"),
		field.Attribute("seriesType", "ParameterType"),
		field.Attribute("visible", "Optional[bool]", field.Use("bool")),
		field.Child("valuesets", "List[Union[AutoIncrementedValueSet, EncodedValueSet, IndividualValueSet]]",
			field.DefaultFunc(func() any { return []ValueSet{} })),
		field.Child("unit", "Optional[Unit]"),
	)
	model.MustDefine[SeriesSet](Family, "",
		field.Attribute("name", "str"),
		optionalID(),
		field.Attribute("length", "int", field.Use("int32")),
		field.Child("series", "List[Series]"),
	)
}
