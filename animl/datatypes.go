package animl

import (
	"time"

	"xml-binder/field"
	"xml-binder/model"
)

// Union expressions of the typed value elements.
const (
	numericUnion = "Union[DoubleType, FloatType, IntType, LongType]"
	valueUnion   = "Union[BooleanType, DoubleType, DateTimeType, EmbeddedXMLType, FloatType, " +
		"IntType, LongType, PNGType, StringType, SVGType]"
)

// Value is a typed value element.
type Value interface {
	// Get returns the held Go value.
	Get() any
}

// Numeric is a Value holding a number.
type Numeric interface {
	Value
	Float64() float64
}

// BooleanType is <Boolean>.
type BooleanType struct {
	Value bool
}

// DoubleType is <D>, a 64-bit float.
type DoubleType struct {
	Value float64
}

// DateTimeType is <DateTime>.
type DateTimeType struct {
	Value time.Time
}

// EmbeddedXMLType is <EmbeddedXML>, XML kept as text.
type EmbeddedXMLType struct {
	Value string
}

// FloatType is <F>, a 32-bit float.
type FloatType struct {
	Value float32
}

// IntType is <I>, a 32-bit integer.
type IntType struct {
	Value int32
}

// LongType is <L>, a 64-bit integer.
type LongType struct {
	Value int64
}

// PNGType is <PNG>, an image in its base64 text form.
type PNGType struct {
	Value []byte
}

// StringType is <S>.
type StringType struct {
	Value string
}

// SVGType is <SVG>.
type SVGType struct {
	Value string
}

func (v *BooleanType) Get() any     { return v.Value }
func (v *DoubleType) Get() any      { return v.Value }
func (v *DateTimeType) Get() any    { return v.Value }
func (v *EmbeddedXMLType) Get() any { return v.Value }
func (v *FloatType) Get() any       { return v.Value }
func (v *IntType) Get() any         { return v.Value }
func (v *LongType) Get() any        { return v.Value }
func (v *PNGType) Get() any         { return v.Value }
func (v *StringType) Get() any      { return v.Value }
func (v *SVGType) Get() any         { return v.Value }

func (v *DoubleType) Float64() float64 { return v.Value }
func (v *FloatType) Float64() float64  { return float64(v.Value) }
func (v *IntType) Float64() float64    { return float64(v.Value) }
func (v *LongType) Float64() float64   { return float64(v.Value) }

func init() {
	model.MustDefine[BooleanType](Family, "Boolean", field.Text("value", "bool", field.Use("bool")))
	model.MustDefine[DoubleType](Family, "D", field.Text("value", "float", field.Use("float64")))
	model.MustDefine[DateTimeType](Family, "DateTime", field.Text("value", "datetime", field.Use("datetime")))
	model.MustDefine[EmbeddedXMLType](Family, "EmbeddedXML", field.Text("value", "Optional[str]"))
	model.MustDefine[FloatType](Family, "F", field.Text("value", "float", field.Use("float32")))
	model.MustDefine[IntType](Family, "I", field.Text("value", "int", field.Use("int32")))
	model.MustDefine[LongType](Family, "L", field.Text("value", "int", field.Use("int64")))
	model.MustDefine[PNGType](Family, "PNG", field.Text("value", "Optional[bytes]", field.Use("ascii")))
	model.MustDefine[StringType](Family, "S", field.Text("value", "Optional[str]"))
	model.MustDefine[SVGType](Family, "SVG", field.Text("value", "Optional[str]"))
}
