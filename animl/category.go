package animl

import (
	"fmt"

	"xml-binder/field"
	"xml-binder/model"
)

// Parameter is a named, typed value.
type Parameter struct {
	Name          string
	ParameterType ParameterType
	Value         Value
	Unit          *Unit
	ID            string
}

// Category groups parameters, series sets and nested categories.
type Category struct {
	Name          string
	ID            string
	Parameters    []*Parameter
	SeriesSets    []*SeriesSet
	SubCategories []*Category
}

// CategoryItem is a *Parameter, a *SeriesSet or a *Category.
type CategoryItem interface {
	categoryItem()
}

func (*Parameter) categoryItem() {}
func (*SeriesSet) categoryItem() {}
func (*Category) categoryItem()  {}

// Append adds item to the list of its kind and returns it.
func (c *Category) Append(item CategoryItem) CategoryItem {
	switch it := item.(type) {
	case *Parameter:
		c.Parameters = append(c.Parameters, it)
	case *SeriesSet:
		c.SeriesSets = append(c.SeriesSets, it)
	case *Category:
		c.SubCategories = append(c.SubCategories, it)
	default:
		panic(fmt.Sprintf("animl: unexpected category item %T", item))
	}

	return item
}

func init() {
	model.MustDefine[Parameter](Family, "",
		field.Attribute("name", "str"),
		field.Attribute("parameterType", "ParameterType"),
		field.Child("value", valueUnion),
		field.Child("unit", "Optional[Unit]"),
		optionalID(),
	)
	model.MustDefine[Category](Family, "",
		field.Attribute("name", "str"),
		optionalID(),
		field.Child("parameters", "Optional[List[Parameter]]"),
		field.Child("series_sets", "Optional[List[SeriesSet]]"),
		field.Child("sub_categories", "Optional[List[Category]]"),
	)
}
