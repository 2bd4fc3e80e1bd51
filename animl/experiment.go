package animl

import (
	"slices"

	"github.com/google/uuid"

	"xml-binder/field"
	"xml-binder/model"
)

// Extension is a technique extension definition.
type Extension struct {
	Name   string
	URI    string
	SHA256 string
}

// Technique is the technique definition an experiment step conforms to.
type Technique struct {
	Name       string
	URI        string
	ID         string
	SHA256     string
	Extensions []*Extension
}

// Method describes how an experiment step was carried out.
type Method struct {
	Name     string
	ID       string
	Author   *Author
	Device   *Device
	Software *Software
	Category *Category
}

// Result is an outcome of an experiment step.
type Result struct {
	ID                string
	Name              string
	Series            *SeriesSet
	CategorySet       []*Category
	ExperimentStepSet *ExperimentStepSet
}

// Template is a reusable experiment step skeleton.
type Template struct {
	Name               string
	TemplateID         string
	ID                 string
	SourceDataLocation string

	TagSet         *TagSet
	Technique      *Technique
	Infrastructure *Infrastructure
	Method         *Method
	Result         *Result
}

// ExperimentStep is one step of an experiment.
type ExperimentStep struct {
	ExperimentStepID   string
	Name               string
	Comment            string
	ID                 string
	SourceDataLocation string
	TemplateUsed       string

	TagSet         *TagSet
	Technique      *Technique
	Infrastructure *Infrastructure
	Method         *Method
	Results        []*Result
}

// NewExperimentStep returns a step with a random experiment step ID.
func NewExperimentStep(name string) *ExperimentStep {
	return &ExperimentStep{Name: name, ExperimentStepID: uuid.NewString()}
}

// Append adds r to the results of the step and returns it.
func (s *ExperimentStep) Append(r *Result) *Result {
	s.Results = append(s.Results, r)

	return r
}

// ExperimentStepSet is <ExperimentStepSet>.
type ExperimentStepSet struct {
	Templates       []*Template
	ExperimentSteps []*ExperimentStep
}

// Append adds s to the set and returns it.
func (s *ExperimentStepSet) Append(step *ExperimentStep) *ExperimentStep {
	s.ExperimentSteps = append(s.ExperimentSteps, step)

	return step
}

func stepChildren() []*field.Field {
	return []*field.Field{
		field.Child("tag_set", "Optional[TagSet]"),
		field.Child("technique", "Optional[Technique]"),
		field.Child("infrastructure", "Optional[Infrastructure]"),
		field.Child("method", "Optional[Method]"),
	}
}

func init() {
	model.MustDefine[Extension](Family, "",
		field.Attribute("name", "str"),
		field.Attribute("uri", "str"),
		field.Attribute("sha256", "Optional[str]"),
	)
	model.MustDefine[Technique](Family, "",
		field.Attribute("name", "str"),
		field.Attribute("uri", "str"),
		optionalID(),
		field.Attribute("sha256", "Optional[str]"),
		field.Child("extensions", "Optional[List[Extension]]"),
	)
	model.MustDefine[Method](Family, "",
		field.Attribute("name", "Optional[str]"),
		optionalID(),
		field.Child("author", "Optional[Author]"),
		field.Child("device", "Optional[Device]"),
		field.Child("software", "Optional[Software]"),
		field.Child("category", "Optional[Category]"),
	)

	model.MustDefine[Result](Family, "",
		optionalID(),
		field.Attribute("name", "str"),
		field.Child("series", "Optional[SeriesSet]"),
		field.Child("category_set", "Optional[List[Category]]"),
		field.Child("experiment_step", "Optional[ExperimentStepSet]", field.Bind("ExperimentStepSet")),
	)
	model.MustDefine[Template](Family, "", slices.Concat(
		[]*field.Field{
			field.Attribute("name", "str"),
			field.Attribute("templateID", "str"),
			optionalID(),
			field.Attribute("sourceDataLocation", "Optional[str]"),
		},
		stepChildren(),
		[]*field.Field{field.Child("result", "Optional[Result]")},
	)...)
	model.MustDefine[ExperimentStep](Family, "", slices.Concat(
		[]*field.Field{
			field.Attribute("experimentStepID", "str"),
			field.Attribute("name", "str"),
			field.Attribute("comment", "Optional[str]"),
			optionalID(),
			field.Attribute("sourceDataLocation", "Optional[str]"),
			field.Attribute("templateUsed", "Optional[str]"),
		},
		stepChildren(),
		[]*field.Field{field.Child("result", "Optional[List[Result]]", field.Bind("Results"))},
	)...)
	model.MustDefine[ExperimentStepSet](Family, "",
		field.Child("templates", "List[Template]", field.DefaultFunc(func() any { return []*Template{} })),
		field.Child("experiment_steps", "Optional[List[ExperimentStep]]"),
	)
}
