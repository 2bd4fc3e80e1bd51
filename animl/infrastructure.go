package animl

import (
	"xml-binder/field"
	"xml-binder/model"
	"xml-binder/transform"
)

// ExperimentDataReference points at the data of another experiment step.
type ExperimentDataReference struct {
	DataPurpose      PurposeType
	ExperimentStepID string
	Role             string
	ID               string
}

// ExperimentDataBulkReference points at the data of every experiment step
// whose ID starts with a prefix.
type ExperimentDataBulkReference struct {
	DataPurpose            PurposeType
	ExperimentStepIDPrefix string
	Role                   string
	ID                     string
}

// ExperimentDataReferenceSet is <ExperimentDataReferenceSet>.
type ExperimentDataReferenceSet struct {
	References     []*ExperimentDataReference
	BulkReferences []*ExperimentDataBulkReference
	ID             string
}

// StartValue bounds a ParentDataPointReference from below.
type StartValue struct {
	Value Numeric
}

// EndValue bounds a ParentDataPointReference from above.
type EndValue struct {
	Value Numeric
}

// ParentDataPointReference points at a range of a series the step was
// derived from.
type ParentDataPointReference struct {
	ID         string
	SeriesID   string
	StartValue *StartValue
	EndValue   *EndValue
}

// ParentDataPointReferenceSet is <ParentDataPointReferenceSet>.
type ParentDataPointReferenceSet struct {
	References []*ParentDataPointReference
}

// SampleReference points at a sample the step used or produced.
type SampleReference struct {
	Role          string
	SampleID      string
	SamplePurpose PurposeType
	ID            string
}

// SampleInheritance takes the sample of the parent step.
type SampleInheritance struct {
	Role          string
	SamplePurpose PurposeType
	ID            string
}

// SampleReferenceSet is <SampleReferenceSet>.
type SampleReferenceSet struct {
	References   []*SampleReference
	Inheritances []*SampleInheritance
	ID           string
}

// Infrastructure links an experiment step to its samples and its inputs.
type Infrastructure struct {
	ID                          string
	SampleReferenceSet          *SampleReferenceSet
	ParentDataPointReferenceSet *ParentDataPointReferenceSet
	ExperimentDataReferenceSet  *ExperimentDataReferenceSet
	Timestamp                   *DateTimeType
}

func optionalID() *field.Field {
	return field.Attribute("id", "Optional[str]", field.Pattern(transform.NCName))
}

func init() {
	model.MustDefine[ExperimentDataReference](Family, "",
		field.Attribute("dataPurpose", "PurposeType"),
		field.Attribute("experimentStepID", "str"),
		field.Attribute("role", "str"),
		optionalID(),
	)
	model.MustDefine[ExperimentDataBulkReference](Family, "",
		field.Attribute("dataPurpose", "PurposeType"),
		field.Attribute("experimentStepIDPrefix", "str"),
		field.Attribute("role", "str"),
		optionalID(),
	)
	model.MustDefine[ExperimentDataReferenceSet](Family, "",
		field.Child("references", "Optional[List[ExperimentDataReference]]"),
		field.Child("bulk_references", "Optional[List[ExperimentDataBulkReference]]"),
		optionalID(),
	)

	model.MustDefine[StartValue](Family, "", field.Child("value", numericUnion))
	model.MustDefine[EndValue](Family, "", field.Child("value", numericUnion))
	model.MustDefine[ParentDataPointReference](Family, "",
		optionalID(),
		field.Attribute("seriesID", "str"),
		field.Child("start_value", "StartValue"),
		field.Child("end_value", "Optional[EndValue]"),
	)
	model.MustDefine[ParentDataPointReferenceSet](Family, "",
		field.Child("references", "List[ParentDataPointReference]"),
	)

	model.MustDefine[SampleReference](Family, "",
		field.Attribute("role", "str"),
		field.Attribute("sampleID", "str"),
		field.Attribute("samplePurpose", "PurposeType"),
		optionalID(),
	)
	model.MustDefine[SampleInheritance](Family, "",
		field.Attribute("role", "str"),
		field.Attribute("samplePurpose", "PurposeType"),
		optionalID(),
	)
	model.MustDefine[SampleReferenceSet](Family, "",
		field.Child("references", "Optional[List[SampleReference]]"),
		field.Child("inheritances", "Optional[List[SampleInheritance]]"),
		optionalID(),
	)

	model.MustDefine[Infrastructure](Family, "",
		optionalID(),
		field.Child("sample_reference_set", "Optional[SampleReferenceSet]"),
		field.Child("parent_data_point_reference_set", "Optional[ParentDataPointReferenceSet]"),
		field.Child("experiment_data_reference_set", "Optional[ExperimentDataReferenceSet]"),
		field.Child("timestamp", "Optional[DateTimeType]"),
	)
}
