package catalog

import "github.com/specialistvlad/formdsl/internal/model"

func builtinTypes() []*model.FieldType {
	return []*model.FieldType{
		textField(),
		choiceField(),
		dropDownField(),
		dateField(),
		timeField(),
		numberField(),
	}
}

func attribute(name string, required bool, typ model.AttrType, def *model.Value) *model.Attribute {
	return &model.Attribute{Name: name, Required: required, Type: typ, Default: def}
}

func builtinType(name string, attrs ...*model.Attribute) *model.FieldType {
	return &model.FieldType{Name: name, Attributes: attrs, Builtin: true}
}

func ptr(v model.Value) *model.Value { return &v }

func textField() *model.FieldType {
	return builtinType(TextField,
		attribute("multiline", true, model.Scalar(model.KindBoolean), ptr(model.BoolVal(true))),
		attribute("min_length", false, model.Scalar(model.KindInteger), ptr(model.IntVal(0))),
		attribute("max_length", false, model.Scalar(model.KindInteger), ptr(model.IntVal(10))),
		attribute("placeholder", false, model.Scalar(model.KindString), ptr(model.StringVal("input value"))),
	)
}

func choiceField() *model.FieldType {
	return builtinType(ChoiceField,
		attribute("choices", true, model.ListOf(model.KindString), nil),
		attribute("multiple", true, model.Scalar(model.KindBoolean), nil),
	)
}

func dropDownField() *model.FieldType {
	return builtinType(DropDownField,
		attribute("options", true, model.ListOf(model.KindString), nil),
	)
}

func numberField() *model.FieldType {
	return builtinType(NumberField,
		attribute("min", false, model.Scalar(model.KindInteger), ptr(model.IntVal(0))),
		attribute("max", false, model.Scalar(model.KindInteger), ptr(model.IntVal(10))),
		attribute("placeholder", false, model.Scalar(model.KindString), ptr(model.StringVal("Input value"))),
	)
}

func dateField() *model.FieldType { return builtinType(DateField) }

func timeField() *model.FieldType { return builtinType(TimeField) }
