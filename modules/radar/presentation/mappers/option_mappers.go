package mappers

import (
	"github.com/iota-uz/radar-admin/modules/radar/domain/aggregates/item"
	"github.com/iota-uz/radar-admin/modules/radar/presentation/viewmodels"
)

// FormatSelectItem wraps a bare value as an option under the
// identity-label policy. An empty value yields the neutral empty option.
func FormatSelectItem(value string) viewmodels.Option {
	if value == "" {
		return viewmodels.Option{}
	}
	return viewmodels.Option{ID: value, Label: value}
}

// FormatSelectData maps raw values to options preserving input order.
// A nil slice yields an empty slice, never nil.
func FormatSelectData(values []string) []viewmodels.Option {
	out := make([]viewmodels.Option, 0, len(values))
	for _, v := range values {
		out = append(out, FormatSelectItem(v))
	}
	return out
}

// FormatProbationResult collapses the tri-state probation outcome to the
// boolean switch shown on the form. Only a passed result maps to true;
// the absent state and a failed result are indistinguishable afterwards.
func FormatProbationResult(result item.ProbationResult) bool {
	return result == item.ProbationPassed
}

// UnwrapProbationResult is the inverse of FormatProbationResult for
// submission. True always means passed; false means failed only when the
// item previously carried a terminal result, since a switch left off on
// an item that never entered probation must not invent a failure.
func UnwrapProbationResult(passed bool, previous item.ProbationResult) item.ProbationResult {
	if passed {
		return item.ProbationPassed
	}
	if previous == item.ProbationNone {
		return item.ProbationNone
	}
	return item.ProbationFailed
}

// UnwrapOption strips the option wrapper back to the bare identifier.
func UnwrapOption(opt viewmodels.Option) string {
	return opt.ID
}

// UnwrapOptions strips a sequence of options to their identifiers,
// preserving order.
func UnwrapOptions(opts []viewmodels.Option) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.ID)
	}
	return out
}

// FieldsToObjects wraps bare labels into the record shape consumed by the
// dynamic list editor. No length constraint is imposed here.
func FieldsToObjects(values []string) []viewmodels.Field {
	out := make([]viewmodels.Field, 0, len(values))
	for _, v := range values {
		out = append(out, viewmodels.Field{Value: v})
	}
	return out
}

// FieldsToArray unwraps list-editor records back to bare labels.
func FieldsToArray(fields []viewmodels.Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Value)
	}
	return out
}
