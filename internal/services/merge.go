package services

import (
	"reflect"

	"dario.cat/mergo"
	"github.com/sbilibin2017/job-listings/internal/models"
)

// mergePatch overlays every non-empty field of patch onto dst, descending into
// nested records. Fields left empty in patch keep their stored value.
func mergePatch[T any](dst *T, patch T) error {
	return mergo.Merge(dst, patch, mergo.WithOverride, mergo.WithTransformers(dateTransformer{}))
}

// dateTransformer makes mergo skip a zero models.Date in the patch.
type dateTransformer struct{}

var dateType = reflect.TypeOf(models.Date{})

func (dateTransformer) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != dateType {
		return nil
	}
	return func(dst, src reflect.Value) error {
		if dst.CanSet() && !src.Interface().(models.Date).IsZero() {
			dst.Set(src)
		}
		return nil
	}
}
