package factory

import "reflect"

// applyOverrides copies the named values onto the target, later maps winning.
// Field names match the struct fields, mirroring how records are customized
// in tests.
func applyOverrides[T any](target *T, overrides []map[string]any) {
	v := reflect.ValueOf(target).Elem()

	for _, data := range overrides {
		for name, value := range data {
			field := v.FieldByName(name)

			if field.IsValid() && field.CanSet() {
				field.Set(reflect.ValueOf(value))
			}
		}
	}
}
