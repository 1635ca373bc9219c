// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package property

import (
	"reflect"

	"github.com/holomush/propsheet/internal/content"
	"github.com/holomush/propsheet/internal/registry"
	"github.com/holomush/propsheet/internal/resource"
)

// IsPropertied reports whether the content type of res declares a non-empty
// set of property sheets. Missing requests, registries, content accessors
// and declarations all yield false.
func IsPropertied(res resource.Resource, req *registry.Request) bool {
	if req == nil || req.Registry == nil {
		return false
	}
	lookup := req.Registry.Content()
	if lookup == nil {
		return false
	}
	return truthy(lookup.Metadata(res, content.PropertySheetsKey, nil))
}

// truthy reports whether v is a present, non-empty, non-zero declaration.
func truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface, reflect.Func:
		return !rv.IsNil()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	default:
		return true
	}
}
