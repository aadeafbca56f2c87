package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/logos/addrs"
	"github.com/reusee/logos/storages"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case starlark.Value:
		return v

	case storages.Cell:
		if v.IsEmpty() {
			return starlark.None
		}
		return starlark.String(v.String())

	case storages.Line:
		elems := make([]starlark.Value, len(v))
		for i, cell := range v {
			elems[i] = toStarlarkValue(cell)
		}
		return starlark.NewList(elems)

	case addrs.Address:
		return starlark.String(v.String())

	case []byte:
		return starlark.Bytes(v)

	case []any:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			elems[i] = toStarlarkValue(e)
		}
		return starlark.NewList(elems)

	case map[string]any:
		d := starlark.NewDict(len(v))
		for k, val := range v {
			d.SetKey(starlark.String(k), toStarlarkValue(val))
		}
		return d

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		l := value.Len()
		elems := make([]starlark.Value, l)
		for i := range l {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				toStarlarkValue(iter.Key().Interface()),
				toStarlarkValue(iter.Value().Interface()),
			)
		}
		return d

	case reflect.Struct:
		n := value.NumField()
		d := starlark.NewDict(n)
		typ := value.Type()
		for i := range n {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			d.SetKey(
				starlark.String(field.Name),
				toStarlarkValue(value.Field(i).Interface()),
			)
		}
		return d

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return toStarlarkValue(elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}
