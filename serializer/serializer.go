// Package serializer turns GORM models into nested maps suitable for JSON
// responses. Relationship fields are followed recursively, and exclusion
// rules of the form "-reviews.customer" cut the paths that would otherwise
// walk back into the parent record.
package serializer

import (
	"reflect"
	"strings"
	"time"
)

// Ruler is implemented by models that carry their own exclusion rules.
// Rules declared by a nested model are merged with the rules inherited
// from its parent path.
type Ruler interface {
	SerializeRules() []string
}

var timeType = reflect.TypeOf(time.Time{})

// ToDict converts a struct or pointer to struct into a map keyed by JSON
// field names. A nil pointer yields nil.
func ToDict(v interface{}, rules ...string) map[string]interface{} {
	rv, ok := indirect(reflect.ValueOf(v))
	if !ok || rv.Kind() != reflect.Struct {
		return nil
	}
	return structToDict(rv, rules)
}

// ToDictList converts every element of a slice with ToDict. Anything that
// is not a slice or array yields an empty list.
func ToDictList(v interface{}, rules ...string) []interface{} {
	rv, ok := indirect(reflect.ValueOf(v))
	if !ok || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return []interface{}{}
	}
	out := make([]interface{}, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out = append(out, convert(rv.Index(i), rules))
	}
	return out
}

func structToDict(rv reflect.Value, inherited []string) map[string]interface{} {
	rs := newRuleSet(append(append([]string{}, inherited...), ownRules(rv)...))
	out := make(map[string]interface{}, rv.NumField())
	fill(out, rv, rs)
	return out
}

func fill(out map[string]interface{}, rv reflect.Value, rs ruleSet) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		fv := rv.Field(i)

		if f.Anonymous && f.IsExported() && jsonName(f) == "" {
			if ev, ok := indirect(fv); ok && ev.Kind() == reflect.Struct && ev.Type() != timeType {
				fill(out, ev, rs)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}

		name, skip := fieldName(f)
		if skip || rs.excludes(name) {
			continue
		}
		out[name] = convert(fv, rs.child(name))
	}
}

func convert(v reflect.Value, rules []string) interface{} {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return convert(v.Elem(), rules)
	case reflect.Struct:
		if v.Type() == timeType {
			return v.Interface().(time.Time).Format(time.RFC3339)
		}
		return structToDict(v, rules)
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return v.Interface()
		}
		fallthrough
	case reflect.Array:
		list := make([]interface{}, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			list = append(list, convert(v.Index(i), rules))
		}
		return list
	case reflect.Invalid:
		return nil
	default:
		return v.Interface()
	}
}

func ownRules(rv reflect.Value) []string {
	if rv.CanInterface() {
		if r, ok := rv.Interface().(Ruler); ok {
			return r.SerializeRules()
		}
	}
	if rv.CanAddr() && rv.Addr().CanInterface() {
		if r, ok := rv.Addr().Interface().(Ruler); ok {
			return r.SerializeRules()
		}
	}
	return nil
}

func indirect(v reflect.Value) (reflect.Value, bool) {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return v, false
		}
		v = v.Elem()
	}
	return v, v.IsValid()
}

func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if idx := strings.IndexByte(tag, ','); idx >= 0 {
		tag = tag[:idx]
	}
	return tag
}

func fieldName(f reflect.StructField) (string, bool) {
	name := jsonName(f)
	if name == "-" {
		return "", true
	}
	if name == "" {
		name = f.Name
	}
	return name, false
}

// ruleSet holds exclusion paths with the leading "-" stripped.
type ruleSet []string

func newRuleSet(rules []string) ruleSet {
	rs := make(ruleSet, 0, len(rules))
	for _, r := range rules {
		r = strings.TrimSpace(r)
		if !strings.HasPrefix(r, "-") || len(r) == 1 {
			continue
		}
		rs = append(rs, r[1:])
	}
	return rs
}

func (rs ruleSet) excludes(name string) bool {
	for _, r := range rs {
		if r == name {
			return true
		}
	}
	return false
}

// child returns the rules that apply below field name, re-prefixed with "-".
func (rs ruleSet) child(name string) []string {
	prefix := name + "."
	var out []string
	for _, r := range rs {
		if strings.HasPrefix(r, prefix) {
			out = append(out, "-"+r[len(prefix):])
		}
	}
	return out
}
