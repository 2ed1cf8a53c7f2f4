// Package derive compiles owned conversions for aggregate struct types whose
// fields hold convertible values, recursively. A plan is compiled once per
// type, rejecting any field that cannot be proven convertible; the
// conversions themselves never fail.
package derive

import (
	"fmt"
	"reflect"
	"time"
	"unsafe"

	"github.com/viant/tagly/format"
	"github.com/viant/xunsafe"
)

//TagName is the default struct tag controlling field conversion;
//`ownly:"-"` excludes a field, carrying it over by shallow copy.
const TagName = "ownly"

type (
	//Conversion converts aggregate values of type T into self contained
	//equivalents
	Conversion[T any] struct {
		plan *structPlan
	}

	// op produces the owned counterpart of a value
	op func(src reflect.Value) reflect.Value

	fieldOp struct {
		xField *xunsafe.Field
		to     op
		into   op
	}

	structPlan struct {
		rType  reflect.Type
		fields []*fieldOp
	}

	planKey struct {
		rType   reflect.Type
		tagName string
	}

	//compiler tracks plans under compilation so self referencing types
	//resolve to the same plan before the graph is published
	compiler struct {
		*options
		pending map[planKey]*structPlan
	}
)

var plans = newPlanCache()

var timeType = reflect.TypeOf(time.Time{})

//For compiles a conversion plan for struct type T. It returns an error naming
//the first field whose type cannot be converted.
func For[T any](opts ...Option) (*Conversion[T], error) {
	c := &compiler{options: newOptions(opts), pending: make(map[planKey]*structPlan)}
	rType := reflect.TypeOf((*T)(nil)).Elem()
	plan, err := c.structPlanFor(rType)
	if err != nil {
		return nil, err
	}
	plans.publish(c.pending)
	return &Conversion[T]{plan: plan}, nil
}

//MustFor compiles a conversion plan for struct type T, panicking on error
func MustFor[T any](opts ...Option) *Conversion[T] {
	ret, err := For[T](opts...)
	if err != nil {
		panic(err)
	}
	return ret
}

//ToOwned returns an owned counterpart of *v: a shallow copy with every
//reference holding field replaced by its owned counterpart. The original
//remains valid and unchanged.
func (c *Conversion[T]) ToOwned(v *T) T {
	dst := *v
	if len(c.plan.fields) == 0 {
		return dst
	}
	srcPtr := unsafe.Pointer(v)
	dstPtr := unsafe.Pointer(&dst)
	for _, f := range c.plan.fields {
		value := f.xField.Value(srcPtr)
		if value == nil {
			continue
		}
		f.xField.SetValue(dstPtr, f.to(reflect.ValueOf(value)).Interface())
	}
	return dst
}

//IntoOwned returns an owned counterpart of v, converting element storage in
//place where possible instead of copying; the caller must not use the
//original value, nor containers sharing its storage, afterwards.
func (c *Conversion[T]) IntoOwned(v T) T {
	if len(c.plan.fields) == 0 {
		return v
	}
	ptr := unsafe.Pointer(&v)
	for _, f := range c.plan.fields {
		value := f.xField.Value(ptr)
		if value == nil {
			continue
		}
		f.xField.SetValue(ptr, f.into(reflect.ValueOf(value)).Interface())
	}
	return v
}

func (c *compiler) structPlanFor(rType reflect.Type) (*structPlan, error) {
	if rType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct type, got %s", rType.String())
	}
	key := planKey{rType: rType, tagName: c.tagName}
	if plan, ok := plans.get(key); ok {
		return plan, nil
	}
	if plan, ok := c.pending[key]; ok {
		return plan, nil
	}
	plan := &structPlan{rType: rType}
	c.pending[key] = plan
	if err := plan.compile(c); err != nil {
		return nil, err
	}
	return plan, nil
}

func (p *structPlan) compile(c *compiler) error {
	for i := 0; i < p.rType.NumField(); i++ {
		field := p.rType.Field(i)
		tag, err := format.Parse(field.Tag, c.tagName)
		if err != nil {
			return fmt.Errorf("invalid %v tag on %s.%s: %w", c.tagName, p.rType.String(), field.Name, err)
		}
		if tag.Ignore {
			continue
		}
		if selfContained(field.Type) {
			continue
		}
		path := p.rType.String() + "." + field.Name
		if field.PkgPath != "" {
			return fmt.Errorf("unexported field %s holds references; export it or mark it with %s:\"-\"", path, c.tagName)
		}
		to, into, err := compile(field.Type, path, c)
		if err != nil {
			return err
		}
		p.fields = append(p.fields, &fieldOp{xField: xunsafe.NewField(field), to: to, into: into})
	}
	return nil
}

func compile(t reflect.Type, path string, c *compiler) (op, op, error) {
	if m, ok := ownedMethod(t, "ToOwned"); ok {
		to := methodOp(m.Index)
		into := to
		if intoMethod, ok := ownedMethod(t, "IntoOwned"); ok {
			into = methodOp(intoMethod.Index)
		}
		return to, into, nil
	}
	switch t.Kind() {
	case reflect.Ptr:
		return compilePtr(t, path, c)
	case reflect.Slice:
		return compileSlice(t, path, c)
	case reflect.Array:
		return compileArray(t, path, c)
	case reflect.Map:
		return compileMap(t, path, c)
	case reflect.Struct:
		return compileStruct(t, path, c)
	case reflect.Interface:
		return compileInterface(t, path)
	}
	return nil, nil, fmt.Errorf("unsupported field %s: %s cannot be statically converted", path, t.String())
}

func methodOp(index int) op {
	return func(src reflect.Value) reflect.Value {
		return src.Method(index).Call(nil)[0]
	}
}

func compilePtr(t reflect.Type, path string, c *compiler) (op, op, error) {
	elemType := t.Elem()
	elemTo, elemInto, err := compileElem(elemType, path+"*", c)
	if err != nil {
		return nil, nil, err
	}
	to := func(src reflect.Value) reflect.Value {
		if src.IsNil() {
			return src
		}
		dst := reflect.New(elemType)
		if elemTo != nil {
			dst.Elem().Set(elemTo(src.Elem()))
		} else {
			dst.Elem().Set(src.Elem())
		}
		return dst
	}
	into := func(src reflect.Value) reflect.Value {
		if src.IsNil() || elemInto == nil {
			return src
		}
		src.Elem().Set(elemInto(src.Elem()))
		return src
	}
	return to, into, nil
}

func compileSlice(t reflect.Type, path string, c *compiler) (op, op, error) {
	elemTo, elemInto, err := compileElem(t.Elem(), path+"[]", c)
	if err != nil {
		return nil, nil, err
	}
	to := func(src reflect.Value) reflect.Value {
		if src.IsNil() {
			return src
		}
		dst := reflect.MakeSlice(t, src.Len(), src.Len())
		if elemTo == nil {
			reflect.Copy(dst, src)
			return dst
		}
		for i := 0; i < src.Len(); i++ {
			dst.Index(i).Set(elemTo(src.Index(i)))
		}
		return dst
	}
	into := func(src reflect.Value) reflect.Value {
		if src.IsNil() || elemInto == nil {
			return src
		}
		for i := 0; i < src.Len(); i++ {
			src.Index(i).Set(elemInto(src.Index(i)))
		}
		return src
	}
	return to, into, nil
}

func compileArray(t reflect.Type, path string, c *compiler) (op, op, error) {
	elemTo, elemInto, err := compileElem(t.Elem(), path+"[]", c)
	if err != nil {
		return nil, nil, err
	}
	arrayOp := func(elemOp op) op {
		return func(src reflect.Value) reflect.Value {
			dst := reflect.New(t).Elem()
			for i := 0; i < src.Len(); i++ {
				dst.Index(i).Set(elemOp(src.Index(i)))
			}
			return dst
		}
	}
	return arrayOp(elemTo), arrayOp(elemInto), nil
}

func compileMap(t reflect.Type, path string, c *compiler) (op, op, error) {
	keyTo, keyInto, err := compileElem(t.Key(), path+"#key", c)
	if err != nil {
		return nil, nil, err
	}
	elemTo, elemInto, err := compileElem(t.Elem(), path+"[]", c)
	if err != nil {
		return nil, nil, err
	}
	to := func(src reflect.Value) reflect.Value {
		if src.IsNil() {
			return src
		}
		dst := reflect.MakeMapWithSize(t, src.Len())
		iter := src.MapRange()
		for iter.Next() {
			key, elem := iter.Key(), iter.Value()
			if keyTo != nil {
				key = keyTo(key)
			}
			if elemTo != nil {
				elem = elemTo(elem)
			}
			dst.SetMapIndex(key, elem)
		}
		return dst
	}
	into := func(src reflect.Value) reflect.Value {
		if src.IsNil() {
			return src
		}
		if keyInto == nil {
			if elemInto == nil {
				return src
			}
			//key shape preserved: overwrite entries reusing the map
			iter := src.MapRange()
			for iter.Next() {
				src.SetMapIndex(iter.Key(), elemInto(iter.Value()))
			}
			return src
		}
		dst := reflect.MakeMapWithSize(t, src.Len())
		iter := src.MapRange()
		for iter.Next() {
			key, elem := keyInto(iter.Key()), iter.Value()
			if elemInto != nil {
				elem = elemInto(elem)
			}
			dst.SetMapIndex(key, elem)
		}
		return dst
	}
	return to, into, nil
}

func compileStruct(t reflect.Type, path string, c *compiler) (op, op, error) {
	plan, err := c.structPlanFor(t)
	if err != nil {
		return nil, nil, err
	}
	structOp := func(consuming bool) op {
		return func(src reflect.Value) reflect.Value {
			dst := reflect.New(t)
			dst.Elem().Set(src)
			dstPtr := dst.UnsafePointer()
			for _, f := range plan.fields {
				value := f.xField.Value(dstPtr)
				if value == nil {
					continue
				}
				apply := f.to
				if consuming {
					apply = f.into
				}
				f.xField.SetValue(dstPtr, apply(reflect.ValueOf(value)).Interface())
			}
			return dst.Elem()
		}
	}
	return structOp(false), structOp(true), nil
}

// compileElem compiles element conversions, returning nil ops for a self
// contained element type
func compileElem(t reflect.Type, path string, c *compiler) (op, op, error) {
	if selfContained(t) {
		return nil, nil, nil
	}
	return compile(t, path, c)
}

// selfContained reports whether values of t cannot reach caller owned
// storage and therefore convert by plain copy. Strings are immutable in Go
// and count as owned by construction; time.Time only shares immutable
// location metadata.
func selfContained(t reflect.Type) bool {
	if _, ok := ownedMethod(t, "ToOwned"); ok {
		return false
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	case reflect.Array:
		return selfContained(t.Elem())
	case reflect.Struct:
		if t == timeType {
			return true
		}
		for i := 0; i < t.NumField(); i++ {
			if !selfContained(t.Field(i).Type) {
				return false
			}
		}
		return true
	}
	return false
}

func ownedMethod(t reflect.Type, name string) (reflect.Method, bool) {
	m, ok := t.MethodByName(name)
	if !ok {
		return reflect.Method{}, false
	}
	if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 || m.Type.Out(0) != t {
		return reflect.Method{}, false
	}
	return m, true
}

// compileInterface accepts an interface whose method set converts values back
// into the same interface; the dynamic type is dispatched on at conversion
// time. Interfaces without such a method cannot be proven convertible.
func compileInterface(t reflect.Type, path string) (op, op, error) {
	if !ifaceMethod(t, "ToOwned") {
		return nil, nil, fmt.Errorf("unsupported field %s: interface %s has no ToOwned method", path, t.String())
	}
	to := nameOp("ToOwned")
	into := to
	if ifaceMethod(t, "IntoOwned") {
		into = nameOp("IntoOwned")
	}
	return to, into, nil
}

// nameOp dispatches by method name on the dynamic value; used for interface
// typed fields and elements, where no method index is stable across
// implementations
func nameOp(name string) op {
	return func(src reflect.Value) reflect.Value {
		if src.Kind() == reflect.Interface {
			if src.IsNil() {
				return src
			}
			src = src.Elem()
		}
		return src.MethodByName(name).Call(nil)[0]
	}
}

func ifaceMethod(t reflect.Type, name string) bool {
	m, ok := t.MethodByName(name)
	if !ok {
		return false
	}
	return m.Type.NumIn() == 0 && m.Type.NumOut() == 1 && m.Type.Out(0) == t
}
