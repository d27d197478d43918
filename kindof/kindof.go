package kindof

import "reflect"

// Kind enumerates the runtime kinds a value can carry.
type Kind int

const (
	Invalid Kind = iota
	Nil
	Bool
	Int
	Uint
	Float
	Complex
	String
	Slice
	Array
	Map
	Struct
	Func
	Chan
	Pointer
	Interface
	UnsafePointer
)

func (k Kind) String() string {
	switch k {
	case Nil:
		return "nil"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Uint:
		return "uint"
	case Float:
		return "float"
	case Complex:
		return "complex"
	case String:
		return "string"
	case Slice:
		return "slice"
	case Array:
		return "array"
	case Map:
		return "map"
	case Struct:
		return "struct"
	case Func:
		return "func"
	case Chan:
		return "chan"
	case Pointer:
		return "pointer"
	case Interface:
		return "interface"
	case UnsafePointer:
		return "unsafe pointer"
	default:
		return "invalid"
	}
}

// Of reports the runtime kind of v. Typed nil pointers, maps, slices,
// channels, functions, and interfaces all report Nil, matching what a
// caller probing an unknown value actually wants to know.
func Of(v any) Kind {
	if v == nil {
		return Nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		if rv.IsNil() {
			return Nil
		}
	}

	switch rv.Kind() {
	case reflect.Bool:
		return Bool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint
	case reflect.Float32, reflect.Float64:
		return Float
	case reflect.Complex64, reflect.Complex128:
		return Complex
	case reflect.String:
		return String
	case reflect.Slice:
		return Slice
	case reflect.Array:
		return Array
	case reflect.Map:
		return Map
	case reflect.Struct:
		return Struct
	case reflect.Func:
		return Func
	case reflect.Chan:
		return Chan
	case reflect.Ptr:
		return Pointer
	case reflect.Interface:
		return Interface
	case reflect.UnsafePointer:
		return UnsafePointer
	default:
		return Invalid
	}
}

// IsNil reports whether v is nil or a typed nil.
func IsNil(v any) bool { return Of(v) == Nil }

// IsBool reports whether v is a bool.
func IsBool(v any) bool { return Of(v) == Bool }

// IsString reports whether v is a string.
func IsString(v any) bool { return Of(v) == String }

// IsNumber reports whether v is any integer, float, or complex kind.
func IsNumber(v any) bool {
	switch Of(v) {
	case Int, Uint, Float, Complex:
		return true
	default:
		return false
	}
}

// IsSlice reports whether v is a non-nil slice or an array.
func IsSlice(v any) bool {
	k := Of(v)
	return k == Slice || k == Array
}

// IsMap reports whether v is a non-nil map.
func IsMap(v any) bool { return Of(v) == Map }

// IsStruct reports whether v is a struct value.
func IsStruct(v any) bool { return Of(v) == Struct }

// IsFunc reports whether v is a non-nil function.
func IsFunc(v any) bool { return Of(v) == Func }

// IsChan reports whether v is a non-nil channel.
func IsChan(v any) bool { return Of(v) == Chan }

// IsPointer reports whether v is a non-nil pointer.
func IsPointer(v any) bool { return Of(v) == Pointer }
