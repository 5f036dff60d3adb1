// Package shim loads a native Yoga build through purego and exposes it as a
// [native.Table].
//
// The shared library is Yoga compiled together with a small companion layer,
// conventionally named libyogabind.so (libyogabind.dylib on macOS). Most
// entry points are the plain Yoga C API. The companion layer adds what purego
// cannot express on every platform:
//
//	YGBindNodeStyleGet<Prop>(node, [edge,] YGValue *out)
//	    Value getters through an out-pointer. Struct returns only work on
//	    darwin, where the plain getters are used instead.
//	YGBindNodeSetMeasureThunk(node, void (*)(node, w, wmode, h, hmode))
//	YGBindNodeSetBaselineThunk(node, void (*)(node, w, h))
//	    Register void callbacks; a NULL thunk clears the registration.
//	YGBindStoreMeasureResult(w, h)
//	YGBindStoreBaselineResult(b)
//	    Hand a callback result back to the native trampoline that is waiting
//	    for it.
//
// purego callbacks cannot return floats or structs, so tables returned by
// this package always use [native.SideChannel].
//
// # Loading
//
// The library path is resolved from [WithLibrary], then the YOGABIND_LIBRARY
// environment variable, then a search next to the executable and the working
// directory, and finally the bare library name for the system loader. Each
// path is opened at most once per process.
package shim
