package display

// #cgo pkg-config: gtk4-x11 gtk4
// #include <gdk/x11/gdkx.h>
import "C"

import (
	"runtime"
	"unsafe"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gdkx11/v4"
)

// surfaceXID returns the X window backing surface.
// gdkx11 has no binding for gdk_x11_surface_get_xid, so it is called here.
func surfaceXID(surface *gdkx11.X11Surface) xproto.Window {
	native := (*C.GdkSurface)(unsafe.Pointer(glib.InternObject(surface).Native()))
	xid := C.gdk_x11_surface_get_xid(native)
	runtime.KeepAlive(surface)
	return xproto.Window(xid)
}
