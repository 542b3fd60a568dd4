package trash

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/trashlib/trash/pkg/logging"
)

// Move moves path to the recycle bin via IFileOperation, initializing and
// uninitializing the COM library around the call (§6 "an additional
// variant accepts... a flag selecting whether the library initializes the
// COM subsystem (default: yes)").
func Move(path string) error {
	return MoveWithOptions(path, true)
}

// MoveWithOptions moves path to the recycle bin via IFileOperation. If
// initCOM is false, the caller is responsible for having already
// initialized the COM library on this thread; this is useful for callers
// that already host a COM apartment and want to avoid re-initializing it.
func MoveWithOptions(path string, initCOM bool) error {
	logger := logging.RootLogger.Sublogger("windows")

	if initCOM {
		if err := windows.CoInitializeEx(0, windows.COINIT_APARTMENTTHREADED); err != nil {
			return newError(StatFailed, err)
		}
		defer windows.CoUninitialize()
	}

	op, err := newFileOperation()
	if err != nil {
		return newError(SidecarFailed, err)
	}
	defer op.Release(logger)

	const (
		fofAllowUndo        = 0x0040
		fofNoConfirmation   = 0x0010
		fofSilent           = 0x0004
		fofNoErrorUI        = 0x0400
		fofWantNukeWarning  = 0x4000
	)
	flags := uint32(fofAllowUndo | fofNoConfirmation | fofSilent | fofNoErrorUI | fofWantNukeWarning)
	if err := op.SetOperationFlags(flags); err != nil {
		return newError(SidecarFailed, err)
	}

	item, err := shellItemFromPath(path)
	if err != nil {
		return newError(RealPathFailed, err)
	}
	defer item.Release(logger)

	if err := op.DeleteItem(item); err != nil {
		return newError(RenameFailed, err)
	}

	if err := op.PerformOperations(); err != nil {
		return newError(RenameFailed, err)
	}

	return nil
}

// comInterface is the common shape of a COM interface pointer: a pointer to
// a vtable whose first three slots are the IUnknown methods.
type comInterface struct {
	vtbl *uintptr
}

func (c *comInterface) call(index uintptr, args ...uintptr) (uintptr, error) {
	vtbl := unsafe.Slice(c.vtbl, index+1)
	fn := vtbl[index]
	fullArgs := append([]uintptr{uintptr(unsafe.Pointer(c))}, args...)
	ret, _, _ := syscall.SyscallN(fn, fullArgs...)
	if int32(ret) < 0 {
		return ret, windows.Errno(ret)
	}
	return ret, nil
}

// fileOperation wraps an IFileOperation COM interface pointer.
type fileOperation struct {
	*comInterface
}

// CLSID_FileOperation and IID_IFileOperation, per the Windows SDK.
var (
	clsidFileOperation = windows.GUID{Data1: 0x3ad05575, Data2: 0x8857, Data3: 0x4850, Data4: [8]byte{0x92, 0x77, 0x11, 0xb8, 0x5b, 0xdb, 0x8e, 0x09}}
	iidFileOperation   = windows.GUID{Data1: 0x947aab5f, Data2: 0x0a5c, Data3: 0x4c13, Data4: [8]byte{0xb4, 0xd6, 0x4b, 0xf7, 0x83, 0x6f, 0xc9, 0xf8}}
)

func newFileOperation() (*fileOperation, error) {
	var unknown *comInterface
	if err := windows.CoCreateInstance(&clsidFileOperation, nil, windows.CLSCTX_INPROC_SERVER, &iidFileOperation, (*unsafe.Pointer)(unsafe.Pointer(&unknown))); err != nil {
		return nil, err
	}
	return &fileOperation{comInterface: unknown}, nil
}

// IFileOperation vtable slot indices, counted from the start of IUnknown.
const (
	vtblAddRef             = 1
	vtblRelease             = 2
	vtblSetOperationFlags   = 5
	vtblDeleteItem          = 18
	vtblPerformOperations   = 21
)

func (f *fileOperation) SetOperationFlags(flags uint32) error {
	_, err := f.call(vtblSetOperationFlags, uintptr(flags))
	return err
}

func (f *fileOperation) DeleteItem(item *shellItem) error {
	_, err := f.call(vtblDeleteItem, uintptr(unsafe.Pointer(item.comInterface)), 0)
	return err
}

func (f *fileOperation) PerformOperations() error {
	_, err := f.call(vtblPerformOperations)
	return err
}

func (f *fileOperation) Release(logger *logging.Logger) {
	if _, err := f.call(vtblRelease); err != nil {
		logger.Warn(err)
	}
}

// shellItem wraps an IShellItem COM interface pointer.
type shellItem struct {
	*comInterface
}

func shellItemFromPath(path string) (*shellItem, error) {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, err
	}

	var iidShellItem = windows.GUID{Data1: 0x43826d1e, Data2: 0xe718, Data3: 0x42ee, Data4: [8]byte{0xbc, 0x55, 0xa1, 0xe2, 0x61, 0xc3, 0x7b, 0xfe}}

	var item *comInterface
	if err := shCreateItemFromParsingName(pathPtr, &iidShellItem, &item); err != nil {
		return nil, err
	}
	return &shellItem{comInterface: item}, nil
}

func (s *shellItem) Release(logger *logging.Logger) {
	if _, err := s.call(vtblRelease); err != nil {
		logger.Warn(err)
	}
}

var (
	modShell32                    = windows.NewLazySystemDLL("shell32.dll")
	procSHCreateItemFromParsingName = modShell32.NewProc("SHCreateItemFromParsingName")
)

func shCreateItemFromParsingName(path *uint16, iid *windows.GUID, out **comInterface) error {
	ret, _, _ := procSHCreateItemFromParsingName.Call(
		uintptr(unsafe.Pointer(path)),
		0,
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(out)),
	)
	if int32(ret) < 0 {
		return windows.Errno(ret)
	}
	return nil
}
