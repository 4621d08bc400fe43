package toolapi

import (
	"context"
	"fmt"

	"github.com/coreprobe/sysmon/errs"
)

// notImplementedHandler backs every Audio/Bluetooth/Display/Usb tool: the
// registry carries their names and descriptions regardless of whether any
// OS source exists yet.
func notImplementedHandler(ctx context.Context, deps *Deps, p params) (string, error) {
	return "", fmt.Errorf("%w", errs.ErrNotImplemented)
}
