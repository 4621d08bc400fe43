package inference

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/coreprobe/sysmon/entities"
)

// computeFingerprint derives a stable identifier for a hardware profile from
// its coarse-grained features. Uses SHA-256 rather than a general-purpose
// hasher so the fingerprint is stable across Go versions and architectures,
// truncated to 16 hex characters since full collision resistance isn't
// needed for a deduplication key.
func computeFingerprint(f entities.HardwareFeatures) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%d|%d|%s|%d|%t|%d",
		f.CpuModel,
		f.CpuCoresPhysical,
		f.CpuCoresLogical,
		uint64(f.RamTotalGb),
		f.GpuModel,
		uint64(f.GpuVramGb),
		f.HasNvme,
		uint64(f.StorageTotalGb),
	)
	sum := h.Sum(nil)
	return hex.EncodeToString(sum)[:16]
}
