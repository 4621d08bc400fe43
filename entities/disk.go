package entities

type DiskHealth string

const (
	DiskHealthy  DiskHealth = "healthy"
	DiskWarning  DiskHealth = "warning"
	DiskCritical DiskHealth = "critical"
	DiskFailed   DiskHealth = "failed"
	DiskUnknown  DiskHealth = "unknown"
)

type DiskInfo struct {
	Name       string `json:"name"`
	Model      string `json:"model,omitempty"`
	IsNvme     bool   `json:"is_nvme"`
	IsSsd      bool   `json:"is_ssd"`
	TotalBytes uint64 `json:"total_bytes"`
}

type DiskIoStats struct {
	ReadBytes  uint64 `json:"read_bytes"`
	WriteBytes uint64 `json:"write_bytes"`
	ReadOps    uint64 `json:"read_ops"`
	WriteOps   uint64 `json:"write_ops"`
}

type FilesystemInfo struct {
	MountPoint string `json:"mount_point"`
	FsType     string `json:"fs_type"`
	TotalSize  uint64 `json:"total_size"`
	UsedSize   uint64 `json:"used_size"`
}
