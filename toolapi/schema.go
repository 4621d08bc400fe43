package toolapi

import (
	"github.com/invopop/jsonschema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolOptions hand-builds the mcp-go parameter schema for tools that take
// arguments. Tools absent from this switch take none.
func toolOptions(name string) []mcp.ToolOption {
	switch name {
	case "get_historical_data":
		return []mcp.ToolOption{
			mcp.WithString("metric", mcp.Description("Metric to read."), mcp.Required(), mcp.Enum("cpu", "memory", "gpu_temp", "gpu_util")),
			mcp.WithNumber("since_seconds", mcp.Description("How far back to look, in seconds. 0 returns every retained sample. Defaults to 300 when omitted.")),
		}
	case "compare_metrics":
		return []mcp.ToolOption{
			mcp.WithString("metric", mcp.Description("Metric to compare."), mcp.Required(), mcp.Enum("cpu", "memory", "gpu_temp", "gpu_util")),
			mcp.WithNumber("window_a_seconds", mcp.Description("First window: average over the last N seconds."), mcp.Required()),
			mcp.WithNumber("window_b_seconds", mcp.Description("Second window: average over the last N seconds."), mcp.Required()),
		}
	case "get_gpu_details", "get_gpu_processes", "get_gpu_utilization", "get_gpu_memory", "get_gpu_temperature", "get_gpu_power":
		return []mcp.ToolOption{
			mcp.WithNumber("gpu_index", mcp.Description("0-based GPU index, from get_gpu_list."), mcp.Required()),
		}
	case "get_cpu_frequency":
		return []mcp.ToolOption{
			mcp.WithNumber("core_index", mcp.Description("0-based logical core index."), mcp.Required()),
		}
	case "get_disk_details", "get_disk_io", "get_disk_health":
		return []mcp.ToolOption{
			mcp.WithString("disk_name", mcp.Description("Device name, from get_disk_list."), mcp.Required()),
		}
	case "get_network_bandwidth", "get_interface_details":
		return []mcp.ToolOption{
			mcp.WithString("interface_name", mcp.Description("Interface name, from get_network_interfaces."), mcp.Required()),
		}
	case "get_process_details":
		return []mcp.ToolOption{
			mcp.WithNumber("pid", mcp.Description("Process ID."), mcp.Required()),
		}
	case "get_process_list":
		return []mcp.ToolOption{
			mcp.WithString("sort_by", mcp.Description("Sort key."), mcp.Enum("cpu", "memory", "gpu_memory", "name", "pid"), mcp.DefaultString("pid")),
		}
	case "get_top_cpu_processes", "get_top_memory_processes", "get_top_gpu_processes":
		return []mcp.ToolOption{
			mcp.WithNumber("limit", mcp.Description("Maximum number of processes to return. Defaults to 10.")),
		}
	case "search_processes":
		return []mcp.ToolOption{
			mcp.WithString("query", mcp.Description("Case-insensitive substring to match against process name."), mcp.Required()),
		}
	case "get_display_details", "get_usb_device_details":
		return []mcp.ToolOption{
			mcp.WithNumber("index", mcp.Description("0-based device index.")),
		}
	default:
		return nil
	}
}

// toolDescription is the introspectable shape for one registered tool,
// independent of the mcp-go wiring above.
type toolDescription struct {
	Name        string             `json:"name"`
	Category    Category           `json:"category"`
	Description string             `json:"description"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
}

// paramSchemas maps tool name to the Go shape its arguments are reflected
// from, for Describe's introspection output. Tools absent from this map take
// no arguments.
var paramSchemas = map[string]any{
	"get_historical_data": struct {
		Metric       string `json:"metric" jsonschema:"required,enum=cpu,enum=memory,enum=gpu_temp,enum=gpu_util"`
		SinceSeconds int64  `json:"since_seconds"`
	}{},
	"compare_metrics": struct {
		Metric         string `json:"metric" jsonschema:"required,enum=cpu,enum=memory,enum=gpu_temp,enum=gpu_util"`
		WindowASeconds int64  `json:"window_a_seconds" jsonschema:"required"`
		WindowBSeconds int64  `json:"window_b_seconds" jsonschema:"required"`
	}{},
	"get_gpu_details": struct {
		GpuIndex int `json:"gpu_index" jsonschema:"required"`
	}{},
	"get_cpu_frequency": struct {
		CoreIndex int `json:"core_index" jsonschema:"required"`
	}{},
	"get_disk_details": struct {
		DiskName string `json:"disk_name" jsonschema:"required"`
	}{},
	"get_network_bandwidth": struct {
		InterfaceName string `json:"interface_name" jsonschema:"required"`
	}{},
	"get_process_details": struct {
		Pid int32 `json:"pid" jsonschema:"required"`
	}{},
	"search_processes": struct {
		Query string `json:"query" jsonschema:"required"`
	}{},
}

// Describe returns the full registry as an introspectable, JSON-Schema-backed
// document: the shape an external tool-discovery client (rather than the
// mcp-go transport) would want.
func Describe() []toolDescription {
	reflector := &jsonschema.Reflector{ExpandedStruct: true}
	out := make([]toolDescription, 0, len(registry))
	for _, spec := range registry {
		desc := toolDescription{Name: spec.Name, Category: spec.Category, Description: spec.Description}
		if shape, ok := paramSchemas[spec.Name]; ok {
			desc.Parameters = reflector.Reflect(shape)
		}
		out = append(out, desc)
	}
	return out
}
