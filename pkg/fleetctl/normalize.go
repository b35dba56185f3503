package fleetctl

import "encoding/json"

// HostRecord is the canonical device projection used by the serving layer
// regardless of which upstream schema fleetctl produced. The four canonical
// fields are always present, defaulting to the empty string; Raw preserves
// every original field of the element for callers that need more.
type HostRecord struct {
	ID          string
	DisplayName string
	Platform    string
	Status      string
	Raw         map[string]Value
}

// MarshalJSON emits the original fields with the canonical four added on
// top (overwriting same-named originals), so the UI always sees id,
// displayName, platform and status.
func (h HostRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(h.Raw)+4)
	for k, v := range h.Raw {
		out[k] = v
	}
	out["id"] = h.ID
	out["displayName"] = h.DisplayName
	out["platform"] = h.Platform
	out["status"] = h.Status
	return json.Marshal(out)
}

// Lookup paths per canonical field, in priority order. Each device element
// may carry a nested "spec" and/or "detail" object from older fleetctl
// schema layers.
var (
	idPaths = [][]string{
		{"uuid"},
		{"spec", "uuid"},
		{"spec", "hardware_uuid"},
		{"detail", "uuid"},
		{"detail", "hardware_uuid"},
	}
	displayNamePaths = [][]string{
		{"hostname"},
		{"spec", "hostname"},
		{"spec", "computer_name"},
		{"spec", "display_name"},
		{"detail", "hostname"},
	}
	platformPaths = [][]string{
		{"platform"},
		{"spec", "platform"},
		{"spec", "osquery_platform"},
	}
	statusPaths = [][]string{
		{"status"},
		{"spec", "status"},
		{"spec", "mdm", "enrollment_status"},
	}
)

// Normalize projects a decoded fleetctl value into canonical host records.
// It never fails: absence of data yields an empty slice and a malformed
// element degrades to default field values instead of aborting the batch —
// partial device data is more useful to an operator than none.
func Normalize(v Value) []HostRecord {
	elems := hostElements(v)
	records := make([]HostRecord, 0, len(elems))
	for _, e := range elems {
		records = append(records, normalizeHost(e))
	}
	return records
}

// hostElements resolves the shapes fleetctl is known to emit: a bare array,
// an object wrapping the list under "hosts" or "data", or a single device
// object.
func hostElements(v Value) []Value {
	switch v.Kind() {
	case Array:
		return v.Array()
	case Object:
		if hosts, ok := v.Field("hosts"); ok && hosts.Kind() == Array {
			return hosts.Array()
		}
		if data, ok := v.Field("data"); ok && data.Kind() == Array {
			return data.Array()
		}
	}
	return []Value{v}
}

func normalizeHost(v Value) HostRecord {
	return HostRecord{
		ID:          firstText(v, idPaths),
		DisplayName: firstText(v, displayNamePaths),
		Platform:    firstText(v, platformPaths),
		Status:      firstText(v, statusPaths),
		Raw:         v.Fields(),
	}
}

// firstText walks the candidate paths in order and returns the first
// non-empty string form found.
func firstText(v Value, paths [][]string) string {
	for _, path := range paths {
		if f, ok := lookupPath(v, path); ok {
			if s := f.Text(); s != "" {
				return s
			}
		}
	}
	return ""
}

func lookupPath(v Value, path []string) (Value, bool) {
	cur := v
	for _, name := range path {
		f, ok := cur.Field(name)
		if !ok {
			return Value{}, false
		}
		cur = f
	}
	return cur, true
}
